package ordering

import (
	"strings"
	"time"

	"github.com/fieldscope/research-api/pkg/respno"
)

// Record is the resolver's view of one sortable item: a transcript, or an
// identity-sheet row standing in for one.
type Record struct {
	ID         string    // durable transcript id, may be empty for legacy rows
	Label      string    // previous respondent label, "" when never assigned
	Date       string    // interview date as entered, free-form
	Time       string    // interview time as entered, free-form
	UploadedAt time.Time // ingestion timestamp, zero when unknown
}

// fallbackBase places records with no temporal metadata after every record
// that has any: it is far beyond any representable interview timestamp.
const fallbackBase = int64(1) << 50 // unix millis, year ~37000

// Accepted layouts, probed in order. Unparseable input is treated as absent,
// never as an error.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

var timeLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04PM",
	"3:04 pm",
}

// ParseDate parses a free-form interview date at midnight UTC.
func ParseDate(value string) (time.Time, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, v); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseTime parses a free-form interview clock time.
func ParseTime(value string) (time.Time, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, v); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// ResolveKey computes the sortable ordering key for one record, in unix
// milliseconds. Resolution degrades tier by tier:
//
//  1. date + time combined
//  2. date alone (midnight)
//  3. ingestion timestamp
//  4. synthetic key after every real timestamp, derived from the previous
//     label and the record's position so repeated resolutions keep the
//     record's relative order when nothing about it changed
func ResolveKey(rec Record, fallbackIndex int) int64 {
	if date, ok := ParseDate(rec.Date); ok {
		if clock, ok := ParseTime(rec.Time); ok {
			combined := time.Date(
				date.Year(), date.Month(), date.Day(),
				clock.Hour(), clock.Minute(), clock.Second(), 0,
				time.UTC,
			)
			return combined.UnixMilli()
		}
		return date.UnixMilli()
	}

	if !rec.UploadedAt.IsZero() {
		return rec.UploadedAt.UTC().UnixMilli()
	}

	return fallbackBase + int64(respno.NumericPart(rec.Label)) + int64(fallbackIndex)
}

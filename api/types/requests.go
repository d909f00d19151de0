package types

// Request bodies for the v1 API

// CreateProjectRequest is the body for POST /api/v1/projects
type CreateProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

// IngestTranscriptRequest is the body for POST /api/v1/transcripts
type IngestTranscriptRequest struct {
	ProjectUUID   string `json:"project_uuid" binding:"required"`
	Filename      string `json:"filename"`
	InterviewDate string `json:"interview_date"`
	InterviewTime string `json:"interview_time"`
}

// CorrectDateTimeRequest is the body for
// PATCH /api/v1/transcripts/{id}/interview-datetime.
// Field is "date" or "time"; an empty value clears the field.
type CorrectDateTimeRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// CreateAnalysisRequest is the body for POST /api/v1/analyses
type CreateAnalysisRequest struct {
	ProjectUUID string `json:"project_uuid" binding:"required"`
	Name        string `json:"name" binding:"required"`
}

// AttachTranscriptsRequest is the body for
// POST /api/v1/analyses/{id}/transcripts
type AttachTranscriptsRequest struct {
	TranscriptUUIDs []string `json:"transcript_uuids" binding:"required"`
}

// ConfirmRequest guards operations that change externally-visible
// identifiers after the fact (reset, reassign). The confirm flag must be
// explicitly true.
type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

package types

import (
	"github.com/fieldscope/research-api/internal/database"
	"github.com/fieldscope/research-api/internal/services/analyses"
	"github.com/fieldscope/research-api/internal/services/consistency"
	"github.com/fieldscope/research-api/internal/services/projects"
	"github.com/fieldscope/research-api/internal/services/transcripts"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	ProjectService    projects.Service
	TranscriptService transcripts.Service
	AnalysisService   analyses.Service
	Coordinator       consistency.Service
}

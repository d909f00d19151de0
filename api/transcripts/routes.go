package transcripts

import (
	"github.com/fieldscope/research-api/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers transcript management routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/transcripts - Ingest a transcript's metadata
	router.POST("", Ingest(deps))

	// GET /api/v1/transcripts?project_id= - List a project's transcripts
	router.GET("", List(deps))

	// GET /api/v1/transcripts/:id - Get a transcript by UUID
	router.GET("/:id", GetByUUID(deps))

	// PATCH /api/v1/transcripts/:id/interview-datetime - Correct date or time
	router.PATCH("/:id/interview-datetime", CorrectDateTime(deps))

	// DELETE /api/v1/transcripts/:id - Delete a transcript
	router.DELETE("/:id", Delete(deps))
}

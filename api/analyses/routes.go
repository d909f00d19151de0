package analyses

import (
	"github.com/fieldscope/research-api/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers content analysis routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/analyses - Create a new analysis document
	router.POST("", Create(deps))

	// GET /api/v1/analyses?project_id= - List a project's analyses
	router.GET("", List(deps))

	// GET /api/v1/analyses/:id - Get an analysis by UUID
	router.GET("/:id", GetByUUID(deps))

	// DELETE /api/v1/analyses/:id - Delete an analysis
	router.DELETE("/:id", Delete(deps))

	// POST /api/v1/analyses/:id/transcripts - Attach transcripts
	router.POST("/:id/transcripts", AttachTranscripts(deps))

	// DELETE /api/v1/analyses/:id/transcripts/:transcriptId - Detach one transcript
	router.DELETE("/:id/transcripts/:transcriptId", DetachTranscript(deps))

	// POST /api/v1/analyses/:id/reset - Renumber from scratch (destructive, needs confirm)
	router.POST("/:id/reset", Reset(deps))
}

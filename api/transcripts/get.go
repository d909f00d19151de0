package transcripts

import (
	"github.com/fieldscope/research-api/api/types"
	"github.com/gin-gonic/gin"
)

// List returns all transcripts for a project, each decorated with its
// assignment state so the dashboard can grey out unassigned rows.
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectUUID := c.Query("project_id")
		if projectUUID == "" {
			types.SendBadRequest(c, "project_id query parameter is required")
			return
		}

		project, err := deps.ProjectService.GetProjectByUUID(c.Request.Context(), projectUUID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		views, err := deps.TranscriptService.ListByProject(c.Request.Context(), project.ID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, gin.H{
			"transcripts": views,
			"count":       len(views),
		})
	}
}

// GetByUUID returns a single transcript by UUID
func GetByUUID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := c.Param("id")
		if uuid == "" {
			types.SendBadRequest(c, "Transcript ID is required")
			return
		}

		transcript, err := deps.TranscriptService.GetTranscriptByUUID(c.Request.Context(), uuid)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, transcript)
	}
}

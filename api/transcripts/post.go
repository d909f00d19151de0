package transcripts

import (
	"log"

	"github.com/fieldscope/research-api/api/types"
	"github.com/gin-gonic/gin"
)

// Ingest registers one uploaded transcript's metadata under a project
func Ingest(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.IngestTranscriptRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		project, err := deps.ProjectService.GetProjectByUUID(c.Request.Context(), req.ProjectUUID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		transcript, err := deps.TranscriptService.Ingest(
			c.Request.Context(),
			project.ID,
			req.Filename,
			req.InterviewDate,
			req.InterviewTime,
		)
		if err != nil {
			log.Printf("[WARN] Failed to ingest transcript %q for project %s: %v", req.Filename, req.ProjectUUID, err)
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, transcript)
	}
}

package transcripts

import (
	"log"

	"github.com/fieldscope/research-api/api/types"
	"github.com/gin-gonic/gin"
)

// CorrectDateTime corrects one transcript's interview date or time and
// cascades the resulting renumbering across the project. Returns the
// updated canonical labels.
func CorrectDateTime(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := c.Param("id")
		if uuid == "" {
			types.SendBadRequest(c, "Transcript ID is required")
			return
		}

		var req types.CorrectDateTimeRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		log.Printf("[DEBUG] Correcting %s for transcript %s", req.Field, uuid)
		labels, err := deps.TranscriptService.CorrectDateTime(c.Request.Context(), uuid, req.Field, req.Value)
		if err != nil {
			log.Printf("[WARN] Date/time correction failed for transcript %s: %v", uuid, err)
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.LabelsResponse{Labels: labels})
	}
}

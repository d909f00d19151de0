package transcripts

import (
	"log"
	"net/http"

	"github.com/fieldscope/research-api/api/types"
	"github.com/gin-gonic/gin"
)

// Delete removes a transcript by UUID. Analysis rows that still reference
// the deleted id are left in place; renumbering tolerates them.
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := c.Param("id")
		if uuid == "" {
			types.SendBadRequest(c, "Transcript ID is required")
			return
		}

		if err := deps.TranscriptService.DeleteTranscript(c.Request.Context(), uuid); err != nil {
			log.Printf("[WARN] Failed to delete transcript %s: %v", uuid, err)
			types.SendError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

package analyses

import (
	"log"
	"net/http"

	"github.com/fieldscope/research-api/api/types"
	"github.com/gin-gonic/gin"
)

// Delete removes an analysis document by UUID. Transcripts whose labels
// were only held by this analysis have them cleared.
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := c.Param("id")
		if uuid == "" {
			types.SendBadRequest(c, "Analysis ID is required")
			return
		}

		if err := deps.AnalysisService.DeleteAnalysis(c.Request.Context(), uuid); err != nil {
			log.Printf("[WARN] Failed to delete analysis %s: %v", uuid, err)
			types.SendError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

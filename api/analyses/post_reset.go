package analyses

import (
	"log"

	"github.com/fieldscope/research-api/api/types"
	pkgerrors "github.com/fieldscope/research-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

// Reset renumbers one analysis document from scratch based on its current
// membership. Labels already shown to users may change, so the request must
// carry an explicit confirm flag.
func Reset(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := c.Param("id")
		if uuid == "" {
			types.SendBadRequest(c, "Analysis ID is required")
			return
		}

		var req types.ConfirmRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		if !req.Confirm {
			types.SendError(c, pkgerrors.ConfirmationRequired("reset analysis numbering"))
			return
		}

		log.Printf("[DEBUG] Resetting numbering for analysis %s", uuid)
		labels, err := deps.Coordinator.ResetAnalysis(c.Request.Context(), uuid)
		if err != nil {
			log.Printf("[WARN] Reset failed for analysis %s: %v", uuid, err)
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.LabelsResponse{Labels: labels})
	}
}

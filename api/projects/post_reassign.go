package projects

import (
	"log"

	"github.com/fieldscope/research-api/api/types"
	pkgerrors "github.com/fieldscope/research-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

// Reassign renumbers every transcript in a project from scratch, assigning
// labels to transcripts that never had one. Existing labels may change, so
// the request must carry an explicit confirm flag.
func Reassign(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := c.Param("id")
		if uuid == "" {
			types.SendBadRequest(c, "Project ID is required")
			return
		}

		var req types.ConfirmRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		if !req.Confirm {
			types.SendError(c, pkgerrors.ConfirmationRequired("reassign respondent labels"))
			return
		}

		project, err := deps.ProjectService.GetProjectByUUID(c.Request.Context(), uuid)
		if err != nil {
			types.SendError(c, err)
			return
		}

		log.Printf("[DEBUG] Reassigning respondent labels for project %s", uuid)
		labels, err := deps.Coordinator.ReassignProject(c.Request.Context(), project.ID)
		if err != nil {
			log.Printf("[WARN] Reassign failed for project %s: %v", uuid, err)
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.LabelsResponse{Labels: labels})
	}
}

package projects

import (
	"log"

	"github.com/fieldscope/research-api/api/types"
	"github.com/gin-gonic/gin"
)

// Sync re-derives every analysis document's labels and ordering from the
// project's transcript set. It is safe to re-run and is the recovery path
// after a partial cascade.
func Sync(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := c.Param("id")
		if uuid == "" {
			types.SendBadRequest(c, "Project ID is required")
			return
		}

		project, err := deps.ProjectService.GetProjectByUUID(c.Request.Context(), uuid)
		if err != nil {
			types.SendError(c, err)
			return
		}

		log.Printf("[DEBUG] Syncing respondent labels for project %s", uuid)
		labels, err := deps.Coordinator.SyncProject(c.Request.Context(), project.ID)
		if err != nil {
			log.Printf("[WARN] Sync failed for project %s: %v", uuid, err)
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.LabelsResponse{Labels: labels})
	}
}

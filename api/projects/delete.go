package projects

import (
	"log"
	"net/http"

	"github.com/fieldscope/research-api/api/types"
	"github.com/gin-gonic/gin"
)

// Delete removes a project by UUID
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := c.Param("id")
		if uuid == "" {
			types.SendBadRequest(c, "Project ID is required")
			return
		}

		if err := deps.ProjectService.DeleteProject(c.Request.Context(), uuid); err != nil {
			log.Printf("[WARN] Failed to delete project %s: %v", uuid, err)
			types.SendError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

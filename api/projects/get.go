package projects

import (
	"github.com/fieldscope/research-api/api/types"
	"github.com/gin-gonic/gin"
)

// List returns all projects
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := deps.ProjectService.ListProjects(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, gin.H{
			"projects": projects,
			"count":    len(projects),
		})
	}
}

// GetByUUID returns a single project by UUID
func GetByUUID(deps *types.Dependencies) gin.HandlerFunc {
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

		types.SendSuccess(c, project)
	}
}

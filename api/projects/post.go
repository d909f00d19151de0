package projects

import (
	"log"

	"github.com/fieldscope/research-api/api/types"
	"github.com/gin-gonic/gin"
)

// Create handles creating a new research project
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateProjectRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		project, err := deps.ProjectService.CreateProject(c.Request.Context(), req.Name)
		if err != nil {
			log.Printf("[WARN] Failed to create project %q: %v", req.Name, err)
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, project)
	}
}

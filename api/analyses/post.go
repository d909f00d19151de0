package analyses

import (
	"log"

	"github.com/fieldscope/research-api/api/types"
	"github.com/gin-gonic/gin"
)

// Create handles creating a new content analysis document
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateAnalysisRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		project, err := deps.ProjectService.GetProjectByUUID(c.Request.Context(), req.ProjectUUID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		analysis, err := deps.AnalysisService.CreateAnalysis(c.Request.Context(), project.ID, req.Name)
		if err != nil {
			log.Printf("[WARN] Failed to create analysis %q for project %s: %v", req.Name, req.ProjectUUID, err)
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, analysis)
	}
}

package analyses

import (
	"github.com/fieldscope/research-api/api/types"
	"github.com/gin-gonic/gin"
)

// List returns all analyses for a project
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectUUID := c.Query("project_id")
		if projectUUID == "" {
			types.SendBadRequest(c, "project_id query parameter is required")
			return
		}

		project, err := deps.ProjectService.GetProjectByUUID(c.Request.Context(), projectUUID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		analyses, err := deps.AnalysisService.ListAnalysesByProject(c.Request.Context(), project.ID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, gin.H{
			"analyses": analyses,
			"count":    len(analyses),
		})
	}
}

// GetByUUID returns a single analysis document by UUID
func GetByUUID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := c.Param("id")
		if uuid == "" {
			types.SendBadRequest(c, "Analysis ID is required")
			return
		}

		analysis, err := deps.AnalysisService.GetAnalysisByUUID(c.Request.Context(), uuid)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, analysis)
	}
}

package projects

import (
	"github.com/fieldscope/research-api/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers project management routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/projects - Create a new project
	router.POST("", Create(deps))

	// GET /api/v1/projects - List all projects
	router.GET("", List(deps))

	// GET /api/v1/projects/:id - Get a project by UUID
	router.GET("/:id", GetByUUID(deps))

	// DELETE /api/v1/projects/:id - Delete a project
	router.DELETE("/:id", Delete(deps))

	// POST /api/v1/projects/:id/reassign - Renumber all transcripts (destructive, needs confirm)
	router.POST("/:id/reassign", Reassign(deps))

	// POST /api/v1/projects/:id/sync - Reconcile all analysis documents
	router.POST("/:id/sync", Sync(deps))
}

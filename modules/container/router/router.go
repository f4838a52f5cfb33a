package router

import (
	"go-scheduler-api/core/middleware"
	"go-scheduler-api/modules/container/controller"

	"github.com/labstack/echo/v4"
)

// ContainerRouter handles container routes
type ContainerRouter struct {
	ContainerController *controller.ContainerController
}

func NewContainerRouter(containerController *controller.ContainerController) *ContainerRouter {
	return &ContainerRouter{ContainerController: containerController}
}

// Setup registers container routes
func (r *ContainerRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	containerRoutes := privateRoutes.Group("/containers", mw.AuthMiddleware())
	containerRoutes.POST("", r.ContainerController.CreateContainer)
	containerRoutes.GET("/:id", r.ContainerController.GetContainer)
	containerRoutes.GET("/:id/notes", r.ContainerController.ListAuditNotes)
}

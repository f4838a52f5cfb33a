package router

import (
	"go-scheduler-api/core/middleware"
	"go-scheduler-api/modules/host/controller"

	"github.com/labstack/echo/v4"
)

// HostRouter handles host routes
type HostRouter struct {
	HostController *controller.HostController
}

func NewHostRouter(hostController *controller.HostController) *HostRouter {
	return &HostRouter{HostController: hostController}
}

// Setup registers host routes
func (r *HostRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	hostRoutes := privateRoutes.Group("/hosts", mw.AuthMiddleware())
	hostRoutes.GET("", r.HostController.ListHosts)
	hostRoutes.GET("/:id", r.HostController.GetHost)
	hostRoutes.POST("/match", r.HostController.MatchHosts)
}

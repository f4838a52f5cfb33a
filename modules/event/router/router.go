package router

import (
	"go-scheduler-api/core/middleware"
	"go-scheduler-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

// EventRouter handles event routes
type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{EventController: eventController}
}

// Setup registers event routes
func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	eventRoutes := privateRoutes.Group("/events", mw.AuthMiddleware())
	eventRoutes.GET("/:id", r.EventController.GetEvent)
	eventRoutes.GET("/:id/issues", r.EventController.DetectIssues)

	containerRoutes := privateRoutes.Group("/containers", mw.AuthMiddleware())
	containerRoutes.POST("/:id/repair-week", r.EventController.RepairWeek)
}

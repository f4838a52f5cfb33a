package router

import (
	"go-scheduler-api/core/middleware"
	"go-scheduler-api/modules/timeslot/controller"

	"github.com/labstack/echo/v4"
)

// TimeslotRouter handles timeslot routes
type TimeslotRouter struct {
	TimeslotController *controller.TimeslotController
}

func NewTimeslotRouter(timeslotController *controller.TimeslotController) *TimeslotRouter {
	return &TimeslotRouter{TimeslotController: timeslotController}
}

// Setup registers timeslot routes
func (r *TimeslotRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	tsRoutes := privateRoutes.Group("/timeslots", mw.AuthMiddleware())
	tsRoutes.GET("", r.TimeslotController.ListTimeslots)
}

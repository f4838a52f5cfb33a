package timeslot

import (
	"go-scheduler-api/core/database"
	"go-scheduler-api/core/middleware"
	"go-scheduler-api/modules/timeslot/controller"
	"go-scheduler-api/modules/timeslot/repository"
	"go-scheduler-api/modules/timeslot/router"

	"github.com/labstack/echo/v4"
)

// Init initializes the timeslot module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewTimeslotRepository(db)
	ctrl := controller.NewTimeslotController(repo)
	rtr := router.NewTimeslotRouter(ctrl)

	rtr.Setup(e, mw)
}

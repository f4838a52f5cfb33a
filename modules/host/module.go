package host

import (
	"go-scheduler-api/core/config"
	"go-scheduler-api/core/database"
	"go-scheduler-api/core/middleware"
	eventrepository "go-scheduler-api/modules/event/repository"
	"go-scheduler-api/modules/host/controller"
	"go-scheduler-api/modules/host/repository"
	"go-scheduler-api/modules/host/router"
	"go-scheduler-api/modules/host/service"
	tsrepository "go-scheduler-api/modules/timeslot/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the host module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, cfg *config.Config) {
	repo := repository.NewHostRepository(db)
	timeslotRepo := tsrepository.NewTimeslotRepository(db)
	eventRepo := eventrepository.NewEventRepository(db)

	pool := service.NewHostPool(repo, timeslotRepo, eventRepo, cfg.Scheduling.SlotUnitMinutes)
	svc := service.NewHostService(repo, pool)
	ctrl := controller.NewHostController(svc)
	rtr := router.NewHostRouter(ctrl)

	rtr.Setup(e, mw)
}

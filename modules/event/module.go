package event

import (
	"go-scheduler-api/core/config"
	"go-scheduler-api/core/database"
	"go-scheduler-api/core/middleware"
	containerrepository "go-scheduler-api/modules/container/repository"
	"go-scheduler-api/modules/event/controller"
	"go-scheduler-api/modules/event/repository"
	"go-scheduler-api/modules/event/router"
	"go-scheduler-api/modules/event/service"
	"go-scheduler-api/modules/event/task"
	hostrepository "go-scheduler-api/modules/host/repository"
	hostservice "go-scheduler-api/modules/host/service"
	tsrepository "go-scheduler-api/modules/timeslot/repository"
	tsservice "go-scheduler-api/modules/timeslot/service"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// buildServices wires the repair pipeline from the database up
func buildServices(db database.IDatabase, cfg *config.Config, locker tsservice.HostLocker) (repository.EventRepositoryInterface, service.IssueDetectorInterface, service.RepairServiceInterface) {
	unit := cfg.Scheduling.SlotUnitMinutes

	eventRepo := repository.NewEventRepository(db)
	issueRepo := repository.NewIssueRepository(db)
	hostRepo := hostrepository.NewHostRepository(db)
	timeslotRepo := tsrepository.NewTimeslotRepository(db)
	containerRepo := containerrepository.NewContainerRepository(db)

	detector := service.NewIssueDetector(hostRepo, timeslotRepo, issueRepo, unit)
	pool := hostservice.NewHostPool(hostRepo, timeslotRepo, eventRepo, unit)
	hostSvc := hostservice.NewHostService(hostRepo, pool)
	reservation := tsservice.NewReservationService(timeslotRepo, locker, unit)
	repair := service.NewRepairService(eventRepo, issueRepo, detector, hostSvc, reservation, containerRepo)

	return eventRepo, detector, repair
}

// Init initializes the event module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, cfg *config.Config, locker tsservice.HostLocker) {
	eventRepo, detector, repair := buildServices(db, cfg, locker)

	ctrl := controller.NewEventController(eventRepo, detector, repair)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e, mw)
}

// InitWorker registers the event module's background task handlers
func InitWorker(mux *asynq.ServeMux, db database.IDatabase, cfg *config.Config, locker tsservice.HostLocker) {
	_, _, repair := buildServices(db, cfg, locker)
	task.NewRepairTaskHandler(repair).Register(mux)
}

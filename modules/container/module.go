package container

import (
	"go-scheduler-api/core/database"
	"go-scheduler-api/core/middleware"
	"go-scheduler-api/modules/container/controller"
	"go-scheduler-api/modules/container/repository"
	"go-scheduler-api/modules/container/router"
	"go-scheduler-api/modules/container/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the container module and registers routes
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewContainerRepository(db)
	svc := service.NewContainerService(repo)
	ctrl := controller.NewContainerController(svc)
	rtr := router.NewContainerRouter(ctrl)

	rtr.Setup(e, mw)
}

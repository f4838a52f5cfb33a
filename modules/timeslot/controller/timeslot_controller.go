package controller

import (
	"time"

	"go-scheduler-api/core/controller"
	"go-scheduler-api/core/errors"
	"go-scheduler-api/modules/timeslot/dto"
	"go-scheduler-api/modules/timeslot/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TimeslotController handles timeslot HTTP requests
type TimeslotController struct {
	controller.BaseController
	Repo repository.TimeslotRepositoryInterface
}

func NewTimeslotController(repo repository.TimeslotRepositoryInterface) *TimeslotController {
	return &TimeslotController{
		BaseController: controller.NewBaseController(),
		Repo:           repo,
	}
}

// ListTimeslots handles GET /timeslots?host_id&venue_id&start&end
func (c *TimeslotController) ListTimeslots(ctx echo.Context) error {
	hostID, err := uuid.Parse(ctx.QueryParam("host_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid host ID")
	}
	venueID, err := uuid.Parse(ctx.QueryParam("venue_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid venue ID")
	}
	start, err := time.Parse(time.RFC3339, ctx.QueryParam("start"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "start must be RFC3339")
	}
	end, err := time.Parse(time.RFC3339, ctx.QueryParam("end"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "end must be RFC3339")
	}

	units, err := c.Repo.QueryTimeslots(ctx.Request().Context(), []uuid.UUID{hostID}, venueID, start, end)
	if err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to query timeslots")
	}

	return c.SuccessResponse(ctx, &dto.ListTimeslotsResponse{Units: units}, "Success")
}

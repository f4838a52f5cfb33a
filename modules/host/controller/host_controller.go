package controller

import (
	"go-scheduler-api/core/controller"
	"go-scheduler-api/core/errors"
	"go-scheduler-api/modules/host/dto"
	"go-scheduler-api/modules/host/service"
	tsentity "go-scheduler-api/modules/timeslot/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HostController handles host HTTP requests
type HostController struct {
	controller.BaseController
	HostService service.HostServiceInterface
}

func NewHostController(svc service.HostServiceInterface) *HostController {
	return &HostController{
		BaseController: controller.NewBaseController(),
		HostService:    svc,
	}
}

// ListHosts handles GET /hosts
func (c *HostController) ListHosts(ctx echo.Context) error {
	hosts, appErr := c.HostService.ListHosts(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, hosts, "Success")
}

// GetHost handles GET /hosts/:id
func (c *HostController) GetHost(ctx echo.Context) error {
	hostID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid host ID")
	}

	host, appErr := c.HostService.GetHost(ctx.Request().Context(), hostID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, host, "Success")
}

// MatchHosts handles POST /hosts/match
func (c *HostController) MatchHosts(ctx echo.Context) error {
	var req dto.MatchHostsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if req.DurationMinutes <= 0 {
		return c.BadRequest(errors.ErrInvalidInput, "duration_minutes must be positive")
	}

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid venue ID")
	}
	eventTypeID, err := uuid.Parse(req.EventTypeID)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event type ID")
	}

	withQuotaLimit := true
	if req.WithQuotaLimit != nil {
		withQuotaLimit = *req.WithQuotaLimit
	}

	window := tsentity.NewWindow(req.StartsAt, req.DurationMinutes)
	ranked, appErr := c.HostService.FindHostsForEvent(ctx.Request().Context(), window, venueID, eventTypeID, req.DurationMinutes, withQuotaLimit)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, &dto.MatchHostsResponse{Candidates: ranked}, "Success")
}

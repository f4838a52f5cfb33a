package controller

import (
	"go-scheduler-api/core/controller"
	"go-scheduler-api/core/errors"
	"go-scheduler-api/core/queue"
	"go-scheduler-api/modules/event/dto"
	"go-scheduler-api/modules/event/repository"
	"go-scheduler-api/modules/event/service"
	"go-scheduler-api/modules/event/task"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// EventController handles event HTTP requests
type EventController struct {
	controller.BaseController
	EventRepo     repository.EventRepositoryInterface
	Detector      service.IssueDetectorInterface
	RepairService service.RepairServiceInterface
}

func NewEventController(eventRepo repository.EventRepositoryInterface, detector service.IssueDetectorInterface, repairService service.RepairServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventRepo:      eventRepo,
		Detector:       detector,
		RepairService:  repairService,
	}
}

// GetEvent handles GET /events/:id
func (c *EventController) GetEvent(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	event, err := c.EventRepo.GetEventByID(ctx.Request().Context(), eventID)
	if err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to get event")
	}
	if event == nil {
		return c.NotFound(errors.ErrNotFound, "Event not found")
	}
	return c.SuccessResponse(ctx, event, "Success")
}

// DetectIssues handles GET /events/:id/issues. Runs detection and records
// any new findings as unrepaired issues.
func (c *EventController) DetectIssues(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	reqCtx := ctx.Request().Context()
	event, err := c.EventRepo.GetEventByID(reqCtx, eventID)
	if err != nil {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to get event")
	}
	if event == nil {
		return c.NotFound(errors.ErrNotFound, "Event not found")
	}

	if _, appErr := c.Detector.DetectAndRecord(reqCtx, event); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	issues, appErr := c.Detector.Detect(reqCtx, event)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, issues, "Success")
}

// RepairWeek handles POST /containers/:id/repair-week
func (c *EventController) RepairWeek(ctx echo.Context) error {
	containerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid container ID")
	}

	var req dto.RepairWeekRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if req.Year == 0 || req.Month < 1 || req.Month > 12 || req.WeekOfMonth < 1 || req.WeekOfMonth > 5 {
		return c.BadRequest(errors.ErrInvalidInput, "year, month and week_of_month are required")
	}

	if req.Async {
		if client := queue.GetClient(); client != nil {
			t, err := task.NewRepairWeekTask(task.RepairWeekPayload{
				ContainerID: containerID,
				Year:        req.Year,
				Month:       req.Month,
				WeekOfMonth: req.WeekOfMonth,
			})
			if err != nil {
				return c.InternalServerError(errors.ErrInternalServer, "Failed to build repair task")
			}
			info, err := client.EnqueueContext(ctx.Request().Context(), t)
			if err != nil {
				return c.InternalServerError(errors.ErrInternalServer, "Failed to enqueue repair task")
			}
			return c.SuccessResponse(ctx, &dto.RepairWeekQueuedResponse{TaskID: info.ID, Queued: true}, "Repair queued")
		}
		// Queue disabled: fall through to the inline path.
	}

	report, appErr := c.RepairService.RepairWeek(ctx.Request().Context(), containerID, req.Year, req.Month, req.WeekOfMonth)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, report, "Repair completed")
}

package controller

import (
	"go-scheduler-api/core/controller"
	"go-scheduler-api/core/errors"
	"go-scheduler-api/modules/container/dto"
	"go-scheduler-api/modules/container/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContainerController handles container HTTP requests
type ContainerController struct {
	controller.BaseController
	ContainerService service.ContainerServiceInterface
}

func NewContainerController(svc service.ContainerServiceInterface) *ContainerController {
	return &ContainerController{
		BaseController:   controller.NewBaseController(),
		ContainerService: svc,
	}
}

// CreateContainer handles POST /containers
func (c *ContainerController) CreateContainer(ctx echo.Context) error {
	var req dto.CreateContainerRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ContainerService.CreateContainer(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Container created successfully")
}

// GetContainer handles GET /containers/:id
func (c *ContainerController) GetContainer(ctx echo.Context) error {
	containerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid container ID")
	}

	result, appErr := c.ContainerService.GetContainer(ctx.Request().Context(), containerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// ListAuditNotes handles GET /containers/:id/notes
func (c *ContainerController) ListAuditNotes(ctx echo.Context) error {
	containerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid container ID")
	}

	notes, appErr := c.ContainerService.ListAuditNotes(ctx.Request().Context(), containerID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, notes, "Success")
}

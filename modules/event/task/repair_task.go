package task

import (
	"context"
	"encoding/json"
	"fmt"

	"go-scheduler-api/core/constants"
	"go-scheduler-api/core/logger"
	"go-scheduler-api/modules/event/service"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// RepairWeekPayload identifies one container week to repair in the background
type RepairWeekPayload struct {
	ContainerID uuid.UUID `json:"container_id"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	WeekOfMonth int       `json:"week_of_month"`
}

// NewRepairWeekTask builds the asynq task for a container-week repair
func NewRepairWeekTask(p RepairWeekPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal repair payload: %w", err)
	}
	return asynq.NewTask(constants.TaskTypeRepairWeek, payload, asynq.MaxRetry(3)), nil
}

// RepairTaskHandler processes queued repair tasks
type RepairTaskHandler struct {
	repairService service.RepairServiceInterface
}

func NewRepairTaskHandler(repairService service.RepairServiceInterface) *RepairTaskHandler {
	return &RepairTaskHandler{repairService: repairService}
}

// HandleRepairWeek runs one container-week repair from the queue
func (h *RepairTaskHandler) HandleRepairWeek(ctx context.Context, t *asynq.Task) error {
	var p RepairWeekPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal repair payload: %w", err)
	}

	report, appErr := h.repairService.RepairWeek(ctx, p.ContainerID, p.Year, p.Month, p.WeekOfMonth)
	if appErr != nil {
		return fmt.Errorf("repair week failed: %w", appErr)
	}

	logger.Info("RepairTaskHandler:HandleRepairWeek",
		"container_id", p.ContainerID,
		"year", p.Year,
		"month", p.Month,
		"week_of_month", p.WeekOfMonth,
		"repaired", report.RepairedCount,
		"unrepaired", report.UnrepairedCount,
	)
	return nil
}

// Register mounts the handler on the worker mux
func (h *RepairTaskHandler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(constants.TaskTypeRepairWeek, h.HandleRepairWeek)
}

package service

import (
	"context"

	"go-scheduler-api/core/errors"
	"go-scheduler-api/modules/container/dto"
	"go-scheduler-api/modules/container/entity"
	"go-scheduler-api/modules/container/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ContainerService handles container business logic
type ContainerService struct {
	repo repository.ContainerRepositoryInterface
}

// ContainerServiceInterface defines the service contract
type ContainerServiceInterface interface {
	CreateContainer(ctx context.Context, req *dto.CreateContainerRequest) (*dto.ContainerResponse, *errors.AppError)
	GetContainer(ctx context.Context, id uuid.UUID) (*dto.ContainerResponse, *errors.AppError)
	ListAuditNotes(ctx context.Context, containerID uuid.UUID) ([]dto.AuditNoteResponse, *errors.AppError)
}

func NewContainerService(repo repository.ContainerRepositoryInterface) ContainerServiceInterface {
	return &ContainerService{repo: repo}
}

func (s *ContainerService) CreateContainer(ctx context.Context, req *dto.CreateContainerRequest) (*dto.ContainerResponse, *errors.AppError) {
	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid venue ID", err)
	}
	if req.Name == "" || req.Year == 0 || req.Month < 1 || req.Month > 12 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name, year and month are required", nil)
	}

	container := &entity.Container{
		Name:    req.Name,
		Slug:    slug.Make(req.Name),
		VenueID: venueID,
		Year:    req.Year,
		Month:   req.Month,
	}

	created, err := s.repo.CreateContainer(ctx, container)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create container", err)
	}
	return toContainerResponse(created), nil
}

func (s *ContainerService) GetContainer(ctx context.Context, id uuid.UUID) (*dto.ContainerResponse, *errors.AppError) {
	container, err := s.repo.GetContainerByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get container", err)
	}
	if container == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Container not found", nil)
	}
	return toContainerResponse(container), nil
}

func (s *ContainerService) ListAuditNotes(ctx context.Context, containerID uuid.UUID) ([]dto.AuditNoteResponse, *errors.AppError) {
	notes, err := s.repo.ListAuditNotes(ctx, containerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list audit notes", err)
	}

	result := make([]dto.AuditNoteResponse, 0, len(notes))
	for _, n := range notes {
		result = append(result, dto.AuditNoteResponse{
			ID:        n.ID,
			Note:      n.Note,
			CreatedAt: n.CreatedAt,
		})
	}
	return result, nil
}

func toContainerResponse(c *entity.Container) *dto.ContainerResponse {
	return &dto.ContainerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Slug:    c.Slug,
		VenueID: c.VenueID,
		Year:    c.Year,
		Month:   c.Month,
	}
}

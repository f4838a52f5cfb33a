package repository

import (
	"context"
	"database/sql"

	"go-scheduler-api/core/database"
	"go-scheduler-api/core/logger"
	"go-scheduler-api/modules/container/entity"

	"github.com/google/uuid"
)

// ContainerRepository handles container and audit note database operations
type ContainerRepository struct {
	DB database.IDatabase
}

func NewContainerRepository(db database.IDatabase) *ContainerRepository {
	return &ContainerRepository{DB: db}
}

// ContainerRepositoryInterface defines the repository contract
type ContainerRepositoryInterface interface {
	CreateContainer(ctx context.Context, container *entity.Container) (*entity.Container, error)
	GetContainerByID(ctx context.Context, id uuid.UUID) (*entity.Container, error)
	AppendAuditNote(ctx context.Context, containerID uuid.UUID, text string) error
	ListAuditNotes(ctx context.Context, containerID uuid.UUID) ([]entity.AuditNote, error)
}

func (r *ContainerRepository) CreateContainer(ctx context.Context, container *entity.Container) (*entity.Container, error) {
	query := `
		INSERT INTO containers (name, slug, venue_id, year, month)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, slug, venue_id, year, month, created_at, updated_at
	`

	var created entity.Container
	err := r.DB.GetContext(ctx, &created, query,
		container.Name, container.Slug, container.VenueID, container.Year, container.Month)
	if err != nil {
		logger.Error("ContainerRepository:CreateContainer", err)
		return nil, err
	}
	return &created, nil
}

func (r *ContainerRepository) GetContainerByID(ctx context.Context, id uuid.UUID) (*entity.Container, error) {
	query := `
		SELECT id, name, slug, venue_id, year, month, created_at, updated_at
		FROM containers WHERE id = $1
	`

	var container entity.Container
	err := r.DB.GetContext(ctx, &container, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ContainerRepository:GetContainerByID", err)
		return nil, err
	}
	return &container, nil
}

func (r *ContainerRepository) AppendAuditNote(ctx context.Context, containerID uuid.UUID, text string) error {
	query := `INSERT INTO container_audit_notes (container_id, note) VALUES ($1, $2)`
	if err := r.DB.ExecContext(ctx, query, containerID, text); err != nil {
		logger.Error("ContainerRepository:AppendAuditNote", err)
		return err
	}
	return nil
}

func (r *ContainerRepository) ListAuditNotes(ctx context.Context, containerID uuid.UUID) ([]entity.AuditNote, error) {
	query := `
		SELECT id, container_id, note, created_at
		FROM container_audit_notes
		WHERE container_id = $1
		ORDER BY created_at, id
	`

	var notes []entity.AuditNote
	err := r.DB.SelectContext(ctx, &notes, query, containerID)
	if err != nil {
		logger.Error("ContainerRepository:ListAuditNotes", err)
		return nil, err
	}
	return notes, nil
}

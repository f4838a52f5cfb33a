package repository

import (
	"context"

	"go-scheduler-api/core/database"
	"go-scheduler-api/core/logger"
	"go-scheduler-api/modules/event/entity"

	"github.com/google/uuid"
)

// IssueRepository handles event issue database operations
type IssueRepository struct {
	DB database.IDatabase
}

func NewIssueRepository(db database.IDatabase) *IssueRepository {
	return &IssueRepository{DB: db}
}

// IssueRepositoryInterface defines the repository contract
type IssueRepositoryInterface interface {
	CreateIssue(ctx context.Context, eventID uuid.UUID, kind entity.IssueKind, description string) (*entity.EventIssue, error)
	UpdateIssueStatus(ctx context.Context, issueID uuid.UUID, status entity.IssueStatus) (*entity.EventIssue, error)
	ListByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.EventIssue, error)
	ListUnrepairedByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.EventIssue, error)
}

const issueColumns = `id, event_id, kind, status, description, created_at, updated_at`

func (r *IssueRepository) CreateIssue(ctx context.Context, eventID uuid.UUID, kind entity.IssueKind, description string) (*entity.EventIssue, error) {
	query := `
		INSERT INTO event_issues (event_id, kind, status, description)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + issueColumns

	var issue entity.EventIssue
	err := r.DB.GetContext(ctx, &issue, query, eventID, kind, entity.IssueStatusUnrepaired, description)
	if err != nil {
		logger.Error("IssueRepository:CreateIssue", err)
		return nil, err
	}
	return &issue, nil
}

func (r *IssueRepository) UpdateIssueStatus(ctx context.Context, issueID uuid.UUID, status entity.IssueStatus) (*entity.EventIssue, error) {
	query := `
		UPDATE event_issues
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + issueColumns

	var issue entity.EventIssue
	err := r.DB.GetContext(ctx, &issue, query, issueID, status)
	if err != nil {
		logger.Error("IssueRepository:UpdateIssueStatus", err)
		return nil, err
	}
	return &issue, nil
}

func (r *IssueRepository) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.EventIssue, error) {
	query := `SELECT ` + issueColumns + ` FROM event_issues WHERE event_id = $1 ORDER BY created_at, id`

	var issues []entity.EventIssue
	err := r.DB.SelectContext(ctx, &issues, query, eventID)
	if err != nil {
		logger.Error("IssueRepository:ListByEventID", err)
		return nil, err
	}
	return issues, nil
}

func (r *IssueRepository) ListUnrepairedByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.EventIssue, error) {
	query := `
		SELECT ` + issueColumns + `
		FROM event_issues
		WHERE event_id = $1 AND status = $2
		ORDER BY created_at, id
	`

	var issues []entity.EventIssue
	err := r.DB.SelectContext(ctx, &issues, query, eventID, entity.IssueStatusUnrepaired)
	if err != nil {
		logger.Error("IssueRepository:ListUnrepairedByEventID", err)
		return nil, err
	}
	return issues, nil
}

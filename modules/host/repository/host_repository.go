package repository

import (
	"context"
	"database/sql"

	"go-scheduler-api/core/database"
	"go-scheduler-api/core/logger"
	"go-scheduler-api/modules/host/entity"

	"github.com/google/uuid"
)

// HostRepository handles host database operations. Hosts are read-only to
// the scheduling engine; host management lives elsewhere.
type HostRepository struct {
	DB database.IDatabase
}

func NewHostRepository(db database.IDatabase) *HostRepository {
	return &HostRepository{DB: db}
}

// HostRepositoryInterface defines the repository contract
type HostRepositoryInterface interface {
	GetHostByID(ctx context.Context, id uuid.UUID) (*entity.Host, error)
	ListHosts(ctx context.Context) ([]entity.Host, error)

	// GetQualifiedHosts returns hosts whose qualified venue set contains
	// venueID and qualified type set contains eventTypeID.
	GetQualifiedHosts(ctx context.Context, venueID, eventTypeID uuid.UUID) ([]entity.Host, error)
}

const hostColumns = `
	id, full_name, qualified_venue_ids::text[] AS qualified_venue_ids,
	qualified_type_ids::text[] AS qualified_type_ids,
	quota_target, quota_min, quota_max, created_at, updated_at
`

func (r *HostRepository) GetHostByID(ctx context.Context, id uuid.UUID) (*entity.Host, error) {
	query := `SELECT ` + hostColumns + ` FROM hosts WHERE id = $1`

	var host entity.Host
	err := r.DB.GetContext(ctx, &host, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("HostRepository:GetHostByID", err)
		return nil, err
	}
	return &host, nil
}

func (r *HostRepository) ListHosts(ctx context.Context) ([]entity.Host, error) {
	query := `SELECT ` + hostColumns + ` FROM hosts ORDER BY full_name`

	var hosts []entity.Host
	err := r.DB.SelectContext(ctx, &hosts, query)
	if err != nil {
		logger.Error("HostRepository:ListHosts", err)
		return nil, err
	}
	return hosts, nil
}

func (r *HostRepository) GetQualifiedHosts(ctx context.Context, venueID, eventTypeID uuid.UUID) ([]entity.Host, error) {
	query := `
		SELECT ` + hostColumns + `
		FROM hosts
		WHERE $1 = ANY(qualified_venue_ids)
		  AND $2 = ANY(qualified_type_ids)
		ORDER BY id
	`

	var hosts []entity.Host
	err := r.DB.SelectContext(ctx, &hosts, query, venueID, eventTypeID)
	if err != nil {
		logger.Error("HostRepository:GetQualifiedHosts", err)
		return nil, err
	}
	return hosts, nil
}

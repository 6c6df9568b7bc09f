package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-lifecycle-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ApplicationRepo implements ports.ApplicationRepository against the global
// application registry table.
type ApplicationRepo struct {
	pool Pool
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(pool Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

// FindByID fetches a registered application. Returns nil, nil when absent.
func (r *ApplicationRepo) FindByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT id, description, status, creation_date, update_date
		FROM applications WHERE id = $1`

	a := &domain.Application{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Description, &a.Status, &a.CreationDate, &a.UpdateDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return a, nil
}

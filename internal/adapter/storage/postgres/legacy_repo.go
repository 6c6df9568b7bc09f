package postgres

import (
	"context"
	"errors"
	"fmt"

	"wallet-lifecycle-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// LegacyAssociationRepo implements ports.LegacyAssociationRepository. The
// legacy wallet id is the primary key; a second unique index covers the
// contract id. Rows are immutable once inserted.
type LegacyAssociationRepo struct {
	pool Pool
}

// NewLegacyAssociationRepo creates a new LegacyAssociationRepo.
func NewLegacyAssociationRepo(pool Pool) *LegacyAssociationRepo {
	return &LegacyAssociationRepo{pool: pool}
}

// Create inserts a new association. A collision on the legacy id or contract
// id returns an error wrapping domain.ErrDuplicateKey.
func (r *LegacyAssociationRepo) Create(ctx context.Context, a *domain.LegacyAssociation) (*domain.LegacyAssociation, error) {
	query := `INSERT INTO legacy_wallet_associations (legacy_wallet_id, wallet_id, contract_id, creation_date)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, a.LegacyWalletID, a.WalletID, a.ContractID, a.CreationDate)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("insert association %s: %w", a.LegacyWalletID, domain.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("insert association: %w", err)
	}
	return a, nil
}

// FindByLegacyID fetches the association for a legacy wallet id. Returns
// nil, nil when absent.
func (r *LegacyAssociationRepo) FindByLegacyID(ctx context.Context, legacyWalletID string) (*domain.LegacyAssociation, error) {
	query := `SELECT legacy_wallet_id, wallet_id, contract_id, creation_date
		FROM legacy_wallet_associations WHERE legacy_wallet_id = $1`
	return r.scan(r.pool.QueryRow(ctx, query, legacyWalletID), "get association by legacy id")
}

// FindByContractID fetches the association for a contract id. Returns
// nil, nil when absent.
func (r *LegacyAssociationRepo) FindByContractID(ctx context.Context, contractID string) (*domain.LegacyAssociation, error) {
	query := `SELECT legacy_wallet_id, wallet_id, contract_id, creation_date
		FROM legacy_wallet_associations WHERE contract_id = $1`
	return r.scan(r.pool.QueryRow(ctx, query, contractID), "get association by contract id")
}

func (r *LegacyAssociationRepo) scan(row pgx.Row, op string) (*domain.LegacyAssociation, error) {
	a := &domain.LegacyAssociation{}
	err := row.Scan(&a.LegacyWalletID, &a.WalletID, &a.ContractID, &a.CreationDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

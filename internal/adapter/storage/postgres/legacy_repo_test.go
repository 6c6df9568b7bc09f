package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-lifecycle-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssociation() *domain.LegacyAssociation {
	return &domain.LegacyAssociation{
		LegacyWalletID: "legacy-1",
		WalletID:       uuid.New(),
		ContractID:     "W1741948200000abcd",
		CreationDate:   time.Now().UTC().Truncate(time.Microsecond),
	}
}

func associationRow(a *domain.LegacyAssociation) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"legacy_wallet_id", "wallet_id", "contract_id", "creation_date"}).
		AddRow(a.LegacyWalletID, a.WalletID, a.ContractID, a.CreationDate)
}

func TestLegacyAssociationRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLegacyAssociationRepo(mock)
	a := newTestAssociation()

	mock.ExpectExec("INSERT INTO legacy_wallet_associations").
		WithArgs(a.LegacyWalletID, a.WalletID, a.ContractID, a.CreationDate).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	saved, err := repo.Create(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, a.LegacyWalletID, saved.LegacyWalletID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyAssociationRepo_Create_DuplicateKey(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLegacyAssociationRepo(mock)
	a := newTestAssociation()

	mock.ExpectExec("INSERT INTO legacy_wallet_associations").
		WithArgs(a.LegacyWalletID, a.WalletID, a.ContractID, a.CreationDate).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "legacy_wallet_associations_pkey"})

	_, err = repo.Create(context.Background(), a)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyAssociationRepo_FindByLegacyID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLegacyAssociationRepo(mock)
	a := newTestAssociation()

	mock.ExpectQuery("SELECT .+ FROM legacy_wallet_associations WHERE legacy_wallet_id").
		WithArgs(a.LegacyWalletID).
		WillReturnRows(associationRow(a))

	result, err := repo.FindByLegacyID(context.Background(), a.LegacyWalletID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.WalletID, result.WalletID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyAssociationRepo_FindByLegacyID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLegacyAssociationRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM legacy_wallet_associations WHERE legacy_wallet_id").
		WithArgs("unknown").
		WillReturnRows(pgxmock.NewRows([]string{"legacy_wallet_id", "wallet_id", "contract_id", "creation_date"}))

	result, err := repo.FindByLegacyID(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLegacyAssociationRepo_FindByContractID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewLegacyAssociationRepo(mock)
	a := newTestAssociation()

	mock.ExpectQuery("SELECT .+ FROM legacy_wallet_associations WHERE contract_id").
		WithArgs(a.ContractID).
		WillReturnRows(associationRow(a))

	result, err := repo.FindByContractID(context.Background(), a.ContractID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.LegacyWalletID, result.LegacyWalletID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

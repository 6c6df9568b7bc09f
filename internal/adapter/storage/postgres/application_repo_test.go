package postgres

import (
	"context"
	"testing"
	"time"

	"wallet-lifecycle-service/internal/core/domain"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationRepo_FindByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewApplicationRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM applications WHERE id").
		WithArgs("PAGOPA").
		WillReturnRows(pgxmock.NewRows([]string{"id", "description", "status", "creation_date", "update_date"}).
			AddRow("PAGOPA", "pagoPA payments", domain.ApplicationStatusEnabled, now, now))

	app, err := repo.FindByID(context.Background(), "PAGOPA")
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, "PAGOPA", app.ID)
	assert.Equal(t, domain.ApplicationStatusEnabled, app.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepo_FindByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewApplicationRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM applications WHERE id").
		WithArgs("UNKNOWN").
		WillReturnRows(pgxmock.NewRows([]string{"id", "description", "status", "creation_date", "update_date"}))

	app, err := repo.FindByID(context.Background(), "UNKNOWN")
	require.NoError(t, err)
	assert.Nil(t, app)
	assert.NoError(t, mock.ExpectationsWereMet())
}

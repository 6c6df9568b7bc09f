package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"wallet-lifecycle-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentMigration fires the same legacy wallet id at the migration
// endpoint from many goroutines at once. The uniqueness constraint on the
// association is the only coordination; every caller must converge on the one
// winning wallet, and the audit log must record exactly one migration.
func TestConcurrentMigration(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	const callers = 32
	userID := uuid.New()
	payload, err := json.Marshal(map[string]string{
		"legacy_wallet_id": "legacy-42",
		"user_id":          userID.String(),
	})
	require.NoError(t, err)

	type outcome struct {
		status     int
		walletID   string
		contractID string
	}
	results := make([]outcome, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := http.Post(
				app.server.URL+"/api/v1/internal/migrations/wallets",
				"application/json",
				bytes.NewReader(payload),
			)
			if err != nil {
				t.Error(err)
				return
			}
			defer resp.Body.Close()
			raw, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Error(err)
				return
			}

			var body struct {
				Data struct {
					WalletID   string `json:"wallet_id"`
					ContractID string `json:"contract_id"`
				} `json:"data"`
			}
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Errorf("unmarshal %q: %v", raw, err)
				return
			}
			results[i] = outcome{
				status:     resp.StatusCode,
				walletID:   body.Data.WalletID,
				contractID: body.Data.ContractID,
			}
		}(i)
	}
	wg.Wait()

	// Every caller succeeded and saw the same wallet
	first := results[0]
	require.Equal(t, http.StatusOK, first.status)
	require.NotEmpty(t, first.walletID)
	require.NotEmpty(t, first.contractID)
	for _, r := range results {
		assert.Equal(t, http.StatusOK, r.status)
		assert.Equal(t, first.walletID, r.walletID)
		assert.Equal(t, first.contractID, r.contractID)
	}

	// One association, one wallet, one migration event
	assert.Equal(t, 1, app.assocRepo.count())

	wallets, err := app.walletRepo.FindByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, wallets, 1)
	assert.Equal(t, domain.WalletStatusCreated, wallets[0].Status)

	assert.Len(t, app.events.byType(domain.EventTypeWalletMigratedAdded), 1)
}

// TestConcurrentMigration_ReplayAfterSettle verifies that a later replay of an
// already-migrated legacy id is a pure read.
func TestConcurrentMigration_ReplayAfterSettle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	userID := uuid.New()
	body := map[string]string{
		"legacy_wallet_id": "legacy-7",
		"user_id":          userID.String(),
	}

	resp, first := app.post(t, "/api/v1/internal/migrations/wallets", "", body, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, second := app.post(t, "/api/v1/internal/migrations/wallets", "", body, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, first["data"], second["data"])
	assert.Len(t, app.events.byType(domain.EventTypeWalletMigratedAdded), 1)
}

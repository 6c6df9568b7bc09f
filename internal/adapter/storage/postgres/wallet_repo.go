package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"wallet-lifecycle-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository. Applications, clients and
// instrument details are stored as JSONB; the primary key on id and the
// unique index on contract_id surface as domain.ErrDuplicateKey.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

const walletColumns = `id, user_id, status, payment_method_id, contract_id,
	applications, clients, validation_operation_result, validation_error_code,
	error_reason, details_type, details, version, creation_date, update_date,
	onboarding_channel`

// Create inserts a new wallet. A collision on the wallet id or contract id
// returns an error wrapping domain.ErrDuplicateKey.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) (*domain.Wallet, error) {
	apps, clients, detailsType, details, err := marshalWalletJSON(w)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO wallets (` + walletColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err = r.pool.Exec(ctx, query,
		w.ID, w.UserID, w.Status, w.PaymentMethodID, w.ContractID,
		apps, clients, w.ValidationOperationResult, w.ValidationErrorCode,
		w.ErrorReason, detailsType, details, w.Version, w.CreationDate,
		w.UpdateDate, w.OnboardingChannel,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("insert wallet %s: %w", w.ID, domain.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("insert wallet: %w", err)
	}
	return w, nil
}

// Update rewrites the wallet row and bumps its version.
func (r *WalletRepo) Update(ctx context.Context, w *domain.Wallet) (*domain.Wallet, error) {
	apps, clients, detailsType, details, err := marshalWalletJSON(w)
	if err != nil {
		return nil, err
	}

	query := `UPDATE wallets SET status = $1, contract_id = $2, applications = $3,
		clients = $4, validation_operation_result = $5, validation_error_code = $6,
		error_reason = $7, details_type = $8, details = $9, version = version + 1,
		update_date = $10
		WHERE id = $11`

	tag, err := r.pool.Exec(ctx, query,
		w.Status, w.ContractID, apps, clients,
		w.ValidationOperationResult, w.ValidationErrorCode, w.ErrorReason,
		detailsType, details, w.UpdateDate, w.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("wallet not found: %s", w.ID)
	}
	w.Version++
	return w, nil
}

// FindByID fetches a wallet by id. Returns nil, nil when absent.
func (r *WalletRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`
	return r.scanWallet(r.pool.QueryRow(ctx, query, id), "get wallet by id")
}

// FindByIDAndUserID fetches a wallet owned by the user. Returns nil, nil when
// absent.
func (r *WalletRepo) FindByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1 AND user_id = $2`
	return r.scanWallet(r.pool.QueryRow(ctx, query, id, userID), "get wallet by id and user")
}

// FindByUserID fetches all wallets of a user.
func (r *WalletRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 ORDER BY creation_date`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get wallets by user: %w", err)
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		w, err := scanWalletRow(rows)
		if err != nil {
			return nil, fmt.Errorf("get wallets by user: %w", err)
		}
		wallets = append(wallets, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get wallets by user: %w", err)
	}
	return wallets, nil
}

// FindByUserIDAndGatewayInstrumentID fetches the user's VALIDATED wallet
// carrying the given provider-gateway instrument id. Returns nil, nil when
// absent.
func (r *WalletRepo) FindByUserIDAndGatewayInstrumentID(ctx context.Context, userID uuid.UUID, gatewayInstrumentID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets
		WHERE user_id = $1 AND status = $2
		AND details ->> 'payment_instrument_gateway_id' = $3`
	row := r.pool.QueryRow(ctx, query, userID, domain.WalletStatusValidated, gatewayInstrumentID)
	return r.scanWallet(row, "get wallet by instrument")
}

func (r *WalletRepo) scanWallet(row pgx.Row, op string) (*domain.Wallet, error) {
	w, err := scanWalletRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return w, nil
}

func scanWalletRow(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	var apps, clients []byte
	var detailsType *string
	var details []byte

	err := row.Scan(
		&w.ID, &w.UserID, &w.Status, &w.PaymentMethodID, &w.ContractID,
		&apps, &clients, &w.ValidationOperationResult, &w.ValidationErrorCode,
		&w.ErrorReason, &detailsType, &details, &w.Version, &w.CreationDate,
		&w.UpdateDate, &w.OnboardingChannel,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(apps, &w.Applications); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}
	if err := json.Unmarshal(clients, &w.Clients); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	if detailsType != nil {
		w.Details, err = unmarshalDetails(domain.DetailsType(*detailsType), details)
		if err != nil {
			return nil, err
		}
	}
	return w, nil
}

func marshalWalletJSON(w *domain.Wallet) (apps, clients []byte, detailsType *string, details []byte, err error) {
	apps, err = json.Marshal(w.Applications)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode applications: %w", err)
	}
	clients, err = json.Marshal(w.Clients)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode clients: %w", err)
	}
	if w.Details != nil {
		dt := string(w.Details.DetailsType())
		detailsType = &dt
		details, err = json.Marshal(w.Details)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("encode details: %w", err)
		}
	}
	return apps, clients, detailsType, details, nil
}

func unmarshalDetails(detailsType domain.DetailsType, raw []byte) (domain.Details, error) {
	switch detailsType {
	case domain.DetailsTypeCards:
		var d domain.CardDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode card details: %w", err)
		}
		return d, nil
	case domain.DetailsTypePayPal:
		var d domain.PayPalDetails
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode paypal details: %w", err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown details type %q", detailsType)
	}
}

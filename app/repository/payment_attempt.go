package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/vibast-solutions/ms-go-checkout/app/entity"
)

const attemptColumns = `
	id, order_id, order_number, reference, provider,
	provider_payment_id, redirect_url, expires_at, status,
	created_at, updated_at
`

type PaymentAttemptRepository struct {
	db DBTX
}

func NewPaymentAttemptRepository(db DBTX) *PaymentAttemptRepository {
	return &PaymentAttemptRepository{db: db}
}

func (r *PaymentAttemptRepository) Create(ctx context.Context, attempt *entity.PaymentAttempt) error {
	query := `
		INSERT INTO payment_attempts (
			order_id, order_number, reference, provider,
			provider_payment_id, redirect_url, expires_at, status,
			created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		attempt.OrderID,
		attempt.OrderNumber,
		attempt.Reference,
		attempt.Provider,
		nullableStringValue(attempt.ProviderPaymentID),
		nullableStringValue(attempt.RedirectURL),
		nullableTimeValue(attempt.ExpiresAt),
		string(attempt.Status),
		attempt.CreatedAt,
		attempt.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	attempt.ID = uint64(id)
	return nil
}

func (r *PaymentAttemptRepository) FindLatestOpenByOrderID(ctx context.Context, orderID uint64) (*entity.PaymentAttempt, error) {
	query := `SELECT ` + attemptColumns + `
		FROM payment_attempts
		WHERE order_id = ? AND status = ?
		ORDER BY id DESC
		LIMIT 1
	`

	attempt := &entity.PaymentAttempt{}
	if err := scanAttempt(r.db.QueryRowContext(ctx, query, orderID, string(entity.AttemptStatusOpen)), attempt); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return attempt, nil
}

func (r *PaymentAttemptRepository) ListByOrderID(ctx context.Context, orderID uint64) ([]*entity.PaymentAttempt, error) {
	query := `SELECT ` + attemptColumns + `
		FROM payment_attempts
		WHERE order_id = ?
		ORDER BY id ASC
	`
	return r.list(ctx, query, orderID)
}

func (r *PaymentAttemptRepository) ListExpiredOpen(ctx context.Context, now time.Time, limit int32) ([]*entity.PaymentAttempt, error) {
	query := `SELECT ` + attemptColumns + `
		FROM payment_attempts
		WHERE status = ?
		  AND expires_at IS NOT NULL
		  AND expires_at <= ?
		ORDER BY expires_at ASC
		LIMIT ?
	`
	return r.list(ctx, query, string(entity.AttemptStatusOpen), now, limit)
}

// CloseOpen moves every open attempt of the order to status.
func (r *PaymentAttemptRepository) CloseOpen(ctx context.Context, orderID uint64, status entity.AttemptStatus, updatedAt time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE payment_attempts SET status = ?, updated_at = ? WHERE order_id = ? AND status = ?`,
		string(status), updatedAt, orderID, string(entity.AttemptStatusOpen),
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// UpdateStatus is conditional on the attempt still being in from.
func (r *PaymentAttemptRepository) UpdateStatus(ctx context.Context, id uint64, from, to entity.AttemptStatus, updatedAt time.Time) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE payment_attempts SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
		string(to), updatedAt, id, string(from),
	)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PaymentAttemptRepository) list(ctx context.Context, query string, args ...interface{}) ([]*entity.PaymentAttempt, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attempts := make([]*entity.PaymentAttempt, 0)
	for rows.Next() {
		item := &entity.PaymentAttempt{}
		if err := scanAttempt(rows, item); err != nil {
			return nil, err
		}
		attempts = append(attempts, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return attempts, nil
}

func scanAttempt(scan rowScanner, attempt *entity.PaymentAttempt) error {
	var providerPaymentID sql.NullString
	var redirectURL sql.NullString
	var expiresAt sql.NullTime
	var status string

	err := scan.Scan(
		&attempt.ID,
		&attempt.OrderID,
		&attempt.OrderNumber,
		&attempt.Reference,
		&attempt.Provider,
		&providerPaymentID,
		&redirectURL,
		&expiresAt,
		&status,
		&attempt.CreatedAt,
		&attempt.UpdatedAt,
	)
	if err != nil {
		return err
	}

	attempt.ProviderPaymentID = stringPtrFromNull(providerPaymentID)
	attempt.RedirectURL = stringPtrFromNull(redirectURL)
	attempt.ExpiresAt = timePtrFromNull(expiresAt)
	attempt.Status = entity.AttemptStatus(status)

	return nil
}

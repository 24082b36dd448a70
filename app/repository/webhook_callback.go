package repository

import (
	"context"
	"database/sql"

	"github.com/vibast-solutions/ms-go-checkout/app/entity"
)

type WebhookCallbackRepository struct {
	db DBTX
}

func NewWebhookCallbackRepository(db DBTX) *WebhookCallbackRepository {
	return &WebhookCallbackRepository{db: db}
}

func (r *WebhookCallbackRepository) Create(ctx context.Context, callback *entity.WebhookCallback) error {
	query := `
		INSERT INTO webhook_callbacks (
			order_id, provider, order_number, signature, payload, status, error, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		nullableUint64Value(callback.OrderID),
		callback.Provider,
		callback.OrderNumber,
		callback.Signature,
		callback.Payload,
		callback.Status,
		nullableStringValue(callback.Error),
		callback.CreatedAt,
		callback.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	callback.ID = uint64(id)

	return nil
}

func (r *WebhookCallbackRepository) ListByOrderID(ctx context.Context, orderID uint64) ([]*entity.WebhookCallback, error) {
	query := `
		SELECT id, order_id, provider, order_number, signature, payload, status, error, created_at, updated_at
		FROM webhook_callbacks
		WHERE order_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	callbacks := make([]*entity.WebhookCallback, 0)
	for rows.Next() {
		var linkedOrderID sql.NullInt64
		var callbackErr sql.NullString

		item := &entity.WebhookCallback{}
		if err := rows.Scan(
			&item.ID,
			&linkedOrderID,
			&item.Provider,
			&item.OrderNumber,
			&item.Signature,
			&item.Payload,
			&item.Status,
			&callbackErr,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		item.OrderID = uint64PtrFromNull(linkedOrderID)
		item.Error = stringPtrFromNull(callbackErr)

		callbacks = append(callbacks, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return callbacks, nil
}

package repository

import (
	"context"
	"database/sql"

	"github.com/vibast-solutions/ms-go-checkout/app/entity"
)

type OrderEventRepository struct {
	db DBTX
}

func NewOrderEventRepository(db DBTX) *OrderEventRepository {
	return &OrderEventRepository{db: db}
}

func (r *OrderEventRepository) Create(ctx context.Context, event *entity.OrderEvent) error {
	payloadJSON, err := serializePayload(event.Payload)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO order_events (
			order_id, event_type, old_status, new_status, provider_transaction_id, payload_json, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var oldStatus interface{}
	if event.OldStatus != nil {
		oldStatus = string(*event.OldStatus)
	}

	result, err := r.db.ExecContext(ctx, query,
		event.OrderID,
		event.EventType,
		oldStatus,
		string(event.NewStatus),
		nullableStringValue(event.ProviderTransactionID),
		payloadJSON,
		event.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	event.ID = uint64(id)

	return nil
}

func (r *OrderEventRepository) ListByOrderID(ctx context.Context, orderID uint64) ([]*entity.OrderEvent, error) {
	query := `
		SELECT id, order_id, event_type, old_status, new_status, provider_transaction_id, payload_json, created_at
		FROM order_events
		WHERE order_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*entity.OrderEvent, 0)
	for rows.Next() {
		var oldStatus sql.NullString
		var newStatus string
		var transactionID sql.NullString
		var payloadJSON string

		item := &entity.OrderEvent{}
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.EventType,
			&oldStatus,
			&newStatus,
			&transactionID,
			&payloadJSON,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}

		if oldStatus.Valid {
			status := entity.PaymentStatus(oldStatus.String)
			item.OldStatus = &status
		}
		item.NewStatus = entity.PaymentStatus(newStatus)
		item.ProviderTransactionID = stringPtrFromNull(transactionID)
		payload, err := parsePayload(payloadJSON)
		if err != nil {
			return nil, err
		}
		item.Payload = payload

		events = append(events, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

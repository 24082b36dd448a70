package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vibast-solutions/ms-go-checkout/app/entity"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyExists = errors.New("order already exists")
)

const orderColumns = `
	id, order_number, checkout_request_id, cart_id,
	customer_ref, guest_session_id, contact_email, contact_phone,
	total_minor, currency, payment_status, fulfillment_status,
	provider, provider_transaction_id,
	notification_status, notification_attempts, notification_next_at, notification_last_error,
	created_at, updated_at
`

// StatusChange is a conditional payment status update. It only applies while
// the stored status still equals From.
type StatusChange struct {
	OrderID               uint64
	From                  entity.PaymentStatus
	To                    entity.PaymentStatus
	ProviderTransactionID *string
	NotificationStatus    int32
	NotificationNextAt    *time.Time
	UpdatedAt             time.Time
}

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (
			order_number, checkout_request_id, cart_id,
			customer_ref, guest_session_id, contact_email, contact_phone,
			total_minor, currency, payment_status, fulfillment_status,
			provider, provider_transaction_id,
			notification_status, notification_attempts, notification_next_at, notification_last_error,
			created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		order.OrderNumber,
		order.CheckoutRequestID,
		order.CartID,
		nullableStringValue(order.CustomerRef),
		nullableStringValue(order.GuestSessionID),
		nullableStringValue(order.ContactEmail),
		nullableStringValue(order.ContactPhone),
		order.TotalMinor,
		order.Currency,
		string(order.PaymentStatus),
		order.FulfillmentStatus,
		order.Provider,
		nullableStringValue(order.ProviderTransactionID),
		order.NotificationStatus,
		order.NotificationAttempts,
		nullableTimeValue(order.NotificationNextAt),
		nullableStringValue(order.NotificationLastErr),
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrOrderAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	order.ID = uint64(id)
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint64) (*entity.Order, error) {
	return r.findOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
}

func (r *OrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	return r.findOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_number = ? LIMIT 1`, orderNumber)
}

func (r *OrderRepository) FindByCheckoutRequestID(ctx context.Context, requestID string) (*entity.Order, error) {
	return r.findOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE checkout_request_id = ? LIMIT 1`, requestID)
}

// UpdatePaymentStatus reports false when another writer changed the status
// first; the caller should reload and re-evaluate.
func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, change StatusChange) (bool, error) {
	query := `
		UPDATE orders SET
			payment_status = ?,
			provider_transaction_id = COALESCE(?, provider_transaction_id),
			notification_status = ?,
			notification_attempts = 0,
			notification_next_at = ?,
			notification_last_error = NULL,
			updated_at = ?
		WHERE id = ? AND payment_status = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		string(change.To),
		nullableStringValue(change.ProviderTransactionID),
		change.NotificationStatus,
		nullableTimeValue(change.NotificationNextAt),
		change.UpdatedAt,
		change.OrderID,
		string(change.From),
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

// UpdateProvider switches the provider of an order that is still pending.
func (r *OrderRepository) UpdateProvider(ctx context.Context, orderID uint64, provider string, updatedAt time.Time) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE orders SET provider = ?, updated_at = ? WHERE id = ? AND payment_status = ?`,
		provider, updatedAt, orderID, string(entity.PaymentStatusPending),
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

func (r *OrderRepository) UpdateNotification(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders SET
			notification_status = ?,
			notification_attempts = ?,
			notification_next_at = ?,
			notification_last_error = ?,
			updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		order.NotificationStatus,
		order.NotificationAttempts,
		nullableTimeValue(order.NotificationNextAt),
		nullableStringValue(order.NotificationLastErr),
		order.UpdatedAt,
		order.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) ListDueNotifications(ctx context.Context, now time.Time, limit int32) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE notification_status = ?
		  AND (notification_next_at IS NULL OR notification_next_at <= ?)
		ORDER BY id ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, entity.NotificationPending, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*entity.Order, 0)
	for rows.Next() {
		item := &entity.Order{}
		if err := scanOrder(rows, item); err != nil {
			return nil, err
		}
		orders = append(orders, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entity.Order, error) {
	order := &entity.Order{}
	if err := scanOrder(r.db.QueryRowContext(ctx, query, args...), order); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return order, nil
}

func scanOrder(scan rowScanner, order *entity.Order) error {
	var customerRef sql.NullString
	var guestSessionID sql.NullString
	var contactEmail sql.NullString
	var contactPhone sql.NullString
	var paymentStatus string
	var providerTransactionID sql.NullString
	var notificationNextAt sql.NullTime
	var notificationLastErr sql.NullString

	err := scan.Scan(
		&order.ID,
		&order.OrderNumber,
		&order.CheckoutRequestID,
		&order.CartID,
		&customerRef,
		&guestSessionID,
		&contactEmail,
		&contactPhone,
		&order.TotalMinor,
		&order.Currency,
		&paymentStatus,
		&order.FulfillmentStatus,
		&order.Provider,
		&providerTransactionID,
		&order.NotificationStatus,
		&order.NotificationAttempts,
		&notificationNextAt,
		&notificationLastErr,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return err
	}

	order.PaymentStatus = entity.PaymentStatus(paymentStatus)
	order.CustomerRef = stringPtrFromNull(customerRef)
	order.GuestSessionID = stringPtrFromNull(guestSessionID)
	order.ContactEmail = stringPtrFromNull(contactEmail)
	order.ContactPhone = stringPtrFromNull(contactPhone)
	order.ProviderTransactionID = stringPtrFromNull(providerTransactionID)
	order.NotificationNextAt = timePtrFromNull(notificationNextAt)
	order.NotificationLastErr = stringPtrFromNull(notificationLastErr)

	return nil
}

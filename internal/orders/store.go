package orders

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/theyellowexpress/expressbot/internal/db"
)

// Store manages persistence of orders and their status history.
type Store struct {
	db *db.DB
}

// NewStore creates a new order store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create inserts a new order, assigning its ID, tracking number and
// timestamps.
func (s *Store) Create(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.TrackingNumber == "" {
		o.TrackingNumber = FormatTrackingNumber(o.ID, now)
	}
	if o.Status == "" {
		o.Status = StatusPendingConfirmation
	}
	if o.DestinationCountry == "" {
		o.DestinationCountry = "El Salvador"
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO orders (id, tracking_number, customer_name, customer_email, customer_phone,
		 destination_address, destination_city, destination_country, package_description,
		 package_weight, declared_value, shipping_cost, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.TrackingNumber, o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.DestinationAddress, o.DestinationCity, o.DestinationCountry, o.PackageDescription,
		o.PackageWeight, o.DeclaredValue, o.ShippingCost, o.Status, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	if err := s.appendHistory(ctx, o.ID, o.Status, "Pedido creado"); err != nil {
		return err
	}
	return nil
}

const orderColumns = `id, tracking_number, customer_name, customer_email, customer_phone,
	destination_address, destination_city, destination_country, package_description,
	package_weight, declared_value, shipping_cost, status, estimated_delivery, delivered_at,
	created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (*Order, error) {
	var o Order
	var estimated, delivered sql.NullTime
	err := row.Scan(&o.ID, &o.TrackingNumber, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.DestinationAddress, &o.DestinationCity, &o.DestinationCountry, &o.PackageDescription,
		&o.PackageWeight, &o.DeclaredValue, &o.ShippingCost, &o.Status, &estimated, &delivered,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if estimated.Valid {
		o.EstimatedDelivery = &estimated.Time
	}
	if delivered.Valid {
		o.DeliveredAt = &delivered.Time
	}
	return &o, nil
}

// GetByID retrieves an order by its ID. Returns nil when not found.
func (s *Store) GetByID(ctx context.Context, id string) (*Order, error) {
	o, err := scanOrder(s.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}
	return o, nil
}

// GetByTracking retrieves an order by tracking number, first by exact match
// on the normalized number, then by substring. Returns nil when not found.
func (s *Store) GetByTracking(ctx context.Context, tracking string) (*Order, error) {
	normalized := NormalizeTracking(tracking)
	if normalized == "" {
		return nil, nil
	}

	o, err := scanOrder(s.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE tracking_number = ?`, normalized))
	if err == nil {
		return o, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("getting order by tracking: %w", err)
	}

	o, err = scanOrder(s.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE tracking_number LIKE ? LIMIT 1`,
		"%"+normalized+"%"))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("searching order by tracking: %w", err)
	}
	return o, nil
}

// ListRecent returns the most recently created orders.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]Order, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var result []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		result = append(result, *o)
	}
	return result, rows.Err()
}

// UpdateStatus sets an order's status and appends a status history entry.
// Delivered orders also get their delivered_at timestamp.
func (s *Store) UpdateStatus(ctx context.Context, id string, status Status, notes string) (*Order, error) {
	now := time.Now().UTC()

	var res sql.Result
	var err error
	if status == StatusDelivered {
		res, err = s.db.ExecContext(ctx,
			`UPDATE orders SET status = ?, delivered_at = ?, updated_at = ? WHERE id = ?`,
			status, now, now, id)
	} else {
		res, err = s.db.ExecContext(ctx,
			`UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`,
			status, now, id)
	}
	if err != nil {
		return nil, fmt.Errorf("updating order status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}

	if err := s.appendHistory(ctx, id, status, notes); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *Store) appendHistory(ctx context.Context, orderID string, status Status, notes string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO status_history (id, order_id, status, notes, created_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), orderID, status, notes, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("inserting status history: %w", err)
	}
	return nil
}

// History returns an order's status changes, oldest first.
func (s *Store) History(ctx context.Context, orderID string) ([]StatusChange, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, order_id, status, notes, created_at FROM status_history
		 WHERE order_id = ? ORDER BY created_at ASC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing status history: %w", err)
	}
	defer rows.Close()

	var changes []StatusChange
	for rows.Next() {
		var c StatusChange
		if err := rows.Scan(&c.ID, &c.OrderID, &c.Status, &c.Notes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning status change: %w", err)
		}
		changes = append(changes, c)
	}
	return changes, rows.Err()
}

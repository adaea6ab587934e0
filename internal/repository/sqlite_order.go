package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/db"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
)

// DefaultListLimit caps list queries when the caller passes a non-positive limit.
const DefaultListLimit = 20

// SQLiteOrderRepo implements OrderRepo. Create issues several writes and
// should run inside a transaction when conn is a *sql.DB.
type SQLiteOrderRepo struct {
	db db.DBTX
}

func NewSQLiteOrderRepo(conn db.DBTX) *SQLiteOrderRepo {
	return &SQLiteOrderRepo{db: conn}
}

const orderColumns = `id, user_id, total, recommended_key, recommended_name, created_at`

func (r *SQLiteOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	var recKey, recName string
	if o.Recommended != nil {
		recKey, recName = o.Recommended.Key, o.Recommended.Name
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO orders (`+orderColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		o.ID,
		o.UserID,
		o.Total,
		nullableString(recKey),
		nullableString(recName),
		o.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	for i, it := range o.Items {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO order_items (order_id, position, item_key, name, price) VALUES (?, ?, ?, ?, ?)`,
			o.ID, i, it.Key, it.Name, it.Price,
		)
		if err != nil {
			return fmt.Errorf("inserting order item %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning order: %w", err)
	}
	if err := r.loadItems(ctx, []*domain.Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

// ListRecent returns the newest orders first.
func (r *SQLiteOrderRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id LIMIT ?`, limitOrDefault(limit))
}

func (r *SQLiteOrderRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Order, error) {
	return r.list(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = ? ORDER BY created_at DESC, id LIMIT ?`,
		userID, limitOrDefault(limit))
}

func (r *SQLiteOrderRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}
	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// loadItems fills Items for every order with one query.
func (r *SQLiteOrderRepo) loadItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Order, len(orders))
	placeholders := make([]string, len(orders))
	args := make([]any, len(orders))
	for i, o := range orders {
		byID[o.ID] = o
		placeholders[i] = "?"
		args[i] = o.ID
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT order_id, item_key, name, price FROM order_items
		WHERE order_id IN (`+strings.Join(placeholders, ", ")+`)
		ORDER BY order_id, position`, args...)
	if err != nil {
		return fmt.Errorf("listing order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var it domain.MenuItem
		if err := rows.Scan(&orderID, &it.Key, &it.Name, &it.Price); err != nil {
			return fmt.Errorf("scanning order item: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			it.NameLower = strings.ToLower(it.Name)
			o.Items = append(o.Items, it)
		}
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(s rowScanner) (*domain.Order, error) {
	var (
		o               domain.Order
		recKey, recName sql.NullString
		createdAt       string
	)
	if err := s.Scan(&o.ID, &o.UserID, &o.Total, &recKey, &recName, &createdAt); err != nil {
		return nil, err
	}
	if recKey.Valid {
		o.Recommended = &domain.MenuItem{
			Key:       recKey.String,
			Name:      stringOrEmpty(recName),
			NameLower: strings.ToLower(stringOrEmpty(recName)),
		}
	}
	o.CreatedAt = parseTime(createdAt)
	return &o, nil
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}

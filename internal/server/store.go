package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Wire shapes served to board clients. JSON keys mirror what the clients'
// mapper expects.

type CustomerRecord struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type ProductRecord struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

type HistoryRecord struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Actor   string `json:"actor,omitempty"`
	Comment string `json:"comment,omitempty"`
}

type CommentRecord struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Actor string `json:"actor,omitempty"`
	Text  string `json:"text"`
}

type OrderRecord struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	Priority    string          `json:"priority"`
	Customer    *CustomerRecord `json:"customer,omitempty"`
	Products    []ProductRecord `json:"products"`
	Labels      []string        `json:"labels"`
	DueDate     string          `json:"dueDate,omitempty"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
	History     []HistoryRecord `json:"history"`
	Comments    []CommentRecord `json:"comments"`
}

// CreateOrderInput is the accepted POST /api/orders body.
type CreateOrderInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Priority    string          `json:"priority"`
	CustomerID  string          `json:"customerId"`
	Products    []ProductRecord `json:"products"`
	Labels      []string        `json:"labels"`
	DueDate     string          `json:"dueDate"`
}

// Store persists orders and their append-only trails.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open order database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListBoardOrders returns every order with its history and comments,
// oldest first.
func (s *Store) ListBoardOrders(ctx context.Context) ([]OrderRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, status, priority,
		       customer_json, products_json, labels_json,
		       COALESCE(due_date, ''), created_at, updated_at
		FROM orders ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []OrderRecord
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}

	for i := range orders {
		if err := s.loadTrails(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// GetOrder returns a single order, or sql.ErrNoRows.
func (s *Store) GetOrder(ctx context.Context, id string) (OrderRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, status, priority,
		       customer_json, products_json, labels_json,
		       COALESCE(due_date, ''), created_at, updated_at
		FROM orders WHERE id = ?`, id)
	o, err := scanOrder(row)
	if err != nil {
		return OrderRecord{}, err
	}
	if err := s.loadTrails(ctx, &o); err != nil {
		return OrderRecord{}, err
	}
	return o, nil
}

// CreateOrder inserts a new order and its initial history entry.
func (s *Store) CreateOrder(ctx context.Context, in CreateOrderInput) (OrderRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	status := in.Status
	if status == "" {
		status = "FAZER"
	}
	priority := in.Priority
	if priority == "" {
		priority = "normal"
	}

	customer, _ := json.Marshal(CustomerRecord{ID: in.CustomerID})
	products, _ := json.Marshal(emptyIfNilProducts(in.Products))
	labels, _ := json.Marshal(emptyIfNil(in.Labels))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OrderRecord{}, fmt.Errorf("starting transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	id := uuid.New().String()
	var dueDate any
	if in.DueDate != "" {
		dueDate = in.DueDate
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (id, title, description, status, priority,
		                    customer_json, products_json, labels_json,
		                    due_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, in.Title, in.Description, status, priority,
		string(customer), string(products), string(labels),
		dueDate, now, now); err != nil {
		return OrderRecord{}, fmt.Errorf("inserting order: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO order_history (id, order_id, date, status, actor, comment)
		VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), id, now, status, "", "Pedido criado"); err != nil {
		return OrderRecord{}, fmt.Errorf("inserting initial history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return OrderRecord{}, fmt.Errorf("committing order: %w", err)
	}
	committed = true

	return s.GetOrder(ctx, id)
}

// UpdateStatus moves an order to a new status and appends a history row.
// Returns sql.ErrNoRows for unknown ids.
func (s *Store) UpdateStatus(ctx context.Context, id, status, comment string) error {
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`,
		status, now, id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	if comment == "" {
		comment = fmt.Sprintf("Status changed to %s", status)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO order_history (id, order_id, date, status, actor, comment)
		VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), id, now, status, "", comment); err != nil {
		return fmt.Errorf("appending history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing status update: %w", err)
	}
	committed = true
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(r rowScanner) (OrderRecord, error) {
	var o OrderRecord
	var customerJSON, productsJSON, labelsJSON string
	if err := r.Scan(&o.ID, &o.Title, &o.Description, &o.Status, &o.Priority,
		&customerJSON, &productsJSON, &labelsJSON,
		&o.DueDate, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return OrderRecord{}, err
		}
		return OrderRecord{}, fmt.Errorf("scanning order: %w", err)
	}

	var customer CustomerRecord
	if err := json.Unmarshal([]byte(customerJSON), &customer); err == nil && customer != (CustomerRecord{}) {
		o.Customer = &customer
	}
	_ = json.Unmarshal([]byte(productsJSON), &o.Products)
	_ = json.Unmarshal([]byte(labelsJSON), &o.Labels)
	if o.Products == nil {
		o.Products = []ProductRecord{}
	}
	if o.Labels == nil {
		o.Labels = []string{}
	}
	return o, nil
}

func (s *Store) loadTrails(ctx context.Context, o *OrderRecord) error {
	o.History = []HistoryRecord{}
	o.Comments = []CommentRecord{}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, status, actor, comment
		FROM order_history WHERE order_id = ? ORDER BY date, id`, o.ID)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var h HistoryRecord
		if err := rows.Scan(&h.ID, &h.Date, &h.Status, &h.Actor, &h.Comment); err != nil {
			return fmt.Errorf("scanning history: %w", err)
		}
		o.History = append(o.History, h)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating history: %w", err)
	}

	crows, err := s.db.QueryContext(ctx, `
		SELECT id, date, actor, text
		FROM order_comments WHERE order_id = ? ORDER BY date, id`, o.ID)
	if err != nil {
		return fmt.Errorf("loading comments: %w", err)
	}
	defer crows.Close()
	for crows.Next() {
		var c CommentRecord
		if err := crows.Scan(&c.ID, &c.Date, &c.Actor, &c.Text); err != nil {
			return fmt.Errorf("scanning comment: %w", err)
		}
		o.Comments = append(o.Comments, c)
	}
	return crows.Err()
}

func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

func emptyIfNilProducts(ps []ProductRecord) []ProductRecord {
	if ps == nil {
		return []ProductRecord{}
	}
	return ps
}

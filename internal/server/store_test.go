package server

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestStore_CreateOrderDefaultsAndInitialHistory(t *testing.T) {
	s := testStore(t)

	o, err := s.CreateOrder(context.Background(), CreateOrderInput{Title: "Cartões de visita"})

	require.NoError(t, err)
	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "FAZER", o.Status)
	assert.Equal(t, "normal", o.Priority)
	assert.Equal(t, o.CreatedAt, o.UpdatedAt)
	require.Len(t, o.History, 1)
	assert.Equal(t, "Pedido criado", o.History[0].Comment)
	assert.Equal(t, "FAZER", o.History[0].Status)
	assert.NotNil(t, o.Products)
	assert.NotNil(t, o.Labels)
}

func TestStore_CreateOrderKeepsExplicitFields(t *testing.T) {
	s := testStore(t)

	o, err := s.CreateOrder(context.Background(), CreateOrderInput{
		Title:      "Banner 2x1m",
		Status:     "APROVADO",
		Priority:   "alta",
		CustomerID: "c1",
		Products:   []ProductRecord{{Name: "Lona 440g", Quantity: 1}},
		Labels:     []string{"lona"},
		DueDate:    "2026-04-10",
	})

	require.NoError(t, err)
	assert.Equal(t, "APROVADO", o.Status)
	assert.Equal(t, "alta", o.Priority)
	require.NotNil(t, o.Customer)
	assert.Equal(t, "c1", o.Customer.ID)
	require.Len(t, o.Products, 1)
	assert.Equal(t, "Lona 440g", o.Products[0].Name)
	assert.Equal(t, []string{"lona"}, o.Labels)
	assert.Equal(t, "2026-04-10", o.DueDate)
}

func TestStore_CreateOrderRejectsUnknownStatus(t *testing.T) {
	s := testStore(t)

	_, err := s.CreateOrder(context.Background(), CreateOrderInput{Title: "x", Status: "LIMBO"})

	assert.Error(t, err, "status CHECK constraint rejects values outside the workflow")
}

func TestStore_UpdateStatusAppendsHistory(t *testing.T) {
	s := testStore(t)
	o, err := s.CreateOrder(context.Background(), CreateOrderInput{Title: "Flyer"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateStatus(context.Background(), o.ID, "APROVACAO", "enviado para o cliente"))
	require.NoError(t, s.UpdateStatus(context.Background(), o.ID, "APROVADO", ""))

	got, err := s.GetOrder(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, "APROVADO", got.Status)
	require.Len(t, got.History, 3)
	assert.Equal(t, "enviado para o cliente", got.History[1].Comment)
	assert.Equal(t, "Status changed to APROVADO", got.History[2].Comment)
	assert.GreaterOrEqual(t, got.UpdatedAt, got.CreatedAt)
}

func TestStore_UpdateStatusUnknownID(t *testing.T) {
	s := testStore(t)

	err := s.UpdateStatus(context.Background(), "ghost", "ENVIADO", "")

	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStore_ListBoardOrdersOldestFirst(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	a, err := s.CreateOrder(ctx, CreateOrderInput{Title: "first"})
	require.NoError(t, err)
	b, err := s.CreateOrder(ctx, CreateOrderInput{Title: "second"})
	require.NoError(t, err)

	orders, err := s.ListBoardOrders(ctx)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	got := []string{orders[0].ID, orders[1].ID}
	assert.Contains(t, got, a.ID)
	assert.Contains(t, got, b.ID)
	require.Len(t, orders[0].History, 1)
	require.Len(t, orders[1].History, 1)
}

func TestStore_GetOrderUnknownID(t *testing.T) {
	s := testStore(t)

	_, err := s.GetOrder(context.Background(), "ghost")

	assert.ErrorIs(t, err, sql.ErrNoRows)
}

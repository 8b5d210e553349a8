package board

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/serigraf/bancada/internal/domain"
	"github.com/serigraf/bancada/internal/remote"
)

// Controller owns the board state and keeps it consistent with the order
// service. It is the single writer: consumers read snapshots via State()
// and request changes through the methods below, which dispatch actions
// into the reducer and talk to the service.
//
// Status moves are optimistic: the local transition is applied before the
// remote call so the board responds instantly. If the remote call fails
// the controller does not compute an inverse — it reloads the full board
// from the service, which is the only rollback mechanism. Two concurrent
// moves on the same order are not coalesced; the last writer wins and a
// reload is authoritative.
type Controller struct {
	mu      sync.Mutex
	state   State
	remote  remote.Service
	notify  Notifier
	changes chan struct{}
}

// NewController creates a controller over an empty board.
func NewController(svc remote.Service, n Notifier) *Controller {
	if n == nil {
		n = NoopNotifier{}
	}
	return &Controller{
		state:   NewState(),
		remote:  svc,
		notify:  n,
		changes: make(chan struct{}, 1),
	}
}

// Changes signals after each dispatched action. The channel is buffered
// and coalescing: consumers that fall behind see one pending signal, then
// read a fresh snapshot via State().
func (c *Controller) Changes() <-chan struct{} {
	return c.changes
}

// State returns the current snapshot. Snapshots are immutable; callers
// must not modify the slices they expose.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) dispatch(actions ...Action) {
	c.mu.Lock()
	for _, a := range actions {
		c.state = Reduce(c.state, a)
	}
	c.mu.Unlock()

	select {
	case c.changes <- struct{}{}:
	default:
	}
}

// Load fetches the full board from the order service and replaces local
// state. Without a session it is a no-op. On failure the board falls back
// to empty with the error flag set; the failure is surfaced to the user
// unless it is a session expiry, which the session layer reports on its
// own.
func (c *Controller) Load(ctx context.Context) error {
	if !c.remote.IsAuthenticated() {
		return nil
	}
	c.dispatch(SetLoading{Loading: true})

	raw, err := c.remote.ListBoardOrders(ctx)
	if err != nil {
		c.dispatch(
			ReplaceOrders{},
			SetError{Err: err},
			SetLoading{Loading: false},
		)
		if !errors.Is(err, remote.ErrUnauthorized) {
			c.notify.Error("Falha ao carregar pedidos", err.Error())
		}
		return err
	}

	c.dispatch(
		ReplaceOrders{Orders: remote.MapOrders(raw)},
		SetError{Err: nil},
		SetLoading{Loading: false},
	)
	return nil
}

// CreateOrder creates an order on the service and, once confirmed, inserts
// the mapped result locally. This path is pessimistic: nothing is added to
// the board if the remote create fails, and the error is returned so the
// initiating workflow can react.
func (c *Controller) CreateOrder(ctx context.Context, draft remote.Draft) (domain.Order, error) {
	c.dispatch(SetLoading{Loading: true})

	created, err := c.remote.CreateOrder(ctx, draft)
	if err != nil {
		c.dispatch(SetError{Err: err}, SetLoading{Loading: false})
		c.notify.Error("Falha ao criar pedido", err.Error())
		return domain.Order{}, fmt.Errorf("creating order: %w", err)
	}

	o := remote.MapOrder(created)
	c.dispatch(AddOrder{Order: o}, SetError{Err: nil}, SetLoading{Loading: false})
	return o, nil
}

// MoveOrder updates an order's status optimistically: the board changes
// first, then the service is told. On success the move is confirmed with a
// notification. On failure the full board is reloaded from the service,
// discarding the optimistic change in favor of server truth. The actor is
// recorded on the history entry; empty falls back to the system actor.
func (c *Controller) MoveOrder(ctx context.Context, id string, status domain.Status, comment, actor string) error {
	c.dispatch(UpdateStatus{ID: id, Status: status, Comment: comment, Actor: actor, Position: -1})

	if err := c.remote.UpdateOrderStatus(ctx, id, string(status), comment); err != nil {
		c.notify.Error("Falha ao mover pedido", err.Error())
		if lerr := c.Load(ctx); lerr != nil {
			return fmt.Errorf("updating order status: %w (reload also failed: %v)", err, lerr)
		}
		return fmt.Errorf("updating order status: %w", err)
	}

	c.notify.Success("Pedido atualizado", fmt.Sprintf("Movido para %s", status.Title()))
	return nil
}

// AddComment appends a note to an order. Local only: the comment channel
// to the service exists on the status-update path, not here.
func (c *Controller) AddComment(id, text, actor string) {
	c.dispatch(AddComment{ID: id, Text: text, Actor: actor})
}

// UpdateFields merges a partial patch into an order.
func (c *Controller) UpdateFields(id string, patch OrderPatch) {
	c.dispatch(UpdateFields{ID: id, Patch: patch})
}

// Reorder imposes an explicit ordering on one column.
func (c *Controller) Reorder(status domain.Status, orderIDs []string) {
	c.dispatch(ReorderColumn{Status: status, OrderIDs: orderIDs})
}

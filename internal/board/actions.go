package board

import (
	"time"

	"github.com/serigraf/bancada/internal/domain"
)

// Action is the closed set of board transitions. Every mutation of board
// state flows through Reduce as one of these variants; nothing above the
// reducer touches State directly.
type Action interface {
	isAction()
}

// ReplaceOrders swaps the entire canonical order list and rebuilds every
// column from scratch. Dispatched after the initial load and after
// failure recovery.
type ReplaceOrders struct {
	Orders []domain.Order
}

// AddOrder appends a new order to the canonical list and to the one column
// matching its status. Other columns are untouched.
type AddOrder struct {
	Order domain.Order
}

// UpdateStatus moves an order to a new status, stamps UpdatedAt, appends a
// history entry describing the transition, and repartitions the origin and
// destination columns. Position is the insertion index in the destination
// column; negative means append at the end.
type UpdateStatus struct {
	ID       string
	Status   domain.Status
	Comment  string
	Actor    string
	Position int
}

// AddComment appends a comment to an order and stamps UpdatedAt. Does not
// change partitioning.
type AddComment struct {
	ID    string
	Text  string
	Actor string
}

// OrderPatch is a partial order update. Nil fields are left unchanged.
type OrderPatch struct {
	Title       *string
	Description *string
	Status      *domain.Status
	Priority    *domain.Priority
	DueDate     *time.Time
	Labels      *[]string
	Products    *[]domain.Product
}

// UpdateFields shallow-merges a patch into an order and stamps UpdatedAt.
// If the patch moves the status, the transition is audited and the
// partition rebuilt exactly as for UpdateStatus.
type UpdateFields struct {
	ID    string
	Actor string
	Patch OrderPatch
}

// ReorderColumn replaces one column's ordering with an explicit id
// sequence. The new ordering is authoritative until the next structural
// change affecting that column.
type ReorderColumn struct {
	Status   domain.Status
	OrderIDs []string
}

// SetLoading flips the async loading flag.
type SetLoading struct {
	Loading bool
}

// SetError records the last sync error (nil clears it).
type SetError struct {
	Err error
}

func (ReplaceOrders) isAction() {}
func (AddOrder) isAction()      {}
func (UpdateStatus) isAction()  {}
func (AddComment) isAction()    {}
func (UpdateFields) isAction()  {}
func (ReorderColumn) isAction() {}
func (SetLoading) isAction()    {}
func (SetError) isAction()      {}

package board

import "github.com/serigraf/bancada/internal/domain"

// Column is a status-bound view over the canonical order list. Columns have
// no lifecycle of their own: they are derived from the order list after
// every transition, except that an explicit within-column ordering survives
// rebuilds until a structural change touches that column's membership.
type Column struct {
	ID     domain.Status
	Title  string
	Orders []domain.Order
}

// find returns the index of the order with the given id, or -1.
func (c Column) find(id string) int {
	for i := range c.Orders {
		if c.Orders[i].ID == id {
			return i
		}
	}
	return -1
}

// State is one immutable snapshot of the board. Reduce never mutates a
// snapshot; it returns a new one, cloning whatever it touches.
type State struct {
	Orders  []domain.Order
	Columns []Column

	// Async lifecycle side-channel, independent of order data.
	Loading bool
	Err     error
}

// NewState returns an empty board with one column per workflow status.
func NewState() State {
	return State{Columns: emptyColumns()}
}

// Order returns the canonical order with the given id, if present.
func (s State) Order(id string) (domain.Order, bool) {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return s.Orders[i], true
		}
	}
	return domain.Order{}, false
}

// Column returns the column for the given status, if the status is known.
func (s State) Column(id domain.Status) (Column, bool) {
	for i := range s.Columns {
		if s.Columns[i].ID == id {
			return s.Columns[i], true
		}
	}
	return Column{}, false
}

func emptyColumns() []Column {
	cols := make([]Column, 0, len(domain.AllStatuses))
	for _, st := range domain.AllStatuses {
		cols = append(cols, Column{ID: st, Title: st.Title()})
	}
	return cols
}

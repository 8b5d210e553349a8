package board

import (
	"time"

	"github.com/serigraf/bancada/internal/domain"
)

// Reduce is the single transition function of the board engine: given a
// snapshot and one action it returns the next snapshot. It is pure apart
// from reading the clock and minting audit ids; it never performs I/O and
// never panics on bad input. Actions referencing an unknown order id (or a
// status outside the workflow enum) return the state unchanged — keeping
// ids valid is the synchronization layer's job.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ReplaceOrders:
		return reduceReplace(s, a)
	case AddOrder:
		return reduceAdd(s, a)
	case UpdateStatus:
		return reduceUpdateStatus(s, a)
	case AddComment:
		return reduceAddComment(s, a)
	case UpdateFields:
		return reduceUpdateFields(s, a)
	case ReorderColumn:
		s.Columns = applyColumnOrder(s.Columns, a.Status, a.OrderIDs)
		return s
	case SetLoading:
		s.Loading = a.Loading
		return s
	case SetError:
		s.Err = a.Err
		return s
	}
	return s
}

func reduceReplace(s State, a ReplaceOrders) State {
	orders := make([]domain.Order, 0, len(a.Orders))
	for _, o := range a.Orders {
		orders = append(orders, o.Clone())
	}
	s.Orders = orders
	s.Columns = buildColumns(orders)
	return s
}

func reduceAdd(s State, a AddOrder) State {
	o := a.Order.Clone()
	if !o.Status.Valid() {
		o.Status = domain.ParseStatus(string(o.Status))
	}
	s.Orders = append(append([]domain.Order(nil), s.Orders...), o)
	s.Columns = appendToColumn(s.Columns, o)
	return s
}

func reduceUpdateStatus(s State, a UpdateStatus) State {
	if !a.Status.Valid() {
		return s
	}
	i := s.indexOf(a.ID)
	if i < 0 {
		return s
	}
	now := time.Now().UTC()
	o := s.Orders[i].Clone()
	from := o.Status
	o.Status = a.Status
	o.UpdatedAt = now
	o.History = append(o.History, newHistoryEntry(a.Status, a.Comment, a.Actor, now))

	s.Orders = replaceAt(s.Orders, i, o)
	s.Columns = moveBetweenColumns(s.Columns, o, from, a.Position)
	return s
}

func reduceAddComment(s State, a AddComment) State {
	i := s.indexOf(a.ID)
	if i < 0 {
		return s
	}
	now := time.Now().UTC()
	o := s.Orders[i].Clone()
	o.Comments = append(o.Comments, newComment(a.Text, a.Actor, now))
	o.UpdatedAt = now

	s.Orders = replaceAt(s.Orders, i, o)
	s.Columns = replaceInColumn(s.Columns, o)
	return s
}

func reduceUpdateFields(s State, a UpdateFields) State {
	i := s.indexOf(a.ID)
	if i < 0 {
		return s
	}
	now := time.Now().UTC()
	o := s.Orders[i].Clone()
	from := o.Status

	p := a.Patch
	if p.Title != nil {
		o.Title = *p.Title
	}
	if p.Description != nil {
		o.Description = *p.Description
	}
	if p.Priority != nil {
		o.Priority = *p.Priority
	}
	if p.DueDate != nil {
		d := *p.DueDate
		o.DueDate = &d
	}
	if p.Labels != nil {
		o.Labels = append([]string(nil), (*p.Labels)...)
	}
	if p.Products != nil {
		o.Products = append([]domain.Product(nil), (*p.Products)...)
	}
	moved := p.Status != nil && p.Status.Valid() && *p.Status != from
	if moved {
		o.Status = *p.Status
		o.History = append(o.History, newHistoryEntry(o.Status, "", a.Actor, now))
	}
	o.UpdatedAt = now

	s.Orders = replaceAt(s.Orders, i, o)
	if moved {
		s.Columns = moveBetweenColumns(s.Columns, o, from, -1)
	} else {
		s.Columns = replaceInColumn(s.Columns, o)
	}
	return s
}

func (s State) indexOf(id string) int {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return i
		}
	}
	return -1
}

func replaceAt(orders []domain.Order, i int, o domain.Order) []domain.Order {
	out := append([]domain.Order(nil), orders...)
	out[i] = o
	return out
}

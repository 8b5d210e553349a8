package board

import "github.com/serigraf/bancada/internal/domain"

// Column partition maintenance. The invariant after every transition: each
// order in the canonical list appears in exactly one column, the column
// whose id equals the order's status. Helpers here copy whatever they
// touch and share the rest, so earlier snapshots stay intact.

// buildColumns partitions orders into fresh columns, preserving the
// canonical relative order within each column. Orders carrying a status
// outside the known set are not representable on the board and are
// excluded from the partition.
func buildColumns(orders []domain.Order) []Column {
	cols := emptyColumns()
	idx := make(map[domain.Status]int, len(cols))
	for i, c := range cols {
		idx[c.ID] = i
	}
	for _, o := range orders {
		i, ok := idx[o.Status]
		if !ok {
			continue
		}
		cols[i].Orders = append(cols[i].Orders, o)
	}
	return cols
}

// appendToColumn adds o to the end of the column matching its status,
// leaving every other column untouched.
func appendToColumn(cols []Column, o domain.Order) []Column {
	out := append([]Column(nil), cols...)
	for i := range out {
		if out[i].ID != o.Status {
			continue
		}
		out[i].Orders = append(append([]domain.Order(nil), out[i].Orders...), o)
		break
	}
	return out
}

// replaceInColumn swaps the stored value of an order within its column,
// keeping its position. Used for mutations that do not change status.
func replaceInColumn(cols []Column, o domain.Order) []Column {
	out := append([]Column(nil), cols...)
	for i := range out {
		if out[i].ID != o.Status {
			continue
		}
		j := out[i].find(o.ID)
		if j < 0 {
			break
		}
		orders := append([]domain.Order(nil), out[i].Orders...)
		orders[j] = o
		out[i].Orders = orders
		break
	}
	return out
}

// moveBetweenColumns removes o from the column for its previous status and
// inserts it into the column for its current status at pos (negative pos
// appends). Only the origin and destination columns are rebuilt; every
// other column keeps its sequence, explicit reorderings included.
func moveBetweenColumns(cols []Column, o domain.Order, from domain.Status, pos int) []Column {
	if from == o.Status {
		return replaceInColumn(cols, o)
	}
	out := append([]Column(nil), cols...)
	for i := range out {
		switch out[i].ID {
		case from:
			j := out[i].find(o.ID)
			if j < 0 {
				continue
			}
			orders := append([]domain.Order(nil), out[i].Orders...)
			out[i].Orders = append(orders[:j], orders[j+1:]...)
		case o.Status:
			orders := append([]domain.Order(nil), out[i].Orders...)
			if pos < 0 || pos > len(orders) {
				pos = len(orders)
			}
			orders = append(orders, domain.Order{})
			copy(orders[pos+1:], orders[pos:])
			orders[pos] = o
			out[i].Orders = orders
		}
	}
	return out
}

// applyColumnOrder imposes an explicit id sequence on one column. Ids that
// are not members of the column are ignored; members absent from the
// sequence keep their relative order and trail at the end, so the column
// never drops an order the partition says it owns.
func applyColumnOrder(cols []Column, status domain.Status, ids []string) []Column {
	out := append([]Column(nil), cols...)
	for i := range out {
		if out[i].ID != status {
			continue
		}
		cur := out[i].Orders
		reordered := make([]domain.Order, 0, len(cur))
		seen := make(map[string]bool, len(ids))
		for _, id := range ids {
			j := out[i].find(id)
			if j < 0 || seen[id] {
				continue
			}
			seen[id] = true
			reordered = append(reordered, cur[j])
		}
		for _, o := range cur {
			if !seen[o.ID] {
				reordered = append(reordered, o)
			}
		}
		out[i].Orders = reordered
		break
	}
	return out
}

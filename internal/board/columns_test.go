package board

import (
	"testing"

	"github.com/serigraf/bancada/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildColumns_EveryStatusGetsAColumn(t *testing.T) {
	cols := buildColumns(nil)

	require.Len(t, cols, len(domain.AllStatuses))
	for i, st := range domain.AllStatuses {
		assert.Equal(t, st, cols[i].ID)
		assert.Equal(t, st.Title(), cols[i].Title)
		assert.Empty(t, cols[i].Orders)
	}
}

func TestMoveBetweenColumns_PositionPastEndAppends(t *testing.T) {
	cols := buildColumns([]domain.Order{
		testOrder("a", domain.StatusFazer),
		testOrder("b", domain.StatusAprovacao),
	})

	o := testOrder("a", domain.StatusFazer)
	o.Status = domain.StatusAprovacao
	cols = moveBetweenColumns(cols, o, domain.StatusFazer, 99)

	var dest Column
	for _, c := range cols {
		if c.ID == domain.StatusAprovacao {
			dest = c
		}
	}
	assert.Equal(t, []string{"b", "a"}, columnIDs(dest))
}

func TestMoveBetweenColumns_SameStatusReplacesInPlace(t *testing.T) {
	cols := buildColumns([]domain.Order{
		testOrder("a", domain.StatusFazer),
		testOrder("b", domain.StatusFazer),
	})

	o := testOrder("a", domain.StatusFazer)
	o.Title = "renamed"
	cols = moveBetweenColumns(cols, o, domain.StatusFazer, -1)

	fazer := cols[0]
	require.Equal(t, []string{"a", "b"}, columnIDs(fazer))
	assert.Equal(t, "renamed", fazer.Orders[0].Title)
}

func TestApplyColumnOrder_DuplicateIDsCountOnce(t *testing.T) {
	cols := buildColumns([]domain.Order{
		testOrder("a", domain.StatusFazer),
		testOrder("b", domain.StatusFazer),
	})

	cols = applyColumnOrder(cols, domain.StatusFazer, []string{"b", "b", "a"})

	assert.Equal(t, []string{"b", "a"}, columnIDs(cols[0]))
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/serigraf/bancada/internal/board"
	"github.com/serigraf/bancada/internal/cli/formatter"
	"github.com/serigraf/bancada/internal/domain"
)

// boardSyncedMsg signals that a remote sync (load, move, create) finished.
// State updates arrive separately through the controller's change channel;
// this message only ends the view's syncing indicator.
type boardSyncedMsg struct {
	err error
}

// boardView renders one column per workflow status with a movable cursor.
type boardView struct {
	state   *SharedState
	cols    []board.Column
	loading bool
	err     error

	colIdx int
	rowIdx int
}

func newBoardView(state *SharedState) *boardView {
	return &boardView{state: state, loading: true}
}

func (v *boardView) ID() ViewID    { return ViewBoard }
func (v *boardView) Title() string { return "Pedidos" }

func (v *boardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left"), key.WithHelp("←→", "column")),
		key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓", "order")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		key.NewBinding(key.WithKeys("K"), key.WithHelp("J/K", "reorder")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new order")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *boardView) Init() tea.Cmd {
	return v.loadBoard()
}

// loadBoard pulls the full board from the order service.
func (v *boardView) loadBoard() tea.Cmd {
	ctrl := v.state.Controller
	return func() tea.Msg {
		return boardSyncedMsg{err: ctrl.Load(context.Background())}
	}
}

// refresh re-reads the controller snapshot without touching the network.
func (v *boardView) refresh() {
	s := v.state.Controller.State()
	v.cols = s.Columns
	v.loading = s.Loading
	v.err = s.Err
	v.clampCursor()
}

func (v *boardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardSyncedMsg:
		v.refresh()
		return v, nil

	case refreshViewMsg:
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *boardView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if v.colIdx > 0 {
			v.colIdx--
			v.clampCursor()
		}
	case "right", "l":
		if v.colIdx < len(v.cols)-1 {
			v.colIdx++
			v.clampCursor()
		}
	case "up", "k":
		if v.rowIdx > 0 {
			v.rowIdx--
		}
	case "down", "j":
		if v.rowIdx < len(v.currentOrders())-1 {
			v.rowIdx++
		}
	case "K":
		return v, v.reorder(-1)
	case "J":
		return v, v.reorder(+1)
	case "enter":
		if o, ok := v.selected(); ok {
			return v, pushView(newOrderDetailView(v.state, o.ID))
		}
	case "m":
		if o, ok := v.selected(); ok {
			return v, v.startMoveWizard(o)
		}
	case "n":
		return v, startCreateOrderWizard(v.state)
	case "r":
		v.loading = true
		return v, v.loadBoard()
	}
	return v, nil
}

func (v *boardView) currentOrders() []domain.Order {
	if v.colIdx < 0 || v.colIdx >= len(v.cols) {
		return nil
	}
	return v.cols[v.colIdx].Orders
}

func (v *boardView) selected() (domain.Order, bool) {
	orders := v.currentOrders()
	if v.rowIdx < 0 || v.rowIdx >= len(orders) {
		return domain.Order{}, false
	}
	return orders[v.rowIdx], true
}

func (v *boardView) clampCursor() {
	if v.colIdx >= len(v.cols) {
		v.colIdx = len(v.cols) - 1
	}
	if v.colIdx < 0 {
		v.colIdx = 0
	}
	if n := len(v.currentOrders()); v.rowIdx >= n {
		v.rowIdx = n - 1
	}
	if v.rowIdx < 0 {
		v.rowIdx = 0
	}
}

// reorder swaps the selected order with its neighbor and hands the column's
// new explicit sequence to the controller.
func (v *boardView) reorder(delta int) tea.Cmd {
	orders := v.currentOrders()
	j := v.rowIdx + delta
	if v.rowIdx < 0 || v.rowIdx >= len(orders) || j < 0 || j >= len(orders) {
		return nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	ids[v.rowIdx], ids[j] = ids[j], ids[v.rowIdx]
	v.rowIdx = j

	v.state.Controller.Reorder(v.cols[v.colIdx].ID, ids)
	return nil
}

// startMoveWizard opens a destination + comment form and dispatches the
// optimistic move when it completes.
func (v *boardView) startMoveWizard(o domain.Order) tea.Cmd {
	var dest string
	var comment string
	form := wizardMoveOrder(o, &dest, &comment)
	ctrl := v.state.Controller
	actor := v.state.Actor

	return pushView(newWizardView(v.state, "Mover", form, func() tea.Cmd {
		if dest == "" || dest == string(o.Status) {
			return nil
		}
		return func() tea.Msg {
			err := ctrl.MoveOrder(context.Background(), o.ID, domain.Status(dest), comment, actor)
			return boardSyncedMsg{err: err}
		}
	}))
}

func (v *boardView) View() string {
	if v.loading && len(v.cols) == 0 {
		return "\n  " + formatter.Dim("Loading board...")
	}
	if v.err != nil && totalOrders(v.cols) == 0 {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	colWidth := 22
	if w := v.state.Width/len(domain.AllStatuses) - 1; w > colWidth {
		colWidth = w
	}

	rendered := make([]string, 0, len(v.cols))
	for i, col := range v.cols {
		rendered = append(rendered, v.renderColumn(col, i == v.colIdx, colWidth))
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	if v.loading {
		out += "\n  " + formatter.Dim("Syncing...")
	}
	return out
}

func (v *boardView) renderColumn(col board.Column, active bool, width int) string {
	title := fmt.Sprintf("%s (%d)", col.Title, len(col.Orders))
	if active {
		title = formatter.StatusStyle(col.ID).Bold(true).Render(title)
	} else {
		title = formatter.Dim(title)
	}

	lines := []string{title, formatter.Dim(strings.Repeat("─", max(width-2, 4)))}
	for i, o := range col.Orders {
		cursor := "  "
		if active && i == v.rowIdx {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		label := o.Title
		if label == "" {
			label = o.ID
		}
		line := cursor + formatter.PriorityBadge(o.Priority) + formatter.Truncate(label, width-6)
		if o.DueDate != nil {
			line += " " + formatter.DueDateStyled(*o.DueDate)
		}
		lines = append(lines, line)
	}
	if len(col.Orders) == 0 {
		lines = append(lines, formatter.Dim("  —"))
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func totalOrders(cols []board.Column) int {
	n := 0
	for _, c := range cols {
		n += len(c.Orders)
	}
	return n
}

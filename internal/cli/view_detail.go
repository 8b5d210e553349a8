package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/serigraf/bancada/internal/board"
	"github.com/serigraf/bancada/internal/cli/formatter"
	"github.com/serigraf/bancada/internal/domain"
)

// orderDetailView shows one order: its fields, line items, and the merged
// history/comment timeline.
type orderDetailView struct {
	state   *SharedState
	orderID string
	order   domain.Order
	found   bool
}

func newOrderDetailView(state *SharedState, orderID string) *orderDetailView {
	v := &orderDetailView{state: state, orderID: orderID}
	v.refresh()
	return v
}

func (v *orderDetailView) ID() ViewID { return ViewOrderDetail }

func (v *orderDetailView) Title() string {
	if v.found {
		return formatter.Truncate(v.order.Title, 24)
	}
	return "Pedido"
}

func (v *orderDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "comment")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "priority")),
	}
}

func (v *orderDetailView) Init() tea.Cmd { return nil }

func (v *orderDetailView) refresh() {
	o, ok := v.state.Controller.State().Order(v.orderID)
	v.order = o
	v.found = ok
}

func (v *orderDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		if !v.found {
			return v, nil
		}
		switch msg.String() {
		case "c":
			return v, v.startCommentWizard()
		case "m":
			return v, v.startMoveWizard()
		case "e":
			return v, v.startEditWizard()
		case "p":
			v.togglePriority()
			return v, nil
		}
	}
	return v, nil
}

func (v *orderDetailView) startCommentWizard() tea.Cmd {
	var text string
	form := wizardInputComment(&text)
	ctrl := v.state.Controller
	id := v.orderID
	actor := v.state.Actor

	return pushView(newWizardView(v.state, "Comentar", form, func() tea.Cmd {
		if text == "" {
			return nil
		}
		ctrl.AddComment(id, text, actor)
		return nil
	}))
}

func (v *orderDetailView) startMoveWizard() tea.Cmd {
	var dest, comment string
	form := wizardMoveOrder(v.order, &dest, &comment)
	ctrl := v.state.Controller
	id := v.orderID
	current := v.order.Status
	actor := v.state.Actor

	return pushView(newWizardView(v.state, "Mover", form, func() tea.Cmd {
		if dest == "" || dest == string(current) {
			return nil
		}
		return func() tea.Msg {
			err := ctrl.MoveOrder(context.Background(), id, domain.Status(dest), comment, actor)
			return boardSyncedMsg{err: err}
		}
	}))
}

func (v *orderDetailView) startEditWizard() tea.Cmd {
	title := v.order.Title
	description := v.order.Description
	form := wizardEditOrder(&title, &description)
	ctrl := v.state.Controller
	id := v.orderID

	return pushView(newWizardView(v.state, "Editar", form, func() tea.Cmd {
		patch := board.OrderPatch{}
		if title != "" && title != v.order.Title {
			patch.Title = &title
		}
		if description != v.order.Description {
			patch.Description = &description
		}
		if patch.Title != nil || patch.Description != nil {
			ctrl.UpdateFields(id, patch)
		}
		return nil
	}))
}

func (v *orderDetailView) togglePriority() {
	p := domain.PriorityAlta
	if v.order.Priority == domain.PriorityAlta {
		p = domain.PriorityNormal
	}
	v.state.Controller.UpdateFields(v.orderID, board.OrderPatch{Priority: &p})
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *orderDetailView) View() string {
	if !v.found {
		return "\n  " + formatter.Dim("Order no longer on the board.")
	}
	o := v.order

	var b strings.Builder

	b.WriteString("\n" + formatter.Bold(o.Title))
	b.WriteString("  " + formatter.TruncID(o.ID) + "\n")
	b.WriteString(formatter.StatusPill(o.Status))
	if badge := formatter.PriorityBadge(o.Priority); badge != "" {
		b.WriteString("  " + badge + " " + formatter.StyleRed.Render("alta"))
	}
	b.WriteString("\n\n")

	b.WriteString(fieldLine("Cliente", o.Customer.Name))
	if o.Customer.Phone != "" {
		b.WriteString(fieldLine("Telefone", o.Customer.Phone))
	}
	if o.DueDate != nil {
		b.WriteString(fieldLine("Entrega", formatter.HumanDate(*o.DueDate)+" ("+formatter.RelativeDate(*o.DueDate)+")"))
	}
	if len(o.Labels) > 0 {
		b.WriteString(fieldLine("Etiquetas", strings.Join(o.Labels, ", ")))
	}
	b.WriteString(fieldLine("Criado", formatter.HumanDate(o.CreatedAt)))

	if o.Description != "" {
		b.WriteString("\n" + formatter.Dim(o.Description) + "\n")
	}

	if len(o.Products) > 0 {
		b.WriteString("\n" + formatter.Header("Itens") + "\n")
		for _, p := range o.Products {
			line := fmt.Sprintf("  %dx %s", p.Quantity, p.Name)
			if p.Notes != "" {
				line += " " + formatter.Dim("("+p.Notes+")")
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n" + formatter.Header("Histórico") + "\n")
	b.WriteString(v.renderTimeline(o))

	return b.String()
}

func fieldLine(label, value string) string {
	return formatter.Dim(fmt.Sprintf("%-10s", label)) + " " + value + "\n"
}

type timelineEntry struct {
	when time.Time
	line string
}

// renderTimeline merges history entries and comments into one
// chronological list, newest first.
func (v *orderDetailView) renderTimeline(o domain.Order) string {
	entries := make([]timelineEntry, 0, len(o.History)+len(o.Comments))

	for _, h := range o.History {
		line := "  " + formatter.StatusStyle(h.Status).Render("●") + " " + h.Comment
		line += " " + formatter.Dim(h.Actor+" · "+formatter.HumanTimestamp(h.Date))
		entries = append(entries, timelineEntry{when: h.Date, line: line})
	}
	for _, c := range o.Comments {
		line := "  " + formatter.StyleBlue.Render("✎") + " " + c.Text
		line += " " + formatter.Dim(c.Actor+" · "+formatter.HumanTimestamp(c.Date))
		entries = append(entries, timelineEntry{when: c.Date, line: line})
	}

	if len(entries) == 0 {
		return "  " + formatter.Dim("—") + "\n"
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].when.After(entries[j].when)
	})

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.line + "\n")
	}
	return b.String()
}

// wizardEditOrder creates a huh form to edit an order's title and description.
func wizardEditOrder(title, description *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(description),
		),
	).WithTheme(bancadaHuhTheme()).WithShowHelp(false)
}

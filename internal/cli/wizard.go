package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/serigraf/bancada/internal/cli/formatter"
	"github.com/serigraf/bancada/internal/domain"
	"github.com/serigraf/bancada/internal/remote"
)

// bancadaHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func bancadaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardMoveOrder creates a huh form to pick a destination status for an
// order plus an optional comment recorded in the order history.
func wizardMoveOrder(o domain.Order, dest *string, comment *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		label := s.Title()
		if s == o.Status {
			label += " (current)"
		}
		options = append(options, huh.NewOption(label, string(s)))
	}
	*dest = string(o.Status)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Move to").
				Description(o.Title).
				Options(options...).
				Value(dest),
			huh.NewInput().
				Title("Comment (optional)").
				Placeholder("arte aprovada pelo cliente").
				Value(comment),
		),
	).WithTheme(bancadaHuhTheme()).WithShowHelp(false)
}

// orderDraft collects the raw inputs of the create-order wizard before they
// are converted into a service draft.
type orderDraft struct {
	Title       string
	Description string
	Customer    string
	Priority    string
	Product     string
	Quantity    string
	DueDate     string
}

// wizardCreateOrder creates a huh form that collects a new order.
func wizardCreateOrder(d *orderDraft) *huh.Form {
	d.Priority = string(domain.PriorityNormal)
	d.Quantity = "1"

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Cartões de visita 4x4").
				Value(&d.Title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&d.Description),
			huh.NewInput().
				Title("Customer").
				Placeholder(remote.PlaceholderCustomer).
				Value(&d.Customer),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Normal", string(domain.PriorityNormal)),
					huh.NewOption("Alta", string(domain.PriorityAlta)),
				).
				Value(&d.Priority),
			huh.NewInput().
				Title("Product").
				Placeholder("Cartão 9x5cm couché 300g").
				Value(&d.Product),
			huh.NewInput().
				Title("Quantity").
				Value(&d.Quantity).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Due date (YYYY-MM-DD)").
				Value(&d.DueDate).
				Validate(validateOptionalDate),
		),
	).WithTheme(bancadaHuhTheme()).WithShowHelp(false)
}

// toDraft converts the collected inputs into a create request.
func (d *orderDraft) toDraft() remote.Draft {
	draft := remote.Draft{
		Title:       d.Title,
		Description: d.Description,
		Status:      string(domain.StatusFazer),
		Priority:    d.Priority,
		DueDate:     d.DueDate,
	}
	if d.Customer != "" {
		draft.CustomerID = d.Customer
	}
	if d.Product != "" {
		draft.Products = []remote.DraftItem{{
			Name:     d.Product,
			Quantity: parsePositiveInt(d.Quantity, 1),
		}}
	}
	return draft
}

// startCreateOrderWizard pushes the create-order form; on completion the
// order is created on the service before it appears on the board.
func startCreateOrderWizard(state *SharedState) tea.Cmd {
	d := &orderDraft{}
	form := wizardCreateOrder(d)
	ctrl := state.Controller

	return pushView(newWizardView(state, "Novo pedido", form, func() tea.Cmd {
		return func() tea.Msg {
			_, err := ctrl.CreateOrder(context.Background(), d.toDraft())
			return boardSyncedMsg{err: err}
		}
	}))
}

// wizardInputComment creates a huh form for a single comment input.
func wizardInputComment(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Comment").
				Value(result).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("comment is required")
					}
					return nil
				}),
		),
	).WithTheme(bancadaHuhTheme()).WithShowHelp(false)
}

// parsePositiveInt parses s as a positive integer, returning fallback if s
// is empty, non-numeric, or non-positive. Used after huh form validation has
// already ensured the string is valid, so this is a safe conversion.
func parsePositiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

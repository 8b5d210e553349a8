package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/serigraf/bancada/internal/board"
	"github.com/serigraf/bancada/internal/remote"
	"github.com/spf13/cobra"
)

// App holds the wiring CLI commands need: the order service connection and
// the actor name recorded on comments and moves made from this terminal.
type App struct {
	Remote remote.Service
	Actor  string
}

// NewRootCmd creates the top-level "bancada" command. Running it without a
// subcommand opens the interactive board; on a non-interactive stdin it
// falls back to a plain listing.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "bancada",
		Short: "Terminal kanban board for print shop orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				return runList(cmd, app)
			}
			return runTUI(app)
		},
	}

	root.AddCommand(
		newListCmd(app),
		newServeCmd(),
	)

	return root
}

// runTUI wires the controller to the bubbletea program and blocks until
// the user quits.
func runTUI(app *App) error {
	notifier := newTeaNotifier()
	ctrl := board.NewController(app.Remote, notifier)

	state := &SharedState{
		Controller: ctrl,
		Actor:      app.Actor,
	}

	p := tea.NewProgram(newAppModel(state, notifier), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/serigraf/bancada/internal/board"
	"github.com/serigraf/bancada/internal/cli/formatter"
	"github.com/serigraf/bancada/internal/remote"
	"github.com/spf13/cobra"
)

// newListCmd dumps the board as plain text, one section per column. Useful
// for scripts and for terminals where the interactive board is unwanted.
func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the board without the interactive UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app)
		},
	}
}

func runList(cmd *cobra.Command, app *App) error {
	if !app.Remote.IsAuthenticated() {
		return fmt.Errorf("no session: set BANCADA_TOKEN or token in the config file")
	}

	raw, err := app.Remote.ListBoardOrders(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading board: %w", err)
	}

	state := board.Reduce(board.NewState(), board.ReplaceOrders{Orders: remote.MapOrders(raw)})

	out := cmd.OutOrStdout()
	for _, col := range state.Columns {
		fmt.Fprintf(out, "%s\n", formatter.Header(fmt.Sprintf("%s (%d)", col.Title, len(col.Orders))))
		for _, o := range col.Orders {
			line := fmt.Sprintf("  %-38s %s", formatter.Truncate(o.Title, 38), formatter.TruncID(o.ID))
			if badge := formatter.PriorityBadge(o.Priority); badge != "" {
				line += " " + badge
			}
			if o.DueDate != nil {
				line += "  " + formatter.DueDateStyled(*o.DueDate)
			}
			fmt.Fprintln(out, line)
		}
		if len(col.Orders) == 0 {
			fmt.Fprintln(out, formatter.Dim("  —"))
		}
		fmt.Fprintln(out)
	}
	return nil
}

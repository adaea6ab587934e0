package cli

import (
	"fmt"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newMenuCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Print the menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderEmphasis(app.Bot.ShowMenu()))
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App, opts *chatOptions) *cobra.Command {
	return &cobra.Command{
		Use:   `ask "<message>" ["<message>" ...]`,
		Short: "Send messages and print the answers",
		Long: "Runs each argument as one turn of the same conversation and prints the replies. " +
			"Shortcuts such as /menu and /checkout work here too.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			out := cmd.OutOrStdout()

			userID := strings.TrimSpace(opts.user)
			if userID == "" {
				userID = guestID()
			}

			for _, msg := range args {
				stop := startSpinnerIf(app.SlowReplies && app.interactive(), cmd.ErrOrStderr())
				res, err := runTurn(ctx, app.Bot, userID, msg)
				stop()
				if err != nil {
					return fmt.Errorf("answering %q: %w", msg, err)
				}
				if res.Quit {
					return nil
				}
				fmt.Fprintln(out, formatter.RenderEmphasis(res.Reply))
				if res.FollowUp != "" {
					fmt.Fprintln(out, formatter.FormatFollowUp(res.FollowUp))
				}
			}
			return nil
		},
	}
}

func startSpinnerIf(on bool, w io.Writer) func() {
	if !on {
		return func() {}
	}
	return formatter.StartSpinner(w, "думаю…")
}

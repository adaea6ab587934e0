package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the "restobot" command tree. Running it without a
// subcommand starts a chat.
func NewRootCmd(app *App) *cobra.Command {
	opts := &chatOptions{}
	root := &cobra.Command{
		Use:           "restobot",
		Short:         "Restaurant order-taking chat assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, app, opts)
		},
	}
	root.PersistentFlags().StringVarP(&opts.user, "user", "u", "", "user id for the conversation (default: ask or generate)")
	root.Flags().BoolVar(&opts.plain, "plain", false, "use the line-based chat even on a terminal")

	root.AddCommand(
		newChatCmd(app, opts),
		newAskCmd(app, opts),
		newMenuCmd(app),
		newOrdersCmd(app),
	)
	return root
}

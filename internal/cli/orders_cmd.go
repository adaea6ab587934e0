package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/cli/formatter"
	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrJournalDisabled is returned by commands that read the order journal
// when RESTOBOT_DB is "off".
var ErrJournalDisabled = errors.New("order journal is disabled (RESTOBOT_DB=off)")

type ordersOptions struct {
	limit int
	user  string
	utc   bool
}

func bindOrdersFlags(fs *pflag.FlagSet, o *ordersOptions) {
	fs.IntVarP(&o.limit, "limit", "n", 20, "number of orders to show")
	fs.StringVar(&o.user, "for", "", "only orders of this user id")
	fs.BoolVar(&o.utc, "utc", false, "print times in UTC")
}

func newOrdersCmd(app *App) *cobra.Command {
	opts := &ordersOptions{}
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List completed orders from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Orders == nil {
				return ErrJournalDisabled
			}
			if opts.limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", opts.limit)
			}
			ctx := commandContext(cmd)

			var (
				orders []*domain.Order
				err    error
			)
			if opts.user != "" {
				orders, err = app.Orders.ForUser(ctx, opts.user, opts.limit)
			} else {
				orders, err = app.Orders.Recent(ctx, opts.limit)
			}
			if err != nil {
				return fmt.Errorf("listing orders: %w", err)
			}

			loc := time.Local
			if opts.utc {
				loc = time.UTC
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOrders(orders, loc))
			return nil
		},
	}
	bindOrdersFlags(cmd.Flags(), opts)
	return cmd
}

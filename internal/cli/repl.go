package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/cli/formatter"
	"go.uber.org/zap"
)

// runREPL reads one message per line until EOF or /quit. Turn errors are
// printed and the loop continues.
func runREPL(ctx context.Context, app *App, userID, name string, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, formatter.FormatWelcome(name, shortcutHelp()))

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		res, err := runTurn(ctx, app.Bot, userID, line)
		if err != nil {
			app.logger().Error("turn failed", zap.String("user", userID), zap.Error(err))
			fmt.Fprintln(out, formatter.FormatError(err))
			continue
		}
		if res.Quit {
			break
		}
		fmt.Fprintln(out, formatter.FormatReply(res.Reply))
		if res.FollowUp != "" {
			fmt.Fprintln(out, formatter.FormatFollowUp(res.FollowUp))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type chatOptions struct {
	user  string
	plain bool
}

func newChatCmd(app *App, opts *chatOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the assistant",
		Long:  "Start a conversation. On a terminal this opens the chat screen, otherwise lines are read from stdin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd, app, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "use the line-based chat even on a terminal")
	return cmd
}

func runChat(cmd *cobra.Command, app *App, opts *chatOptions) error {
	ctx := commandContext(cmd)

	userID, name, err := resolveUser(app, opts.user)
	if err != nil {
		return err
	}
	app.logger().Info("chat started", zap.String("user", userID), zap.Bool("tui", app.interactive() && !opts.plain))

	if !app.interactive() || opts.plain {
		return runREPL(ctx, app, userID, name, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	m := newChatModel(ctx, app, userID, name)
	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("chat: %w", err)
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// resolveUser picks the conversation id: the flag, then a name asked on
// a terminal, then a generated guest id. name is empty for guests.
func resolveUser(app *App, flag string) (userID, name string, err error) {
	if flag = strings.TrimSpace(flag); flag != "" {
		return flag, flag, nil
	}
	if app.interactive() {
		name, err = askName()
		if err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return "", "", fmt.Errorf("asking name: %w", err)
		}
		if name = strings.TrimSpace(name); name != "" {
			return name, name, nil
		}
	}
	return guestID(), "", nil
}

func guestID() string {
	return "guest-" + uuid.NewString()[:8]
}

func askName() (string, error) {
	var name string
	err := nameForm(&name).Run()
	return name, err
}

func nameForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Как вас зовут?").
				Description("Имя видно только в журнале заказов. Оставьте пустым, чтобы остаться гостем.").
				Placeholder("гость").
				CharLimit(40).
				Value(value).
				Validate(validateName),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

func validateName(s string) error {
	if strings.ContainsAny(s, "\t\n/") {
		return errors.New("имя не должно содержать / и переносов строк")
	}
	return nil
}

func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	return t
}

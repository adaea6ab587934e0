package formatter

import (
	"fmt"
	"strings"
)

// Shortcut describes one slash command for the help screen.
type Shortcut struct {
	Name        string
	Description string
}

// FormatWelcome is printed when a chat starts.
func FormatWelcome(name string, shortcuts []Shortcut) string {
	var b strings.Builder
	b.WriteString(Header("restobot"))
	b.WriteString("\n")
	if name != "" {
		b.WriteString(fmt.Sprintf("Здравствуйте, %s! ", Bold(name)))
	}
	b.WriteString("Напишите, что хотите заказать, или спросите меню.\n")
	b.WriteString(Dim(shortcutLine(shortcuts)))
	b.WriteString("\n")
	return b.String()
}

func shortcutLine(shortcuts []Shortcut) string {
	names := make([]string, len(shortcuts))
	for i, s := range shortcuts {
		names[i] = s.Name
	}
	return "Команды: " + strings.Join(names, " ")
}

// FormatHelp lists slash commands with their descriptions.
func FormatHelp(shortcuts []Shortcut) string {
	rows := make([][]string, len(shortcuts))
	for i, s := range shortcuts {
		rows[i] = []string{StylePurple.Render(s.Name), s.Description}
	}
	return RenderTable([]string{"Команда", "Описание"}, rows)
}

// FormatUserLine echoes what the user typed above the bot's answer.
func FormatUserLine(name, text string) string {
	if name == "" {
		name = "вы"
	}
	return StyleBlue.Render(name+" ›") + " " + text
}

// FormatReply renders a bot reply, turning *bold* spans into bold text.
func FormatReply(text string) string {
	return StyleGreen.Render("бот ›") + " " + RenderEmphasis(text)
}

// FormatFollowUp renders an unprompted bot message such as an apology.
func FormatFollowUp(text string) string {
	return StyleYellow.Render("бот ›") + " " + StyleYellow.Render(text)
}

func FormatError(err error) string {
	return StyleRed.Render("ошибка:") + " " + err.Error()
}

// RenderEmphasis replaces *text* spans with bold text. An unmatched
// asterisk is kept as is.
func RenderEmphasis(text string) string {
	var b strings.Builder
	for {
		start := strings.IndexByte(text, '*')
		if start < 0 {
			break
		}
		end := strings.IndexByte(text[start+1:], '*')
		if end < 0 {
			break
		}
		end += start + 1
		b.WriteString(text[:start])
		b.WriteString(Bold(text[start+1 : end]))
		text = text[end+1:]
	}
	b.WriteString(text)
	return b.String()
}

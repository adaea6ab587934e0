package assistant

import (
	"fmt"
	"strings"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
)

const (
	menuHeader = "🍽 *Наше меню*:"
	menuHint   = "Если хотите что-то заказать, то напишите об этом"
)

// RenderMenu lists every dish in catalog order with description and price.
func RenderMenu(c *domain.Catalog) string {
	var b strings.Builder
	b.WriteString(menuHeader + "\n\n")
	for _, it := range c.Items() {
		fmt.Fprintf(&b, "*%s*:\n%s\nЦена: %d руб.\n\n", it.Name, it.Description, it.Price)
	}
	b.WriteString(menuHint)
	return b.String()
}

package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/MikhailPshenisnov/KP-ISiT/internal/domain"
)

const orderTimeLayout = "2006-01-02 15:04"

// FormatOrders renders journal entries as a table, newest first as given.
func FormatOrders(orders []*domain.Order, loc *time.Location) string {
	if len(orders) == 0 {
		return Dim("Заказов пока нет.") + "\n"
	}
	if loc == nil {
		loc = time.Local
	}

	rows := make([][]string, 0, len(orders))
	total := 0
	for _, o := range orders {
		rec := Dim("-")
		if o.Recommended != nil {
			rec = StylePurple.Render(o.Recommended.Name)
		}
		rows = append(rows, []string{
			shortID(o.ID),
			o.CreatedAt.In(loc).Format(orderTimeLayout),
			o.UserID,
			itemSummary(o.Items),
			fmt.Sprintf("%d", o.Total),
			rec,
		})
		total += o.Total
	}

	var b strings.Builder
	b.WriteString(RenderTable(
		[]string{"ID", "Время", "Гость", "Блюда", "Сумма", "Совет"},
		rows,
		AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight,
	))
	b.WriteString(fmt.Sprintf("\n%s %s\n", Dim(fmt.Sprintf("Заказов: %d, выручка:", len(orders))), Bold(fmt.Sprintf("%d руб.", total))))
	return b.String()
}

// itemSummary collapses repeated dishes: "Борщ ×2, Морс".
func itemSummary(items []domain.MenuItem) string {
	var order []string
	counts := make(map[string]int)
	for _, it := range items {
		if counts[it.Name] == 0 {
			order = append(order, it.Name)
		}
		counts[it.Name]++
	}
	parts := make([]string, len(order))
	for i, name := range order {
		if n := counts[name]; n > 1 {
			parts[i] = fmt.Sprintf("%s ×%d", name, n)
		} else {
			parts[i] = name
		}
	}
	return strings.Join(parts, ", ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

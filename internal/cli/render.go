package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pageza/smoothie-orders/backend/internal/service"
)

var (
	accent = lipgloss.Color("#F472B6") // pink
	dim    = lipgloss.Color("#6B7280")
	danger = lipgloss.Color("#EF4444")
	okay   = lipgloss.Color("#22C55E")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	errorStyle   = lipgloss.NewStyle().Foreground(danger)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(okay)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(dim)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func renderNutrition(w io.Writer, res service.NutritionResult) {
	if res.SearchLine != "" {
		fmt.Fprintln(w, dimStyle.Render(res.SearchLine))
	}
	fmt.Fprintln(w, titleStyle.Render(res.Heading))

	t := newTable("Field", "Value")
	for _, f := range res.Record.Fields {
		t.Row(f.Name, f.Text())
	}
	fmt.Fprintln(w, t.Render())
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
)

var (
	brandColor = lipgloss.Color("#28A745")
	warnColor  = lipgloss.Color("#FFC107")
	mutedColor = lipgloss.Color("#6C757D")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(brandColor)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	okStyle     = lipgloss.NewStyle().Foreground(brandColor)
	warnStyle   = lipgloss.NewStyle().Foreground(warnColor)
)

// table é uma tabela estática renderizada com lipgloss
type table struct {
	title   string
	headers []string
	rows    [][]string
}

func newTable(title string, headers ...string) *table {
	return &table{title: title, headers: headers}
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(w io.Writer) {
	var sb strings.Builder

	if t.title != "" {
		sb.WriteString(titleStyle.Render(t.title))
		sb.WriteString("\n")
	}

	if len(t.rows) == 0 {
		sb.WriteString(mutedStyle.Render("(nenhum registro)"))
		sb.WriteString("\n")
		fmt.Fprint(w, sb.String())
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}

	sep := mutedStyle.Render("|")

	for i, h := range t.headers {
		sb.WriteString(headerStyle.Width(widths[i]).Render(h))
		if i < len(t.headers)-1 {
			sb.WriteString(sep)
		}
	}
	sb.WriteString("\n")

	total := len(t.headers) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(mutedStyle.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	for _, row := range t.rows {
		for i := range t.headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			sb.WriteString(cellStyle.Width(widths[i]).Render(cell))
			if i < len(t.headers)-1 {
				sb.WriteString(sep)
			}
		}
		sb.WriteString("\n")
	}

	fmt.Fprint(w, sb.String())
}

// progressText pinta o progresso de verde quando a meta foi batida
func progressText(progress float64) string {
	text := fmt.Sprintf("%.0f%%", progress)
	if progress >= 100 {
		return okStyle.Render(text)
	}
	return warnStyle.Render(text)
}

func number(v float64) string {
	return fmt.Sprintf("%g", v)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func renderMetrics(w io.Writer, title string, metrics []domain.PerformanceMetric) {
	t := newTable(title, "ID", "Crop", "Quantity", "Target", "Unit", "Progress", "Season", "Planted", "Harvest")
	for _, m := range metrics {
		t.add(
			m.ID,
			m.CropName,
			number(m.Quantity),
			number(m.TargetYield),
			orDash(m.Unit),
			progressText(m.Progress),
			domain.SeasonOf(m.YieldRecord),
			orDash(m.PlantedDate),
			orDash(m.HarvestDate),
		)
	}
	t.render(w)
}

func renderSeries(w io.Writer, title string, crops []string, series []domain.HistoricalSeriesEntry) {
	t := newTable(title, append([]string{"Season"}, crops...)...)
	for _, entry := range series {
		row := []string{entry.Season}
		for _, crop := range crops {
			if v, ok := entry.Value(crop); ok {
				row = append(row, number(v))
			} else {
				row = append(row, "-")
			}
		}
		t.add(row...)
	}
	t.render(w)
}

func renderSession(w io.Writer, session domain.Session) {
	switch {
	case session.IsAuthenticated():
		fmt.Fprintf(w, "%s %s <%s>\n", okStyle.Render("Autenticado como"), session.User.DisplayName(), session.User.Email)
	case session.State == domain.SessionLoading:
		fmt.Fprintln(w, mutedStyle.Render("Verificando sessão..."))
	default:
		fmt.Fprintln(w, warnStyle.Render("Não autenticado. Use `yieldctl login`."))
	}
	if session.Error != "" {
		fmt.Fprintln(w, warnStyle.Render(session.Error))
	}
}

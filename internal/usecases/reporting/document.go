package reporting

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/pkg/utils"
)

const notAvailable = "N/A"

// Document é o relatório independente de formato
type Document struct {
	Title       string
	GeneratedAt time.Time
	Tables      []Table
}

// Table é uma seção tabular do relatório. Células numéricas ficam como
// float64 para que a planilha preserve o tipo.
type Table struct {
	Caption string
	Headers []string
	Rows    [][]any
}

var reportTitles = map[domain.ReportKind]string{
	domain.ReportCrops:     "Crop Management Report",
	domain.ReportHistory:   "Historical Yield Report",
	domain.ReportAnalytics: "Yield Analytics Report",
}

// BuildCropsReport monta o inventário de culturas
func BuildCropsReport(metrics []domain.PerformanceMetric, generatedAt time.Time) Document {
	rows := make([][]any, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, []any{
			m.CropName,
			withUnit(m.Quantity, m.Unit),
			withUnit(m.TargetYield, m.Unit),
			fmt.Sprintf("%d%%", int(utils.RoundHalfUp(m.Progress))),
			orNA(domain.SeasonOf(m.YieldRecord), domain.UnknownSeason),
			utils.FormatDateOr(m.PlantedDate, notAvailable),
			utils.FormatDateOr(m.HarvestDate, notAvailable),
		})
	}

	return Document{
		Title:       reportTitles[domain.ReportCrops],
		GeneratedAt: generatedAt,
		Tables: []Table{{
			Caption: "Crop Inventory",
			Headers: []string{"Crop", "Current Yield", "Target Yield", "Progress", "Season", "Planted Date", "Harvest Date"},
			Rows:    rows,
		}},
	}
}

// BuildHistoryReport monta uma linha por estação e uma coluna por cultura
func BuildHistoryReport(view domain.HistoryView, generatedAt time.Time) Document {
	headers := append([]string{"Season"}, view.Crops...)

	rows := make([][]any, 0, len(view.Series))
	for _, entry := range view.Series {
		row := make([]any, 0, len(headers))
		row = append(row, entry.Season)
		for _, crop := range view.Crops {
			if value, ok := entry.Value(crop); ok {
				row = append(row, value)
			} else {
				row = append(row, "-")
			}
		}
		rows = append(rows, row)
	}

	return Document{
		Title:       reportTitles[domain.ReportHistory],
		GeneratedAt: generatedAt,
		Tables: []Table{{
			Caption: "Yield by Season",
			Headers: headers,
			Rows:    rows,
		}},
	}
}

// BuildAnalyticsReport monta desempenho, eficiência e projeção da próxima estação
func BuildAnalyticsReport(view domain.DashboardView, generatedAt time.Time) Document {
	performance := Table{
		Caption: "Performance",
		Headers: []string{"Crop", "Current Yield", "Target Yield", "Progress", "Efficiency"},
	}
	for _, m := range view.Metrics {
		performance.Rows = append(performance.Rows, []any{
			m.CropName,
			m.Quantity,
			m.TargetYield,
			utils.RoundWithTwoDecimalPlace(m.Progress),
			fmt.Sprintf("%d%%", m.Efficiency),
		})
	}

	efficiency := Table{
		Caption: "Efficiency vs Target",
		Headers: []string{"Crop", "Efficiency", "Trend"},
	}
	for _, e := range view.Efficiency {
		efficiency.Rows = append(efficiency.Rows, []any{e.Name, fmt.Sprintf("%d%%", e.Efficiency), e.Trend})
	}

	tables := []Table{performance, efficiency}

	if view.Forecast != nil {
		forecast := Table{
			Caption: "Forecast " + view.Forecast.Season,
			Headers: []string{"Crop", "Forecast"},
		}
		for _, crop := range sortedKeys(view.Forecast.Crops) {
			forecast.Rows = append(forecast.Rows, []any{crop, view.Forecast.Crops[crop]})
		}
		tables = append(tables, forecast)
	}

	summary := view.Summary
	tables = append(tables, Table{
		Caption: "Summary",
		Headers: []string{"Total Crops", "Average Progress", "Top Crop", "Current Season"},
		Rows: [][]any{{
			float64(summary.TotalCrops),
			fmt.Sprintf("%d%%", summary.AverageProgress),
			summary.TopCrop,
			summary.CurrentSeason,
		}},
	})

	return Document{
		Title:       reportTitles[domain.ReportAnalytics],
		GeneratedAt: generatedAt,
		Tables:      tables,
	}
}

func withUnit(value float64, unit string) string {
	if unit == "" {
		unit = domain.DefaultUnit
	}
	return formatNumber(value) + " " + unit
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// formatCell converte a célula para texto, usado no PDF
func formatCell(cell any) string {
	switch v := cell.(type) {
	case float64:
		return formatNumber(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func orNA(value, missing string) string {
	if value == "" || value == missing {
		return notAvailable
	}
	return value
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

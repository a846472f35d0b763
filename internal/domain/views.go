package domain

// ChartType é o tipo de gráfico escolhido na tela de analytics
type ChartType string

const (
	ChartBar  ChartType = "bar"
	ChartLine ChartType = "line"
)

// ParseChartType normaliza o tipo de gráfico; qualquer valor diferente de line vira bar
func ParseChartType(s string) ChartType {
	if ChartType(s) == ChartLine {
		return ChartLine
	}
	return ChartBar
}

// ComparisonSelection guarda as seleções do modo de comparação
type ComparisonSelection struct {
	Crops   []string
	Seasons []string
}

// IsEmpty indica que nenhuma cultura e nenhuma estação foram selecionadas
func (s ComparisonSelection) IsEmpty() bool {
	return len(s.Crops) == 0 && len(s.Seasons) == 0
}

// EmptyComparisonMessage é exibida quando não há seleção para comparar
const EmptyComparisonMessage = "select crops or seasons"

// Comparison é o resultado do modo de comparação
type Comparison struct {
	// XAxis é "season" quando há estações selecionadas, senão "name"
	XAxis   string                  `json:"xAxis"`
	Series  []HistoricalSeriesEntry `json:"series"`
	Metrics []PerformanceMetric     `json:"metrics,omitempty"`
	Message string                  `json:"message,omitempty"`
}

// DashboardView é a resposta da tela principal
type DashboardView struct {
	Summary        DashboardSummary        `json:"summary"`
	Metrics        []PerformanceMetric     `json:"metrics"`
	Distribution   []DistributionSlice     `json:"distribution"`
	History        []HistoricalSeriesEntry `json:"history"`
	Forecast       *Forecast               `json:"forecast,omitempty"`
	ForecastSeries []HistoricalSeriesEntry `json:"forecastSeries"`
	Efficiency     []EfficiencyEntry       `json:"efficiency"`
}

// AnalyticsView é a resposta da tela de analytics
type AnalyticsView struct {
	ChartType  ChartType           `json:"chartType"`
	Metrics    []PerformanceMetric `json:"metrics"`
	Crops      []string            `json:"crops"`
	Seasons    []string            `json:"seasons"`
	Comparison Comparison          `json:"comparison"`
}

// HistoryView é a resposta da tela de histórico
type HistoryView struct {
	Crops  []string                `json:"crops"`
	Series []HistoricalSeriesEntry `json:"series"`
}

package domain

// PerformanceMetric é um registro acrescido do progresso em relação à meta
type PerformanceMetric struct {
	YieldRecord
	Progress   float64 `json:"progress"`   // Percentual da meta atingido
	Efficiency int     `json:"efficiency"` // Percentual acima da meta (0 quando abaixo)
}

// DashboardSummary alimenta os cards de resumo do dashboard
type DashboardSummary struct {
	TotalCrops      int     `json:"totalCrops"`
	AverageProgress int     `json:"averageProgress"`
	TopCrop         string  `json:"topCrop"`
	TopProgress     float64 `json:"topProgress"`
	CurrentSeason   string  `json:"currentSeason"`
}

// DistributionSlice é uma fatia do gráfico de pizza de distribuição da colheita
type DistributionSlice struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

// EfficiencyEntry é uma barra do gráfico de eficiência por cultura
type EfficiencyEntry struct {
	Name       string `json:"name"`
	Efficiency int    `json:"efficiency"`
	Trend      string `json:"trend"` // "up" ou "down"
}

const (
	TrendUp   = "up"
	TrendDown = "down"
)

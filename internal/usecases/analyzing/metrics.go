// Package analyzing reúne as funções puras que transformam registros de
// colheita em dados prontos para gráficos e tabelas.
package analyzing

import (
	"sort"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/pkg/utils"
)

// NotAvailable é exibido quando não há dado para o card
const NotAvailable = "N/A"

// ToPerformanceMetrics calcula o progresso de cada registro em relação à meta.
// Meta <= 0 resulta em progresso 0.
func ToPerformanceMetrics(records []domain.YieldRecord) []domain.PerformanceMetric {
	metrics := make([]domain.PerformanceMetric, 0, len(records))
	for _, record := range records {
		metrics = append(metrics, domain.PerformanceMetric{
			YieldRecord: record,
			Progress:    Progress(record.Quantity, record.TargetYield),
			Efficiency:  Efficiency(record.Quantity, record.TargetYield),
		})
	}
	return metrics
}

// Progress retorna quantity/target*100, ou 0 quando target <= 0
func Progress(quantity, target float64) float64 {
	return utils.Percent(quantity, target)
}

// Efficiency é o percentual acima da meta, arredondado; 0 quando não superou
func Efficiency(quantity, target float64) int {
	if target <= 0 || quantity <= target {
		return 0
	}
	return int(utils.RoundHalfUp((quantity - target) / target * 100))
}

// Summarize monta os cards do dashboard
func Summarize(metrics []domain.PerformanceMetric) domain.DashboardSummary {
	summary := domain.DashboardSummary{
		TotalCrops:    len(metrics),
		TopCrop:       NotAvailable,
		CurrentSeason: NotAvailable,
	}
	if len(metrics) == 0 {
		return summary
	}

	var total float64
	top := metrics[0]
	for _, m := range metrics {
		total += m.Progress
		if m.Progress > top.Progress {
			top = m
		}
	}

	summary.AverageProgress = int(utils.RoundHalfUp(total / float64(len(metrics))))
	summary.TopCrop = top.CropName
	summary.TopProgress = utils.RoundWithTwoDecimalPlace(top.Progress)
	summary.CurrentSeason = domain.SeasonOf(metrics[0].YieldRecord)

	return summary
}

// Distribution soma a quantidade por cultura e calcula a participação no total.
// Fatias ordenadas da maior para a menor.
func Distribution(records []domain.YieldRecord) []domain.DistributionSlice {
	totals := make(map[string]float64)
	var order []string
	var grandTotal float64

	for _, record := range records {
		if _, seen := totals[record.CropName]; !seen {
			order = append(order, record.CropName)
		}
		totals[record.CropName] += record.Quantity
		grandTotal += record.Quantity
	}

	slices := make([]domain.DistributionSlice, 0, len(order))
	for _, crop := range order {
		slices = append(slices, domain.DistributionSlice{
			Name:    crop,
			Value:   totals[crop],
			Percent: utils.RoundWithTwoDecimalPlace(utils.Percent(totals[crop], grandTotal)),
		})
	}

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Value > slices[j].Value
	})

	return slices
}

// CropEfficiency compara o total colhido com o total da meta de cada cultura.
// Valores negativos indicam cultura abaixo da meta.
func CropEfficiency(metrics []domain.PerformanceMetric) []domain.EfficiencyEntry {
	type totals struct{ quantity, target float64 }

	byCrop := make(map[string]*totals)
	var order []string
	for _, m := range metrics {
		t, ok := byCrop[m.CropName]
		if !ok {
			t = &totals{}
			byCrop[m.CropName] = t
			order = append(order, m.CropName)
		}
		t.quantity += m.Quantity
		t.target += m.TargetYield
	}

	entries := make([]domain.EfficiencyEntry, 0, len(order))
	for _, crop := range order {
		t := byCrop[crop]
		if t.target <= 0 {
			continue
		}

		efficiency := int(utils.RoundHalfUp((t.quantity - t.target) / t.target * 100))
		trend := domain.TrendUp
		if efficiency < 0 {
			trend = domain.TrendDown
		}

		entries = append(entries, domain.EfficiencyEntry{
			Name:       crop,
			Efficiency: efficiency,
			Trend:      trend,
		})
	}

	return entries
}

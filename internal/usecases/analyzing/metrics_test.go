package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
)

func TestToPerformanceMetrics(t *testing.T) {
	tests := []struct {
		name           string
		record         domain.YieldRecord
		wantProgress   float64
		wantEfficiency int
	}{
		{name: "abaixo da meta", record: domain.YieldRecord{Quantity: 1200, TargetYield: 1500}, wantProgress: 80},
		{name: "acima da meta", record: domain.YieldRecord{Quantity: 1300, TargetYield: 1000}, wantProgress: 130, wantEfficiency: 30},
		{name: "meta zero", record: domain.YieldRecord{Quantity: 500, TargetYield: 0}, wantProgress: 0},
		{name: "meta negativa", record: domain.YieldRecord{Quantity: 500, TargetYield: -10}, wantProgress: 0},
		{name: "sem colheita", record: domain.YieldRecord{Quantity: 0, TargetYield: 100}, wantProgress: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := ToPerformanceMetrics([]domain.YieldRecord{tt.record})
			require.Len(t, metrics, 1)
			assert.InDelta(t, tt.wantProgress, metrics[0].Progress, 1e-9)
			assert.Equal(t, tt.wantEfficiency, metrics[0].Efficiency)
			assert.Equal(t, tt.record, metrics[0].YieldRecord)
		})
	}
}

func TestProgressProperty(t *testing.T) {
	for _, target := range []float64{-5, 0, 0.5, 10, 1500} {
		for _, quantity := range []float64{0, 1, 99.5, 1500, 4000} {
			got := Progress(quantity, target)
			if target <= 0 {
				assert.Equal(t, 0.0, got)
				continue
			}
			assert.InDelta(t, quantity/target*100, got, 1e-9)
		}
	}
}

func TestSummarize(t *testing.T) {
	t.Run("sem métricas", func(t *testing.T) {
		summary := Summarize(nil)
		assert.Equal(t, 0, summary.TotalCrops)
		assert.Equal(t, NotAvailable, summary.TopCrop)
		assert.Equal(t, NotAvailable, summary.CurrentSeason)
	})

	t.Run("média, destaque e estação atual", func(t *testing.T) {
		summary := Summarize(ToPerformanceMetrics([]domain.YieldRecord{
			{CropName: "Wheat", Quantity: 1200, TargetYield: 1500, Season: "Summer 2023"},
			{CropName: "Corn", Quantity: 950, TargetYield: 1000, Season: "Summer 2023"},
			{CropName: "Rice", Quantity: 500, TargetYield: 600, Season: "Spring 2023"},
		}))

		assert.Equal(t, 3, summary.TotalCrops)
		// (80 + 95 + 83.33) / 3 = 86.11
		assert.Equal(t, 86, summary.AverageProgress)
		assert.Equal(t, "Corn", summary.TopCrop)
		assert.Equal(t, 95.0, summary.TopProgress)
		assert.Equal(t, "Summer 2023", summary.CurrentSeason)
	})
}

func TestDistribution(t *testing.T) {
	got := Distribution([]domain.YieldRecord{
		{CropName: "Corn", Quantity: 25},
		{CropName: "Wheat", Quantity: 50},
		{CropName: "Corn", Quantity: 25},
	})

	assert.Equal(t, []domain.DistributionSlice{
		{Name: "Corn", Value: 50, Percent: 50},
		{Name: "Wheat", Value: 50, Percent: 50},
	}, got)

	assert.Empty(t, Distribution(nil))
}

func TestCropEfficiency(t *testing.T) {
	got := CropEfficiency(ToPerformanceMetrics([]domain.YieldRecord{
		{CropName: "Wheat", Quantity: 1100, TargetYield: 1000},
		{CropName: "Barley", Quantity: 970, TargetYield: 1000},
		{CropName: "Oats", Quantity: 100, TargetYield: 0},
	}))

	assert.Equal(t, []domain.EfficiencyEntry{
		{Name: "Wheat", Efficiency: 10, Trend: domain.TrendUp},
		{Name: "Barley", Efficiency: -3, Trend: domain.TrendDown},
	}, got)
}

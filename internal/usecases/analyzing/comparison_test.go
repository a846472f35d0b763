package analyzing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
)

func comparisonSeries() []domain.HistoricalSeriesEntry {
	return []domain.HistoricalSeriesEntry{
		entry("Spring 2023", map[string]float64{"Wheat": 1250, "Corn": 900}),
		entry("Summer 2023", map[string]float64{"Wheat": 1350, "Corn": 950, "Rice": 500}),
	}
}

func TestFilterForComparison(t *testing.T) {
	tests := []struct {
		name    string
		crops   []string
		seasons []string
		want    []domain.HistoricalSeriesEntry
	}{
		{
			name: "sem seleção retorna vazio",
			want: []domain.HistoricalSeriesEntry{},
		},
		{
			name:  "só culturas mantém todas as estações",
			crops: []string{"Wheat"},
			want: []domain.HistoricalSeriesEntry{
				entry("Spring 2023", map[string]float64{"Wheat": 1250}),
				entry("Summer 2023", map[string]float64{"Wheat": 1350}),
			},
		},
		{
			name:    "só estações mantém todas as culturas",
			seasons: []string{"Summer 2023"},
			want: []domain.HistoricalSeriesEntry{
				entry("Summer 2023", map[string]float64{"Wheat": 1350, "Corn": 950, "Rice": 500}),
			},
		},
		{
			name:    "culturas e estações",
			crops:   []string{"Rice", "Corn"},
			seasons: []string{"Spring 2023"},
			want: []domain.HistoricalSeriesEntry{
				entry("Spring 2023", map[string]float64{"Corn": 900}),
			},
		},
		{
			name:    "estação inexistente",
			seasons: []string{"Fall 1999"},
			want:    []domain.HistoricalSeriesEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterForComparison(comparisonSeries(), tt.crops, tt.seasons)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterForComparison() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	metrics := ToPerformanceMetrics([]domain.YieldRecord{
		{CropName: "Wheat", Quantity: 1200, TargetYield: 1500},
		{CropName: "Corn", Quantity: 950, TargetYield: 1000},
	})

	t.Run("seleção vazia", func(t *testing.T) {
		got := Compare(comparisonSeries(), metrics, domain.ComparisonSelection{})
		assert.Empty(t, got.Series)
		assert.Empty(t, got.Metrics)
		assert.Equal(t, domain.EmptyComparisonMessage, got.Message)
	})

	t.Run("só culturas compara atual e meta", func(t *testing.T) {
		got := Compare(comparisonSeries(), metrics, domain.ComparisonSelection{Crops: []string{"Corn"}})
		assert.Equal(t, "name", got.XAxis)
		assert.Len(t, got.Metrics, 1)
		assert.Equal(t, "Corn", got.Metrics[0].CropName)
		assert.Len(t, got.Series, 2)
	})

	t.Run("com estações o eixo é a estação", func(t *testing.T) {
		got := Compare(comparisonSeries(), metrics, domain.ComparisonSelection{Seasons: []string{"Spring 2023"}})
		assert.Equal(t, "season", got.XAxis)
		assert.Len(t, got.Series, 1)
		assert.Empty(t, got.Message)
	})
}

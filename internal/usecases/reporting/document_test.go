package reporting

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
)

var generatedAt = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func TestBuildCropsReport(t *testing.T) {
	metrics := []domain.PerformanceMetric{
		{
			YieldRecord: domain.YieldRecord{
				CropName: "Wheat", Quantity: 1200, TargetYield: 1500, Unit: "kg",
				Season: "Summer 2023", PlantedDate: "2023-03-01", HarvestDate: "2023-07-15",
			},
			Progress: 80,
		},
		{
			YieldRecord: domain.YieldRecord{CropName: "Oats", Quantity: 2.5, TargetYield: 0},
			Progress:    0,
		},
	}

	doc := BuildCropsReport(metrics, generatedAt)

	assert.Equal(t, "Crop Management Report", doc.Title)
	require.Len(t, doc.Tables, 1)
	assert.Equal(t, "Crop Inventory", doc.Tables[0].Caption)

	want := [][]any{
		{"Wheat", "1200 kg", "1500 kg", "80%", "Summer 2023", "2023-03-01", "2023-07-15"},
		{"Oats", "2.5 kg", "0 kg", "0%", "N/A", "N/A", "N/A"},
	}
	if diff := cmp.Diff(want, doc.Tables[0].Rows); diff != "" {
		t.Errorf("linhas diferentes (-want +got):\n%s", diff)
	}
}

func TestBuildHistoryReport(t *testing.T) {
	view := domain.HistoryView{
		Crops: []string{"Corn", "Wheat"},
		Series: []domain.HistoricalSeriesEntry{
			{Season: "Spring 2023", Crops: map[string]float64{"Wheat": 1250, "Corn": 900}},
			{Season: "Summer 2023", Crops: map[string]float64{"Wheat": 1350}},
		},
	}

	doc := BuildHistoryReport(view, generatedAt)

	require.Len(t, doc.Tables, 1)
	assert.Equal(t, []string{"Season", "Corn", "Wheat"}, doc.Tables[0].Headers)

	want := [][]any{
		{"Spring 2023", 900.0, 1250.0},
		{"Summer 2023", "-", 1350.0},
	}
	if diff := cmp.Diff(want, doc.Tables[0].Rows); diff != "" {
		t.Errorf("linhas diferentes (-want +got):\n%s", diff)
	}
}

func TestBuildAnalyticsReport(t *testing.T) {
	view := domain.DashboardView{
		Summary: domain.DashboardSummary{TotalCrops: 2, AverageProgress: 95, TopCrop: "Corn", CurrentSeason: "Summer 2023"},
		Metrics: []domain.PerformanceMetric{
			{YieldRecord: domain.YieldRecord{CropName: "Corn", Quantity: 1100, TargetYield: 1000}, Progress: 110, Efficiency: 10},
		},
		Efficiency: []domain.EfficiencyEntry{{Name: "Corn", Efficiency: 10, Trend: domain.TrendUp}},
		Forecast:   &domain.Forecast{Season: "Fall 2023", Crops: map[string]float64{"Wheat": 1430, "Corn": 950}},
	}

	doc := BuildAnalyticsReport(view, generatedAt)

	captions := make([]string, 0, len(doc.Tables))
	for _, table := range doc.Tables {
		captions = append(captions, table.Caption)
	}
	assert.Equal(t, []string{"Performance", "Efficiency vs Target", "Forecast Fall 2023", "Summary"}, captions)

	assert.Equal(t, [][]any{{"Corn", 950.0}, {"Wheat", 1430.0}}, doc.Tables[2].Rows)
	assert.Equal(t, [][]any{{2.0, "95%", "Corn", "Summer 2023"}}, doc.Tables[3].Rows)
}

func TestBuildAnalyticsReport_SemProjecao(t *testing.T) {
	doc := BuildAnalyticsReport(domain.DashboardView{}, generatedAt)

	require.Len(t, doc.Tables, 3)
	assert.Equal(t, "Summary", doc.Tables[2].Caption)
}

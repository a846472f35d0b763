package analyzing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
)

func entry(season string, crops map[string]float64) domain.HistoricalSeriesEntry {
	return domain.HistoricalSeriesEntry{Season: season, Crops: crops}
}

func TestGroupBySeasonSummingCrops(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.YieldRecord
		want    []domain.HistoricalSeriesEntry
	}{
		{
			name: "soma culturas repetidas na mesma estação",
			records: []domain.YieldRecord{
				{CropName: "Wheat", Quantity: 100, Season: "Summer 2023"},
				{CropName: "Wheat", Quantity: 50, Season: "Summer 2023"},
			},
			want: []domain.HistoricalSeriesEntry{
				entry("Summer 2023", map[string]float64{"Wheat": 150}),
			},
		},
		{
			name: "ordem cronológica com estações derivadas de datas",
			records: []domain.YieldRecord{
				{CropName: "Corn", Quantity: 30, Season: "Spring 2023"},
				{CropName: "Wheat", Quantity: 10, HarvestDate: "2022-12-20"},
				{CropName: "Corn", Quantity: 5, PlantedDate: "2023-07-01"},
				{CropName: "Wheat", Quantity: 20, Season: "Spring 2023"},
			},
			want: []domain.HistoricalSeriesEntry{
				entry("Winter 2022", map[string]float64{"Wheat": 10}),
				entry("Spring 2023", map[string]float64{"Corn": 30, "Wheat": 20}),
				entry("Summer 2023", map[string]float64{"Corn": 5}),
			},
		},
		{
			name: "rótulos não reconhecidos ficam no final",
			records: []domain.YieldRecord{
				{CropName: "Rice", Quantity: 7, Season: "summer-23"},
				{CropName: "Rice", Quantity: 3},
				{CropName: "Rice", Quantity: 9, Season: "Fall 2021"},
			},
			want: []domain.HistoricalSeriesEntry{
				entry("Fall 2021", map[string]float64{"Rice": 9}),
				entry("Unknown", map[string]float64{"Rice": 3}),
				entry("summer-23", map[string]float64{"Rice": 7}),
			},
		},
		{
			name:    "sem registros",
			records: nil,
			want:    []domain.HistoricalSeriesEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GroupBySeasonSummingCrops(tt.records)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GroupBySeasonSummingCrops() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGroupHistories(t *testing.T) {
	got := GroupHistories([]domain.YieldHistoryRecord{
		{CropName: "Wheat", Quantity: 1250, Season: "Spring 2023"},
		{CropName: "Wheat", Quantity: 1350, HarvestDate: "2023-07-15"},
	})

	want := []domain.HistoricalSeriesEntry{
		entry("Spring 2023", map[string]float64{"Wheat": 1250}),
		entry("Summer 2023", map[string]float64{"Wheat": 1350}),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GroupHistories() mismatch (-want +got):\n%s", diff)
	}
}

func TestSortSeasons(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "ano e depois ordem da estação",
			in:   []string{"Spring 2023", "Winter 2022", "Summer 2023"},
			want: []string{"Winter 2022", "Spring 2023", "Summer 2023"},
		},
		{
			name: "fall antes do winter do ano seguinte",
			in:   []string{"Winter 2024", "Fall 2023", "Winter 2023"},
			want: []string{"Winter 2023", "Fall 2023", "Winter 2024"},
		},
		{
			name: "não reconhecidos no final em ordem alfabética",
			in:   []string{"b-season", "Summer 2020", "a-season"},
			want: []string{"Summer 2020", "a-season", "b-season"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]string(nil), tt.in...)
			assert.Equal(t, tt.want, SortSeasons(tt.in))
			assert.Equal(t, in, tt.in, "entrada não deve ser alterada")
		})
	}
}

func TestMergeSeasons(t *testing.T) {
	got := MergeSeasons(
		[]string{"Summer 2023", "Spring 2023"},
		[]string{"Spring 2023", "", "Winter 2023"},
	)
	assert.Equal(t, []string{"Winter 2023", "Spring 2023", "Summer 2023"}, got)
}

func TestCropNamesAndUnrecognized(t *testing.T) {
	series := []domain.HistoricalSeriesEntry{
		entry("Spring 2023", map[string]float64{"Wheat": 1, "Corn": 2}),
		entry("colheita extra", map[string]float64{"Barley": 3, "Wheat": 4}),
	}

	assert.Equal(t, []string{"Barley", "Corn", "Wheat"}, CropNames(series))
	assert.Equal(t, []string{"colheita extra"}, UnrecognizedSeasons(series))
	assert.Equal(t, []string{"Spring 2023", "colheita extra"}, SeriesSeasons(series))
}

package analyzing

import (
	"sort"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
)

// GroupBySeasonSummingCrops gera uma linha por estação somando a quantidade de
// cada cultura. As linhas saem em ordem cronológica; rótulos fora do formato
// "<Estação> <Ano>" formam seu próprio grupo e vão para o final.
func GroupBySeasonSummingCrops(records []domain.YieldRecord) []domain.HistoricalSeriesEntry {
	bySeason := make(map[string]map[string]float64)
	var seasons []string

	for _, record := range records {
		season := domain.SeasonOf(record)

		crops, ok := bySeason[season]
		if !ok {
			crops = make(map[string]float64)
			bySeason[season] = crops
			seasons = append(seasons, season)
		}
		crops[record.CropName] += record.Quantity
	}

	seasons = SortSeasons(seasons)

	series := make([]domain.HistoricalSeriesEntry, 0, len(seasons))
	for _, season := range seasons {
		series = append(series, domain.HistoricalSeriesEntry{
			Season: season,
			Crops:  bySeason[season],
		})
	}

	return series
}

// GroupHistories agrupa as linhas de /api/yield-histories por estação
func GroupHistories(histories []domain.YieldHistoryRecord) []domain.HistoricalSeriesEntry {
	records := make([]domain.YieldRecord, 0, len(histories))
	for _, h := range histories {
		records = append(records, h.AsYieldRecord())
	}
	return GroupBySeasonSummingCrops(records)
}

// SortSeasons retorna uma cópia dos rótulos em ordem cronológica (ano, depois
// Winter, Spring, Summer, Fall). Rótulos não reconhecidos ficam no final em
// ordem alfabética.
func SortSeasons(labels []string) []string {
	sorted := make([]string, len(labels))
	copy(sorted, labels)

	sort.SliceStable(sorted, func(i, j int) bool {
		return seasonLess(sorted[i], sorted[j])
	})

	return sorted
}

func seasonLess(a, b string) bool {
	sa, okA := domain.ParseSeason(a)
	sb, okB := domain.ParseSeason(b)

	switch {
	case okA && okB:
		return sa.Before(sb)
	case okA != okB:
		return okA
	default:
		return a < b
	}
}

// MergeSeasons une listas de rótulos sem repetição, em ordem cronológica
func MergeSeasons(lists ...[]string) []string {
	seen := make(map[string]struct{})
	var merged []string
	for _, list := range lists {
		for _, label := range list {
			if _, ok := seen[label]; ok || label == "" {
				continue
			}
			seen[label] = struct{}{}
			merged = append(merged, label)
		}
	}
	return SortSeasons(merged)
}

// SeriesSeasons retorna os rótulos das linhas da série, na ordem da série
func SeriesSeasons(series []domain.HistoricalSeriesEntry) []string {
	seasons := make([]string, 0, len(series))
	for _, entry := range series {
		seasons = append(seasons, entry.Season)
	}
	return seasons
}

// UnrecognizedSeasons lista os rótulos que não seguem "<Estação> <Ano>"
func UnrecognizedSeasons(series []domain.HistoricalSeriesEntry) []string {
	var labels []string
	for _, entry := range series {
		if _, ok := domain.ParseSeason(entry.Season); !ok {
			labels = append(labels, entry.Season)
		}
	}
	return labels
}

// CropNames retorna as culturas presentes na série, em ordem alfabética
func CropNames(series []domain.HistoricalSeriesEntry) []string {
	seen := make(map[string]struct{})
	names := []string{}
	for _, entry := range series {
		for crop := range entry.Crops {
			if _, ok := seen[crop]; ok {
				continue
			}
			seen[crop] = struct{}{}
			names = append(names, crop)
		}
	}
	sort.Strings(names)
	return names
}

package analyzing

import (
	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
)

// FilterForComparison restringe a série às estações e culturas selecionadas.
// Sem nenhuma seleção o resultado é vazio; seleção vazia em uma das dimensões
// mantém tudo naquela dimensão.
func FilterForComparison(series []domain.HistoricalSeriesEntry, crops, seasons []string) []domain.HistoricalSeriesEntry {
	result := []domain.HistoricalSeriesEntry{}
	if len(crops) == 0 && len(seasons) == 0 {
		return result
	}

	seasonSet := toSet(seasons)
	cropSet := toSet(crops)

	for _, entry := range series {
		if len(seasonSet) > 0 {
			if _, ok := seasonSet[entry.Season]; !ok {
				continue
			}
		}

		filtered := make(map[string]float64, len(entry.Crops))
		for crop, value := range entry.Crops {
			if len(cropSet) > 0 {
				if _, ok := cropSet[crop]; !ok {
					continue
				}
			}
			filtered[crop] = value
		}

		result = append(result, domain.HistoricalSeriesEntry{Season: entry.Season, Crops: filtered})
	}

	return result
}

// CompareCrops retorna as métricas das culturas selecionadas, na ordem original
func CompareCrops(metrics []domain.PerformanceMetric, crops []string) []domain.PerformanceMetric {
	result := []domain.PerformanceMetric{}
	cropSet := toSet(crops)
	for _, m := range metrics {
		if _, ok := cropSet[m.CropName]; ok {
			result = append(result, m)
		}
	}
	return result
}

// Compare monta o resultado do modo de comparação. Com estações selecionadas o
// eixo X é a estação; só com culturas, o eixo é a cultura (atual x meta).
func Compare(series []domain.HistoricalSeriesEntry, metrics []domain.PerformanceMetric, selection domain.ComparisonSelection) domain.Comparison {
	if selection.IsEmpty() {
		return domain.Comparison{
			XAxis:   "name",
			Series:  []domain.HistoricalSeriesEntry{},
			Message: domain.EmptyComparisonMessage,
		}
	}

	if len(selection.Seasons) == 0 {
		return domain.Comparison{
			XAxis:   "name",
			Series:  FilterForComparison(series, selection.Crops, nil),
			Metrics: CompareCrops(metrics, selection.Crops),
		}
	}

	return domain.Comparison{
		XAxis:  "season",
		Series: FilterForComparison(series, selection.Crops, selection.Seasons),
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

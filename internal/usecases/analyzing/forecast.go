package analyzing

import (
	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/pkg/utils"
)

// trendDamping suaviza a tendência entre as duas últimas estações
const trendDamping = 0.8

// NextSeasonFallback é usado quando a última estação não tem rótulo reconhecido
const NextSeasonFallback = "Next Season"

// ForecastNextSeason projeta a próxima estação a partir das duas últimas linhas
// da série: last + (last - previous) * 0.8, arredondado. Cultura ausente na
// penúltima linha não tem tendência. Menos de duas linhas retorna nil.
func ForecastNextSeason(series []domain.HistoricalSeriesEntry) *domain.Forecast {
	if len(series) < 2 {
		return nil
	}

	last := series[len(series)-1]
	previous := series[len(series)-2]

	crops := make(map[string]float64, len(last.Crops))
	for crop, lastValue := range last.Crops {
		trend := 0.0
		if previousValue, ok := previous.Value(crop); ok {
			trend = lastValue - previousValue
		}
		crops[crop] = utils.RoundHalfUp(lastValue + trend*trendDamping)
	}

	label := NextSeasonFallback
	if season, ok := domain.ParseSeason(last.Season); ok {
		label = season.Next().Label()
	}

	return &domain.Forecast{Season: label, Crops: crops}
}

// ForecastSeries acrescenta à série a linha projetada, rotulada "<estação> (Forecast)"
func ForecastSeries(series []domain.HistoricalSeriesEntry) []domain.HistoricalSeriesEntry {
	out := make([]domain.HistoricalSeriesEntry, 0, len(series)+1)
	out = append(out, series...)

	forecast := ForecastNextSeason(series)
	if forecast == nil {
		return out
	}

	return append(out, domain.HistoricalSeriesEntry{
		Season: forecast.Season + " (Forecast)",
		Crops:  forecast.Crops,
	})
}

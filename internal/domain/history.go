package domain

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const seasonKey = "season"

// IsReservedCropName indica nomes de cultura que colidem com a chave da
// estação no JSON da série e seriam perdidos
func IsReservedCropName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), seasonKey)
}

// HistoricalSeriesEntry é uma linha da série histórica: uma estação e o total
// colhido por cultura. No JSON as culturas viram chaves de primeiro nível
// ({"season":"Summer 2023","Wheat":150}), formato consumido pelos gráficos.
type HistoricalSeriesEntry struct {
	Season string
	Crops  map[string]float64
}

// Value retorna o total da cultura na estação e se ela está presente
func (e HistoricalSeriesEntry) Value(crop string) (float64, bool) {
	v, ok := e.Crops[crop]
	return v, ok
}

func (e HistoricalSeriesEntry) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(e.Crops)+1)
	for crop, total := range e.Crops {
		flat[crop] = total
	}
	flat[seasonKey] = e.Season
	return json.Marshal(flat)
}

func (e *HistoricalSeriesEntry) UnmarshalJSON(data []byte) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}

	e.Crops = make(map[string]float64, len(flat))
	for key, raw := range flat {
		if key == seasonKey {
			season, ok := raw.(string)
			if !ok {
				return fmt.Errorf("domain: season deve ser texto, recebido %T", raw)
			}
			e.Season = season
			continue
		}

		value, ok := raw.(float64)
		if !ok {
			return fmt.Errorf("domain: valor da cultura %q deve ser numérico, recebido %T", key, raw)
		}
		e.Crops[key] = value
	}

	return nil
}

// Forecast é a projeção da próxima estação a partir das duas últimas da série
type Forecast struct {
	Season string             `json:"season"`
	Crops  map[string]float64 `json:"crops"`
}

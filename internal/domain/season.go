package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/harvest-yield-tracker/pkg/utils"
)

const (
	Winter = "Winter"
	Spring = "Spring"
	Summer = "Summer"
	Fall   = "Fall"

	// UnknownSeason agrupa registros sem estação e sem datas
	UnknownSeason = "Unknown"
)

// seasonOrder define a ordem das estações dentro de um mesmo ano
var seasonOrder = map[string]int{
	Winter: 0,
	Spring: 1,
	Summer: 2,
	Fall:   3,
}

var seasonNames = []string{Winter, Spring, Summer, Fall}

// Season é uma estação identificada por nome e ano (ex: "Summer 2023")
type Season struct {
	Name string
	Year int
}

// Label retorna o rótulo no formato "<Nome> <Ano>"
func (s Season) Label() string {
	return fmt.Sprintf("%s %d", s.Name, s.Year)
}

// Index retorna a posição da estação dentro do ano
func (s Season) Index() int {
	return seasonOrder[s.Name]
}

// Before indica se a estação é cronologicamente anterior a outra
func (s Season) Before(other Season) bool {
	if s.Year != other.Year {
		return s.Year < other.Year
	}
	return s.Index() < other.Index()
}

// Next retorna a estação seguinte; depois de Fall vem Winter do ano seguinte
func (s Season) Next() Season {
	idx := s.Index() + 1
	if idx == len(seasonNames) {
		return Season{Name: Winter, Year: s.Year + 1}
	}
	return Season{Name: seasonNames[idx], Year: s.Year}
}

// ParseSeason interpreta um rótulo "<Nome> <Ano>". Rótulos fora desse formato
// não são corrigidos: retornam ok=false e o chamador mantém o texto original.
func ParseSeason(label string) (Season, bool) {
	parts := strings.Fields(label)
	if len(parts) != 2 {
		return Season{}, false
	}

	if _, exists := seasonOrder[parts[0]]; !exists {
		return Season{}, false
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return Season{}, false
	}

	return Season{Name: parts[0], Year: year}, true
}

// SeasonFromDate mapeia o mês da data para a estação, com o ano civil da data:
// dez-fev Winter, mar-mai Spring, jun-ago Summer, set-nov Fall
func SeasonFromDate(date time.Time) Season {
	var name string
	switch date.Month() {
	case time.December, time.January, time.February:
		name = Winter
	case time.March, time.April, time.May:
		name = Spring
	case time.June, time.July, time.August:
		name = Summer
	default:
		name = Fall
	}

	return Season{Name: name, Year: date.Year()}
}

// SeasonOf resolve a estação de um registro: o campo enviado pelo backend tem
// prioridade; sem ele, usa a data de colheita e depois a de plantio.
func SeasonOf(record YieldRecord) string {
	if season := strings.TrimSpace(record.Season); season != "" {
		return season
	}

	for _, raw := range []string{record.HarvestDate, record.PlantedDate} {
		date, err := utils.ParseDate(raw)
		if err != nil || date == nil {
			continue
		}
		return SeasonFromDate(*date).Label()
	}

	return UnknownSeason
}

package yielding

import (
	"math"
	"strings"
	"time"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/pkg/utils"
)

// Form é o formulário de cadastro/edição. Os números são ponteiros para
// diferenciar campo ausente de zero.
type Form struct {
	CropName    string   `json:"cropName"`
	Quantity    *float64 `json:"quantity"`
	TargetYield *float64 `json:"targetYield"`
	Unit        string   `json:"unit"`
	Season      string   `json:"season"`
	PlantedDate string   `json:"plantedDate"`
	HarvestDate string   `json:"harvestDate"`
	Notes       string   `json:"notes"`
}

// FormFromRecord preenche o formulário com um registro existente
func FormFromRecord(record domain.YieldRecord) Form {
	quantity, target := record.Quantity, record.TargetYield
	return Form{
		CropName:    record.CropName,
		Quantity:    &quantity,
		TargetYield: &target,
		Unit:        record.Unit,
		Season:      record.Season,
		PlantedDate: record.PlantedDate,
		HarvestDate: record.HarvestDate,
		Notes:       record.Notes,
	}
}

// Validate confere o formulário e devolve o corpo pronto para o backend.
// Unidade vazia vira kg; estação vazia é derivada das datas quando possível.
func (f Form) Validate() (domain.YieldInput, error) {
	verr := &ValidationError{}

	cropName := strings.TrimSpace(f.CropName)
	switch {
	case cropName == "":
		verr.add("cropName", "obrigatório")
	case domain.IsReservedCropName(cropName):
		verr.add("cropName", "nome reservado")
	}

	checkAmount(verr, "quantity", f.Quantity)
	checkAmount(verr, "targetYield", f.TargetYield)

	unit := strings.TrimSpace(f.Unit)
	if unit == "" {
		unit = domain.DefaultUnit
	}
	if !domain.IsValidUnit(unit) {
		verr.add("unit", "deve ser kg, ton, bushel ou lb")
	}

	planted := checkDate(verr, "plantedDate", f.PlantedDate)
	harvest := checkDate(verr, "harvestDate", f.HarvestDate)
	if planted != nil && harvest != nil && harvest.Before(*planted) {
		verr.add("harvestDate", "não pode ser anterior ao plantio")
	}

	if !verr.empty() {
		return domain.YieldInput{}, verr
	}

	input := domain.YieldInput{
		CropName:    cropName,
		Quantity:    *f.Quantity,
		TargetYield: *f.TargetYield,
		Unit:        unit,
		Season:      strings.TrimSpace(f.Season),
		PlantedDate: strings.TrimSpace(f.PlantedDate),
		HarvestDate: strings.TrimSpace(f.HarvestDate),
		Notes:       strings.TrimSpace(f.Notes),
	}

	if input.Season == "" {
		if season := domain.SeasonOf(input.Record("")); season != domain.UnknownSeason {
			input.Season = season
		}
	}

	return input, nil
}

func checkAmount(verr *ValidationError, field string, value *float64) {
	switch {
	case value == nil:
		verr.add(field, "obrigatório")
	case math.IsNaN(*value) || math.IsInf(*value, 0):
		verr.add(field, "deve ser numérico")
	case *value < 0:
		verr.add(field, "não pode ser negativo")
	}
}

func checkDate(verr *ValidationError, field, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	date, err := utils.ParseDate(raw)
	if err != nil {
		verr.add(field, "formato esperado YYYY-MM-DD")
		return nil
	}
	return date
}

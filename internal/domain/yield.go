// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Unidades aceitas pelo formulário de cadastro de safras
const (
	UnitKilogram = "kg"
	UnitTon      = "ton"
	UnitBushel   = "bushel"
	UnitPound    = "lb"

	DefaultUnit = UnitKilogram
)

var validUnits = map[string]bool{
	UnitKilogram: true,
	UnitTon:      true,
	UnitBushel:   true,
	UnitPound:    true,
}

// IsValidUnit verifica se a unidade é uma das aceitas pelo backend
func IsValidUnit(unit string) bool {
	return validUnits[unit]
}

// YieldRecord representa um registro de colheita de uma cultura em uma estação
type YieldRecord struct {
	ID          string  `json:"id"`
	CropName    string  `json:"cropName"`
	Quantity    float64 `json:"quantity"`
	TargetYield float64 `json:"targetYield"`
	Unit        string  `json:"unit"`
	Season      string  `json:"season"`
	PlantedDate string  `json:"plantedDate"` // Formato YYYY-MM-DD (opcional)
	HarvestDate string  `json:"harvestDate"` // Formato YYYY-MM-DD (opcional)
	Notes       string  `json:"notes"`
}

// YieldInput é o corpo enviado ao backend na criação e edição de registros
type YieldInput struct {
	CropName    string  `json:"cropName"`
	Quantity    float64 `json:"quantity"`
	TargetYield float64 `json:"targetYield"`
	Unit        string  `json:"unit"`
	Season      string  `json:"season"`
	PlantedDate string  `json:"plantedDate"`
	HarvestDate string  `json:"harvestDate"`
	Notes       string  `json:"notes"`
}

// Record monta um YieldRecord a partir do input, usado para pré-visualização
func (in YieldInput) Record(id string) YieldRecord {
	return YieldRecord{
		ID:          id,
		CropName:    in.CropName,
		Quantity:    in.Quantity,
		TargetYield: in.TargetYield,
		Unit:        in.Unit,
		Season:      in.Season,
		PlantedDate: in.PlantedDate,
		HarvestDate: in.HarvestDate,
		Notes:       in.Notes,
	}
}

// YieldHistoryRecord é uma linha retornada por /api/yield-histories
type YieldHistoryRecord struct {
	ID          string  `json:"id"`
	CropName    string  `json:"cropName"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Season      string  `json:"season"`
	HarvestDate string  `json:"harvestDate"`
}

// AsYieldRecord converte a linha de histórico para o formato usado na agregação
func (h YieldHistoryRecord) AsYieldRecord() YieldRecord {
	return YieldRecord{
		ID:          h.ID,
		CropName:    h.CropName,
		Quantity:    h.Quantity,
		Unit:        h.Unit,
		Season:      h.Season,
		HarvestDate: h.HarvestDate,
	}
}

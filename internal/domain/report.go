package domain

import (
	"fmt"
	"time"
)

// ReportKind identifica o conteúdo do relatório exportado
type ReportKind string

const (
	ReportCrops     ReportKind = "crops"
	ReportHistory   ReportKind = "history"
	ReportAnalytics ReportKind = "analytics"
)

// ReportFormat identifica o formato do arquivo exportado
type ReportFormat string

const (
	FormatPDF  ReportFormat = "pdf"
	FormatXLSX ReportFormat = "xlsx"
)

var reportSlugs = map[ReportKind]string{
	ReportCrops:     "crop-management",
	ReportHistory:   "yield-history",
	ReportAnalytics: "yield-analytics",
}

// ParseReportKind valida o tipo de relatório informado
func ParseReportKind(s string) (ReportKind, error) {
	kind := ReportKind(s)
	if _, ok := reportSlugs[kind]; !ok {
		return "", fmt.Errorf("tipo de relatório inválido: %q (aceitos: crops, history, analytics)", s)
	}
	return kind, nil
}

// ParseReportFormat valida o formato informado; vazio equivale a PDF
func ParseReportFormat(s string) (ReportFormat, error) {
	switch ReportFormat(s) {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("formato de relatório inválido: %q (aceitos: pdf, xlsx)", s)
	}
}

// FileName monta o nome do arquivo, ex: crop-management-2024-05-01.pdf
func (k ReportKind) FileName(format ReportFormat, date time.Time) string {
	return fmt.Sprintf("%s-%s.%s", reportSlugs[k], date.Format(time.DateOnly), format)
}

// ContentType retorna o MIME type do formato
func (f ReportFormat) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

// ReportExport é o registro de uma exportação gerada
type ReportExport struct {
	ID        string       `json:"id"`
	Kind      ReportKind   `json:"kind"`
	Format    ReportFormat `json:"format"`
	FileName  string       `json:"file_name"`
	SizeBytes int          `json:"size_bytes"`
	Trigger   string       `json:"trigger"` // "manual" ou "scheduled"
	CreatedAt time.Time    `json:"created_at"`
}

const (
	TriggerManual    = "manual"
	TriggerScheduled = "scheduled"
)

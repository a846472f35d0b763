package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/reporting"
	"github.com/vfg2006/harvest-yield-tracker/pkg/apiErrors"
)

// DownloadReport gera o relatório e devolve o arquivo como anexo
func DownloadReport(exporter reporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := domain.ParseReportKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		format, err := domain.ParseReportFormat(r.URL.Query().Get("format"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		result, err := exporter.Export(r.Context(), kind, format, domain.TriggerManual)
		if err != nil {
			writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Export.FileName))
		w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(result.Content); err != nil {
			requestLogger(r).WithError(err).Warn("Erro ao enviar relatório")
		}
	}
}

// ListReportExports lista as exportações mais recentes (?limit=, padrão 50)
func ListReportExports(exporter reporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var limit uint64
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um número positivo", nil)
				return
			}
			limit = parsed
		}

		exports, err := exporter.ListExports(r.Context(), limit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar exportações", nil)
			requestLogger(r).WithError(err).Error("Erro ao listar exportações")
			return
		}
		writeJSON(w, http.StatusOK, exports)
	}
}

package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/harvest-yield-tracker/pkg/apiErrors"
)

// Tipos de job aceitos em /v1/cron/:type
const (
	CronJobTypeReportExport  = "report-export"
	CronJobTypeSessionVerify = "session-verify"
	CronJobTypeAll           = "all"
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os jobs disponíveis para execução manual
type CronJobServices struct {
	ReportExport  CronJob
	SessionVerify CronJob
}

func (s CronJobServices) byType() map[string]CronJob {
	jobs := make(map[string]CronJob, 2)
	if s.ReportExport != nil {
		jobs[CronJobTypeReportExport] = s.ReportExport
	}
	if s.SessionVerify != nil {
		jobs[CronJobTypeSessionVerify] = s.SessionVerify
	}
	return jobs
}

// RunCronJob dispara manualmente um job; 409 quando ele já está rodando
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.byType()
		started := map[string]bool{}

		switch cronType {
		case CronJobTypeAll:
			for name, job := range jobs {
				started[name] = job.TriggerManualSync()
			}
		default:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: report-export, session-verify, all", nil)
				return
			}
			if !job.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrJobRunning, "Cron job já em execução", nil)
				return
			}
			started[cronType] = true
		}

		requestLogger(r).WithField("cron_type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		for name, job := range services.byType() {
			status[name] = job.GetStatus()
		}
		writeJSON(w, http.StatusOK, status)
	}
}

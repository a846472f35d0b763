package handler

import (
	"net/http"

	"github.com/vfg2006/harvest-yield-tracker/internal/api/handler/router"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/authenticating"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/dashboarding"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/reporting"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/yielding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(store authenticating.SessionStore, tokens authenticating.ClientTokens, guard func(http.Handler) http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodPost,
			Handler: Login(store, tokens),
		},
		{
			Path:    "/v1/auth/register",
			Method:  http.MethodPost,
			Handler: Register(store, tokens),
		},
		{
			Path:        "/v1/auth/logout",
			Method:      http.MethodPost,
			Handler:     Logout(store, tokens),
			Middlewares: []func(http.Handler) http.Handler{guard},
		},
		{
			Path:    "/v1/auth/session",
			Method:  http.MethodGet,
			Handler: GetSession(store, tokens),
		},
	}
}

func Views(viewer dashboarding.Viewer, guard func(http.Handler) http.Handler) []router.Route {
	protected := []func(http.Handler) http.Handler{guard}

	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(viewer),
			Middlewares: protected,
		},
		{
			Path:        "/v1/analytics",
			Method:      http.MethodGet,
			Handler:     GetAnalytics(viewer),
			Middlewares: protected,
		},
		{
			Path:        "/v1/history",
			Method:      http.MethodGet,
			Handler:     GetHistory(viewer),
			Middlewares: protected,
		},
		{
			Path:        "/v1/seasons",
			Method:      http.MethodGet,
			Handler:     GetSeasons(viewer),
			Middlewares: protected,
		},
	}
}

func Yields(manager yielding.Manager, guard func(http.Handler) http.Handler) []router.Route {
	protected := []func(http.Handler) http.Handler{guard}

	return []router.Route{
		{
			Path:        "/v1/yields",
			Method:      http.MethodGet,
			Handler:     ListYields(manager),
			Middlewares: protected,
		},
		{
			Path:        "/v1/yields",
			Method:      http.MethodPost,
			Handler:     CreateYield(manager),
			Middlewares: protected,
		},
		{
			Path:        "/v1/yields/:id",
			Method:      http.MethodGet,
			Handler:     GetYield(manager),
			Middlewares: protected,
		},
		{
			Path:        "/v1/yields/:id",
			Method:      http.MethodPut,
			Handler:     UpdateYield(manager),
			Middlewares: protected,
		},
		{
			Path:        "/v1/yields/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteYield(manager),
			Middlewares: protected,
		},
	}
}

func Reports(exporter reporting.Exporter, guard func(http.Handler) http.Handler) []router.Route {
	protected := []func(http.Handler) http.Handler{guard}

	return []router.Route{
		{
			Path:        "/v1/reports",
			Method:      http.MethodGet,
			Handler:     ListReportExports(exporter),
			Middlewares: protected,
		},
		{
			Path:        "/v1/reports/:kind",
			Method:      http.MethodGet,
			Handler:     DownloadReport(exporter),
			Middlewares: protected,
		},
	}
}

func CronJobs(services CronJobServices, guard func(http.Handler) http.Handler) []router.Route {
	protected := []func(http.Handler) http.Handler{guard}

	return []router.Route{
		{
			Path:        "/v1/cron/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: protected,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: protected,
		},
	}
}

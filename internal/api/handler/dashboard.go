package handler

import (
	"net/http"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/dashboarding"
)

func GetDashboard(viewer dashboarding.Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := viewer.Dashboard(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

// GetAnalytics aceita ?crops=a,b&seasons=x,y&chart=bar|line
func GetAnalytics(viewer dashboarding.Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		selection := domain.ComparisonSelection{
			Crops:   splitParam(query["crops"]),
			Seasons: splitParam(query["seasons"]),
		}

		view, err := viewer.Analytics(r.Context(), domain.ParseChartType(query.Get("chart")), selection)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func GetHistory(viewer dashboarding.Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := viewer.History(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func GetSeasons(viewer dashboarding.Viewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasons, err := viewer.Seasons(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, seasons)
	}
}

package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/yielding"
	"github.com/vfg2006/harvest-yield-tracker/pkg/apiErrors"
)

func ListYields(manager yielding.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, err := manager.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, metrics)
	}
}

func GetYield(manager yielding.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		metric, err := manager.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, metric)
	}
}

func CreateYield(manager yielding.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form yielding.Form
		if err := decodeBody(r, &form); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		metric, err := manager.Create(r.Context(), form)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, metric)
	}
}

func UpdateYield(manager yielding.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var form yielding.Form
		if err := decodeBody(r, &form); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		metric, err := manager.Update(r.Context(), id, form)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, metric)
	}
}

func DeleteYield(manager yielding.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := manager.Delete(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}

		requestLogger(r).WithField("yield_id", id).Info("Registro removido")
		w.WriteHeader(http.StatusNoContent)
	}
}

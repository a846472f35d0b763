package handler

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/harvest-yield-tracker/infrastructure/integrator/yieldapi"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/authenticating"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/reporting"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/yielding"
	"github.com/vfg2006/harvest-yield-tracker/pkg/apiErrors"
	"github.com/vfg2006/harvest-yield-tracker/pkg/log"
	"github.com/vfg2006/harvest-yield-tracker/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Warn("Erro ao escrever resposta")
	}
}

// writeError traduz os erros dos casos de uso para o payload padronizado
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, message, details := classify(err)

	logger := requestLogger(r).WithError(err).WithField("path", r.URL.Path)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error("Erro ao processar requisição")
	} else {
		logger.Warn("Requisição rejeitada")
	}

	apiErrors.WriteError(w, code, message, details)
}

// requestLogger acrescenta o usuário autenticado da requisição, quando houver
func requestLogger(r *http.Request) log.Logger {
	logger := log.ForContext(r.Context())
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		logger = logger.WithField("user_email", user.Email)
	}
	return logger
}

func classify(err error) (string, string, any) {
	var (
		authErr       *authenticating.AuthError
		validationErr *yielding.ValidationError
		apiErr        *yieldapi.APIError
		transportErr  *yieldapi.TransportError
	)

	switch {
	case errors.As(err, &authErr):
		return authErr.Code, authErr.Details, nil

	case errors.As(err, &validationErr):
		return apiErrors.ErrMissingRequiredData, "Dados do registro inválidos", validationErr.Fields

	case errors.Is(err, yielding.ErrMissingID):
		return apiErrors.ErrMissingRequiredData, "ID do registro é obrigatório", nil

	case errors.Is(err, yielding.ErrInvalidID):
		return apiErrors.ErrMissingRequiredData, "ID do registro inválido", nil

	case errors.Is(err, authenticating.ErrExpiredToken):
		return apiErrors.ErrExpiredToken, "Sessão expirada", nil

	case errors.Is(err, authenticating.ErrInvalidToken):
		return apiErrors.ErrInvalidToken, "Sessão inválida", nil

	case errors.Is(err, yieldapi.ErrMissingBaseURL), errors.Is(err, yieldapi.ErrInvalidBaseURL):
		return apiErrors.ErrMissingConfig, "Backend de produtividade não configurado (YIELD_API_BASE_URL)", nil

	case errors.Is(err, reporting.ErrUnsupportedFormat):
		return apiErrors.ErrInvalidRequest, "Formato de relatório não suportado", nil

	case errors.As(err, &apiErr):
		switch {
		case apiErr.IsUnauthorized():
			return apiErrors.ErrInvalidToken, apiErr.Message, nil
		case apiErr.IsNotFound():
			return apiErrors.ErrNotFound, apiErr.Message, nil
		}
		return apiErrors.ErrExternalService, apiErr.Message, map[string]any{
			"status":    apiErr.StatusCode,
			"retryable": yieldapi.IsRetryable(err),
		}

	case errors.As(err, &transportErr):
		return apiErrors.ErrExternalService, "Backend de produtividade indisponível", map[string]any{
			"retryable": true,
		}
	}

	return apiErrors.ErrInternalServer, "Erro interno no servidor", nil
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// splitParam lê listas separadas por vírgula, aceitando o parâmetro repetido
func splitParam(values []string) []string {
	out := []string{}
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

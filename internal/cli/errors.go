package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/harvest-yield-tracker/infrastructure/integrator/yieldapi"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/authenticating"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/yielding"
)

// describe converte o erro na mensagem exibida no terminal
func describe(err error) string {
	var (
		authErr       *authenticating.AuthError
		validationErr *yielding.ValidationError
		apiErr        *yieldapi.APIError
	)

	switch {
	case errors.As(err, &authErr):
		return authErr.Details
	case errors.As(err, &validationErr):
		fields := make([]string, 0, len(validationErr.Fields))
		for field, msg := range validationErr.Fields {
			fields = append(fields, fmt.Sprintf("  %s: %s", field, msg))
		}
		sort.Strings(fields)
		return "formulário inválido:\n" + strings.Join(fields, "\n")
	case errors.Is(err, yieldapi.ErrMissingBaseURL), errors.Is(err, yieldapi.ErrInvalidBaseURL):
		return "configure YIELD_API_BASE_URL com a URL do backend (ex: http://localhost:5000)"
	case errors.As(err, &apiErr):
		msg := fmt.Sprintf("backend respondeu %d: %s", apiErr.StatusCode, apiErr.Message)
		if yieldapi.IsRetryable(err) {
			msg += " (tente novamente)"
		}
		return msg
	case yieldapi.IsRetryable(err):
		return "backend indisponível, tente novamente: " + err.Error()
	}

	return err.Error()
}

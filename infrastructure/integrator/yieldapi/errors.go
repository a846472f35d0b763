package yieldapi

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

var (
	// ErrMissingBaseURL indica que YIELD_API_BASE_URL não foi configurada
	ErrMissingBaseURL = errors.New("yieldapi: YIELD_API_BASE_URL não configurada")
	ErrInvalidBaseURL = errors.New("yieldapi: YIELD_API_BASE_URL inválida")
	ErrDecodeResponse = errors.New("yieldapi: resposta em formato inesperado")
)

// APIError é uma resposta não-2xx do backend
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yieldapi: status %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized indica que o backend rejeitou o token
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func newAPIError(status int, raw []byte) *APIError {
	var body errorBody
	_ = json.Unmarshal(raw, &body)

	message := body.Message
	if message == "" {
		message = body.Error
	}
	if message == "" {
		message = http.StatusText(status)
	}

	return &APIError{StatusCode: status, Message: message}
}

// TransportError é uma falha de rede antes de obter resposta
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("yieldapi: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsRetryable indica falhas de rede/HTTP que o usuário pode repetir manualmente
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == http.StatusTooManyRequests
	}
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// MessageOf extrai a mensagem do backend quando houver, senão o texto do erro
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

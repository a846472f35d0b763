package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro
const (
	// Erros de autenticação
	ErrInvalidCredentials = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken       = "AUTH_006" // Token inválido ou sessão ausente
	ErrExpiredToken       = "AUTH_007" // Token expirado
	ErrUserAlreadyExists  = "AUTH_009" // Usuário já existe
	ErrSessionLoading     = "AUTH_011" // Sessão ainda em verificação

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes ou inválidos
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Recursos
	ErrNotFound = "RES_001" // Recurso não encontrado

	// Configuração
	ErrMissingConfig = "CFG_001" // Configuração obrigatória ausente

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro no backend de produtividade
	ErrJobRunning        = "SRV_005" // Job já em execução
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrUserAlreadyExists:   http.StatusBadRequest,
	ErrSessionLoading:      http.StatusServiceUnavailable,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrNotFound:            http.StatusNotFound,
	ErrMissingConfig:       http.StatusServiceUnavailable,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrJobRunning:          http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return e.Code + ": " + e.Message
}

// StatusFor retorna o status HTTP do código, 500 se desconhecido
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrExpiredToken        = errors.New("token expirado")
	ErrInvalidToken        = errors.New("token inválido")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
)

// Mensagens exibidas ao usuário
const (
	msgAuthenticationFailed = "Authentication failed"
	msgLoginRequired        = "Email and password are required"
	msgRegisterRequired     = "Name, email and password are required"
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro de origem
	Code    string // Código de erro para API
	Details string // Mensagem exibida ao usuário
}

func (e *AuthError) Error() string {
	if e.Details != "" && e.Details != e.Err.Error() {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// IsValidationError indica erro detectado antes de qualquer requisição
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingRequiredData)
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/authenticating"
	"github.com/vfg2006/harvest-yield-tracker/pkg/apiErrors"
	"github.com/vfg2006/harvest-yield-tracker/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// SessionProvider expõe o estado atual da sessão
type SessionProvider interface {
	Session() domain.Session
}

// TokenValidator valida o token de acesso entregue ao cliente no login
type TokenValidator interface {
	ValidateToken(token string) (*domain.ClientClaims, error)
}

// RequireSession exige o token de acesso do cliente e uma sessão autenticada
// do mesmo usuário. O estado do processo sozinho não libera a rota.
func RequireSession(sessions SessionProvider, tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := log.ForContext(r.Context()).WithField("path", r.URL.Path)

			session := sessions.Session()
			if session.State == domain.SessionLoading {
				apiErrors.WriteError(w, apiErrors.ErrSessionLoading, "Sessão ainda sendo verificada", nil)
				return
			}

			tokenString, ok := BearerToken(r)
			if !ok {
				logger.Warn("Tentativa de acesso sem token")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de acesso obrigatório", nil)
				return
			}

			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				logger.WithError(err).Warn("Token de acesso recusado")
				if errors.Is(err, authenticating.ErrExpiredToken) {
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token de acesso expirado", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de acesso inválido", nil)
				return
			}

			if !session.IsAuthenticated() || session.User.ID != claims.UserID {
				logger.WithField("user_id", claims.UserID).Warn("Token sem sessão correspondente")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, *session.User)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extrai o token do header Authorization
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
		return "", false
	}
	return strings.TrimSpace(tokenString), true
}

// UserFromContext retorna o usuário colocado no contexto por RequireSession
func UserFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(ContextKeyUser).(domain.User)
	return user, ok
}

package handler

import (
	"net/http"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/authenticating"
	"github.com/vfg2006/harvest-yield-tracker/pkg/apiErrors"
	"github.com/vfg2006/harvest-yield-tracker/pkg/log"
	"github.com/vfg2006/harvest-yield-tracker/pkg/middleware"
)

func Login(store authenticating.SessionStore, tokens authenticating.ClientTokens) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		session, err := store.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeGrant(w, r, tokens, session, http.StatusOK)
	}
}

func Register(store authenticating.SessionStore, tokens authenticating.ClientTokens) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RegisterRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		session, err := store.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeGrant(w, r, tokens, session, http.StatusCreated)
	}
}

// writeGrant emite o token de acesso do cliente para a sessão recém autenticada
func writeGrant(w http.ResponseWriter, r *http.Request, tokens authenticating.ClientTokens, session domain.Session, status int) {
	if !session.IsAuthenticated() {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Sessão não autenticada após login", nil)
		return
	}

	token, expiresAt, err := tokens.Issue(*session.User)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.ForContext(r.Context()).WithField("user_email", session.User.Email).Info("Token de acesso emitido")

	writeJSON(w, status, domain.AccessGrant{
		Session:     session,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	})
}

// Logout sempre responde 200 para o dono da sessão; a falha ao avisar o
// backend só é registrada em log
func Logout(store authenticating.SessionStore, tokens authenticating.ClientTokens) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := store.Logout(r.Context())
		tokens.Revoke()
		requestLogger(r).Info("Logout concluído")
		writeJSON(w, http.StatusOK, session)
	}
}

// GetSession devolve o estado atual da sessão, inclusive "loading" e "anonymous".
// O usuário só aparece para o cliente que apresenta o token do login atual.
func GetSession(store authenticating.SessionStore, tokens authenticating.ClientTokens) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := store.Session()

		if session.User != nil && !ownsSession(r, tokens, *session.User) {
			session.User = nil
		}

		writeJSON(w, http.StatusOK, session)
	}
}

func ownsSession(r *http.Request, tokens authenticating.ClientTokens, user domain.User) bool {
	token, ok := middleware.BearerToken(r)
	if !ok {
		return false
	}

	claims, err := tokens.ValidateToken(token)
	return err == nil && claims.UserID == user.ID
}

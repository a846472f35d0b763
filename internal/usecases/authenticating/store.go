// Package authenticating mantém a sessão do usuário: credencial persistida,
// login, cadastro, logout e verificação do token junto ao backend.
package authenticating

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/vfg2006/harvest-yield-tracker/infrastructure/integrator/yieldapi"
	"github.com/vfg2006/harvest-yield-tracker/infrastructure/repository"
	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/pkg/apiErrors"
	"github.com/vfg2006/harvest-yield-tracker/pkg/log"
)

//go:generate mockgen -source=store.go -destination=mocks/store.go -package=mocks

// AuthAPI é o subconjunto do cliente do backend usado pela sessão
type AuthAPI interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
	Verify(ctx context.Context, token string) (*domain.VerifyResponse, error)
	Logout(ctx context.Context, token string) error
}

type SessionStore interface {
	Init(ctx context.Context) domain.Session
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Register(ctx context.Context, name, email, password string) (domain.Session, error)
	Logout(ctx context.Context) domain.Session
	Reverify(ctx context.Context) (domain.Session, error)
	Session() domain.Session
	Token() string
	TriggerDashboardRefresh() int
	ClearError()
}

// Store é a sessão única do processo. O estado é protegido por RWMutex porque
// o servidor atende requisições concorrentes.
type Store struct {
	api         AuthAPI
	credentials repository.CredentialRepository
	profile     string
	now         func() time.Time

	mu            sync.RWMutex
	state         domain.SessionState
	user          *domain.User
	token         string
	errMsg        string
	refreshSignal int
}

var _ SessionStore = (*Store)(nil)

func NewStore(api AuthAPI, credentials repository.CredentialRepository, profile string) *Store {
	return &Store{
		api:         api,
		credentials: credentials,
		profile:     profile,
		now:         time.Now,
		state:       domain.SessionLoading,
	}
}

// Init carrega a credencial salva e valida o token. Qualquer falha leva ao
// estado anônimo com a credencial removida.
func (s *Store) Init(ctx context.Context) domain.Session {
	logger := log.ForComponent(ctx, "session").WithField("session_profile", s.profile)

	s.mu.Lock()
	s.state = domain.SessionLoading
	s.mu.Unlock()

	credential, err := s.credentials.Load(ctx, s.profile)
	if err != nil {
		logger.WithError(err).Warn("Erro ao carregar credencial salva")
		return s.becomeAnonymous()
	}
	if credential == nil || credential.Token == "" {
		logger.Debug("Nenhuma credencial salva")
		return s.becomeAnonymous()
	}

	if s.tokenExpired(credential.Token) {
		logger.Info("Token salvo expirado, sessão encerrada")
		s.clearCredential(ctx)
		return s.becomeAnonymous()
	}

	resp, err := s.api.Verify(ctx, credential.Token)
	if err != nil || resp == nil || !resp.Valid {
		if err != nil {
			logger.WithError(err).Warn("Falha ao verificar token salvo")
		} else {
			logger.Info("Token salvo rejeitado pelo backend")
		}
		s.clearCredential(ctx)
		return s.becomeAnonymous()
	}

	user := credential.User
	s.mu.Lock()
	s.state = domain.SessionAuthenticated
	s.user = &user
	s.token = credential.Token
	s.errMsg = ""
	s.mu.Unlock()

	logger.WithField("user_email", user.Email).Info("Sessão restaurada")
	return s.Session()
}

func (s *Store) Login(ctx context.Context, email, password string) (domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return s.fail(NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, msgLoginRequired))
	}

	resp, err := s.api.Login(ctx, domain.LoginRequest{Email: email, Password: password})
	return s.completeAuth(ctx, resp, err)
}

func (s *Store) Register(ctx context.Context, name, email, password string) (domain.Session, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return s.fail(NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, msgRegisterRequired))
	}

	resp, err := s.api.Register(ctx, domain.RegisterRequest{Name: name, Email: email, Password: password})
	return s.completeAuth(ctx, resp, err)
}

func (s *Store) completeAuth(ctx context.Context, resp *domain.AuthResponse, err error) (domain.Session, error) {
	logger := log.ForComponent(ctx, "session")

	if err != nil {
		logger.WithError(err).Warn("Falha na autenticação")
		return s.fail(classifyAuthError(err))
	}
	if resp == nil || resp.Token == "" {
		return s.fail(NewAuthError(ErrInvalidToken, apiErrors.ErrExternalService, msgAuthenticationFailed))
	}

	credential := domain.Credential{
		Profile: s.profile,
		User:    resp.User,
		Token:   resp.Token,
		SavedAt: s.now(),
	}
	if err := s.credentials.Save(ctx, credential); err != nil {
		// A sessão continua válida em memória
		logger.WithError(err).Warn("Não foi possível persistir a credencial")
	}

	user := resp.User
	s.mu.Lock()
	s.state = domain.SessionAuthenticated
	s.user = &user
	s.token = resp.Token
	s.errMsg = ""
	s.mu.Unlock()

	logger.WithField("user_email", user.Email).Info("Usuário autenticado")
	return s.Session(), nil
}

// Logout avisa o backend (melhor esforço) e sempre limpa a sessão local
func (s *Store) Logout(ctx context.Context) domain.Session {
	logger := log.ForComponent(ctx, "session")

	token := s.Token()
	if token != "" {
		if err := s.api.Logout(ctx, token); err != nil {
			logger.WithError(err).Warn("Falha ao notificar logout ao backend")
		}
	}

	s.clearCredential(ctx)

	s.mu.Lock()
	s.refreshSignal = 0
	s.mu.Unlock()

	logger.Info("Sessão encerrada")
	return s.becomeAnonymous()
}

// Reverify confirma junto ao backend que o token da sessão continua válido.
// Token rejeitado encerra a sessão; falha de rede mantém a sessão e retorna o erro.
func (s *Store) Reverify(ctx context.Context) (domain.Session, error) {
	s.mu.RLock()
	token := s.token
	authenticated := s.state == domain.SessionAuthenticated
	s.mu.RUnlock()

	if !authenticated || token == "" {
		return s.Session(), nil
	}

	if s.tokenExpired(token) {
		s.clearCredential(ctx)
		return s.becomeAnonymous(), ErrExpiredToken
	}

	resp, err := s.api.Verify(ctx, token)
	if err != nil {
		var apiErr *yieldapi.APIError
		if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
			s.clearCredential(ctx)
			return s.becomeAnonymous(), ErrInvalidToken
		}
		return s.Session(), errors.Wrap(err, "authenticating: erro ao verificar sessão")
	}

	if resp == nil || !resp.Valid {
		s.clearCredential(ctx)
		return s.becomeAnonymous(), ErrInvalidToken
	}

	return s.Session(), nil
}

// Session retorna uma cópia do estado atual
func (s *Store) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session := domain.Session{
		State:         s.state,
		Error:         s.errMsg,
		RefreshSignal: s.refreshSignal,
	}
	if s.user != nil {
		user := *s.user
		session.User = &user
	}
	return session
}

// Token implementa yieldapi.TokenSource
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// TriggerDashboardRefresh sinaliza que os dados do dashboard mudaram
func (s *Store) TriggerDashboardRefresh() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshSignal++
	return s.refreshSignal
}

func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

func (s *Store) fail(authErr *AuthError) (domain.Session, error) {
	s.mu.Lock()
	s.errMsg = authErr.Details
	if s.state != domain.SessionAuthenticated {
		s.state = domain.SessionAnonymous
	}
	s.mu.Unlock()

	return s.Session(), authErr
}

func (s *Store) becomeAnonymous() domain.Session {
	s.mu.Lock()
	s.state = domain.SessionAnonymous
	s.user = nil
	s.token = ""
	s.errMsg = ""
	s.mu.Unlock()

	return s.Session()
}

func (s *Store) clearCredential(ctx context.Context) {
	if err := s.credentials.Delete(ctx, s.profile); err != nil {
		log.ForComponent(ctx, "session").WithError(err).Warn("Erro ao remover credencial salva")
	}
}

// tokenExpired lê o exp do JWT sem validar a assinatura, que é papel do backend.
// Tokens que não são JWT seguem para a verificação remota.
func (s *Store) tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return !exp.After(s.now())
}

// classifyAuthError traduz a falha do backend para a mensagem exibida:
// mensagem do backend, depois o texto do erro, depois "Authentication failed"
func classifyAuthError(err error) *AuthError {
	message := strings.TrimSpace(yieldapi.MessageOf(err))
	if message == "" {
		message = msgAuthenticationFailed
	}

	if errors.Is(err, yieldapi.ErrMissingBaseURL) || errors.Is(err, yieldapi.ErrInvalidBaseURL) {
		return NewAuthError(err, apiErrors.ErrMissingConfig, message)
	}

	var apiErr *yieldapi.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.IsUnauthorized():
			return NewAuthError(err, apiErrors.ErrInvalidCredentials, message)
		case apiErr.StatusCode == http.StatusConflict:
			return NewAuthError(err, apiErrors.ErrUserAlreadyExists, message)
		case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			return NewAuthError(err, apiErrors.ErrInvalidRequest, message)
		}
	}

	return NewAuthError(err, apiErrors.ErrExternalService, message)
}

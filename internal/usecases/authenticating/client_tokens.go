package authenticating

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/pkg/utils"
)

const (
	DefaultClientTokenTTL = 12 * time.Hour
	generatedSecretLength = 48
)

// ClientTokens emite e valida os tokens de acesso entregues aos clientes do BFF.
// Só o token do login mais recente vale; Revoke invalida todos.
type ClientTokens interface {
	Issue(user domain.User) (string, time.Time, error)
	ValidateToken(token string) (*domain.ClientClaims, error)
	Revoke()
}

type clientTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu        sync.RWMutex
	sessionID string
}

// NewClientTokens cria o emissor. Sem segredo configurado, gera um aleatório:
// os tokens passam a valer só enquanto o processo estiver no ar.
func NewClientTokens(secret string, ttl time.Duration) (ClientTokens, error) {
	if secret == "" {
		generated, err := utils.GenerateSecret(generatedSecretLength)
		if err != nil {
			return nil, errors.Wrap(err, "authenticating: erro ao gerar segredo dos tokens")
		}
		secret = generated
	}
	if ttl <= 0 {
		ttl = DefaultClientTokenTTL
	}

	return &clientTokens{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (t *clientTokens) Issue(user domain.User) (string, time.Time, error) {
	sessionID, err := utils.GenerateID()
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "authenticating: erro ao gerar id da sessão")
	}

	now := t.now()
	expiresAt := now.Add(t.ttl)
	claims := domain.ClientClaims{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "authenticating: erro ao assinar token")
	}

	t.mu.Lock()
	t.sessionID = sessionID
	t.mu.Unlock()

	return signed, expiresAt, nil
}

// ValidateToken confere assinatura, expiração e se o token pertence ao login atual
func (t *clientTokens) ValidateToken(tokenString string) (*domain.ClientClaims, error) {
	claims := &domain.ClientClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	t.mu.RLock()
	current := t.sessionID
	t.mu.RUnlock()

	if current == "" || claims.ID != current {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (t *clientTokens) Revoke() {
	t.mu.Lock()
	t.sessionID = ""
	t.mu.Unlock()
}

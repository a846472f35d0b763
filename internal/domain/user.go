package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é o usuário autenticado retornado pelo backend
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DisplayName retorna o nome do usuário ou o email quando não há nome
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// Credential é a credencial persistida entre execuções (usuário + token)
type Credential struct {
	Profile string    `json:"profile"`
	User    User      `json:"user"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// AuthResponse é a resposta de /api/auth/login e /api/auth/register
type AuthResponse struct {
	User    User   `json:"user"`
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// LoginRequest é o corpo de /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest é o corpo de /api/auth/register
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyResponse é a resposta de /api/auth/verify
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// SessionState é o estado do ciclo de vida da sessão
type SessionState string

const (
	SessionLoading       SessionState = "loading"
	SessionAuthenticated SessionState = "authenticated"
	SessionAnonymous     SessionState = "anonymous"
)

// Session é uma fotografia do estado da sessão exposta às views
type Session struct {
	State         SessionState `json:"state"`
	User          *User        `json:"user,omitempty"`
	Error         string       `json:"error,omitempty"`
	RefreshSignal int          `json:"refreshSignal"`
}

// IsAuthenticated indica se há um usuário autenticado
func (s Session) IsAuthenticated() bool {
	return s.State == SessionAuthenticated && s.User != nil
}

// ClientClaims identificam o cliente HTTP que fez login pelo BFF. O ID
// registrado (jti) amarra o token ao login que o emitiu.
type ClientClaims struct {
	UserID    string `json:"uid"`
	UserName  string `json:"name,omitempty"`
	UserEmail string `json:"email"`
	jwt.RegisteredClaims
}

// AccessGrant é devolvido no login: a sessão e o token que o cliente deve
// enviar em Authorization nas rotas protegidas
type AccessGrant struct {
	Session
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

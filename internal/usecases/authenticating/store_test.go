package authenticating

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/harvest-yield-tracker/infrastructure/integrator/yieldapi"
	apimocks "github.com/vfg2006/harvest-yield-tracker/infrastructure/integrator/yieldapi/mocks"
	"github.com/vfg2006/harvest-yield-tracker/infrastructure/repository/mocks"
	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/pkg/apiErrors"
)

var (
	fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	testUser = domain.User{ID: "u1", Name: "Ana", Email: "ana@farm.io"}
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func newTestStore(ctrl *gomock.Controller) (*Store, *apimocks.MockClient, *mocks.MockCredentialRepository) {
	api := apimocks.NewMockClient(ctrl)
	creds := mocks.NewMockCredentialRepository(ctrl)
	store := NewStore(api, creds, "default")
	store.now = func() time.Time { return fixedNow }
	return store, api, creds
}

func TestStore_Init(t *testing.T) {
	validToken := signedToken(t, fixedNow.Add(time.Hour))
	expiredToken := signedToken(t, fixedNow.Add(-time.Minute))

	tests := []struct {
		name     string
		setup    func(api *apimocks.MockClient, creds *mocks.MockCredentialRepository)
		validate func(t *testing.T, s *Store, session domain.Session)
	}{
		{
			name: "sem credencial salva",
			setup: func(api *apimocks.MockClient, creds *mocks.MockCredentialRepository) {
				creds.EXPECT().Load(gomock.Any(), "default").Return(nil, nil)
			},
			validate: func(t *testing.T, s *Store, session domain.Session) {
				assert.Equal(t, domain.SessionAnonymous, session.State)
				assert.Nil(t, session.User)
			},
		},
		{
			name: "erro ao carregar credencial",
			setup: func(api *apimocks.MockClient, creds *mocks.MockCredentialRepository) {
				creds.EXPECT().Load(gomock.Any(), "default").Return(nil, errors.New("db down"))
			},
			validate: func(t *testing.T, s *Store, session domain.Session) {
				assert.Equal(t, domain.SessionAnonymous, session.State)
			},
		},
		{
			name: "token expirado não chama o backend",
			setup: func(api *apimocks.MockClient, creds *mocks.MockCredentialRepository) {
				creds.EXPECT().Load(gomock.Any(), "default").Return(&domain.Credential{User: testUser, Token: expiredToken}, nil)
				creds.EXPECT().Delete(gomock.Any(), "default").Return(nil)
			},
			validate: func(t *testing.T, s *Store, session domain.Session) {
				assert.Equal(t, domain.SessionAnonymous, session.State)
				assert.Empty(t, s.Token())
			},
		},
		{
			name: "token válido restaura a sessão",
			setup: func(api *apimocks.MockClient, creds *mocks.MockCredentialRepository) {
				creds.EXPECT().Load(gomock.Any(), "default").Return(&domain.Credential{User: testUser, Token: validToken}, nil)
				api.EXPECT().Verify(gomock.Any(), validToken).Return(&domain.VerifyResponse{Valid: true}, nil)
			},
			validate: func(t *testing.T, s *Store, session domain.Session) {
				assert.Equal(t, domain.SessionAuthenticated, session.State)
				require.NotNil(t, session.User)
				assert.Equal(t, testUser, *session.User)
				assert.Equal(t, validToken, s.Token())
			},
		},
		{
			name: "token opaco segue para verificação remota",
			setup: func(api *apimocks.MockClient, creds *mocks.MockCredentialRepository) {
				creds.EXPECT().Load(gomock.Any(), "default").Return(&domain.Credential{User: testUser, Token: "opaque"}, nil)
				api.EXPECT().Verify(gomock.Any(), "opaque").Return(&domain.VerifyResponse{Valid: true}, nil)
			},
			validate: func(t *testing.T, s *Store, session domain.Session) {
				assert.True(t, session.IsAuthenticated())
			},
		},
		{
			name: "backend rejeita o token",
			setup: func(api *apimocks.MockClient, creds *mocks.MockCredentialRepository) {
				creds.EXPECT().Load(gomock.Any(), "default").Return(&domain.Credential{User: testUser, Token: validToken}, nil)
				api.EXPECT().Verify(gomock.Any(), validToken).Return(&domain.VerifyResponse{Valid: false}, nil)
				creds.EXPECT().Delete(gomock.Any(), "default").Return(nil)
			},
			validate: func(t *testing.T, s *Store, session domain.Session) {
				assert.Equal(t, domain.SessionAnonymous, session.State)
			},
		},
		{
			name: "erro na verificação limpa a credencial",
			setup: func(api *apimocks.MockClient, creds *mocks.MockCredentialRepository) {
				creds.EXPECT().Load(gomock.Any(), "default").Return(&domain.Credential{User: testUser, Token: validToken}, nil)
				api.EXPECT().Verify(gomock.Any(), validToken).Return(nil, &yieldapi.TransportError{Method: "GET", Path: "/api/auth/verify", Err: errors.New("connection refused")})
				creds.EXPECT().Delete(gomock.Any(), "default").Return(nil)
			},
			validate: func(t *testing.T, s *Store, session domain.Session) {
				assert.Equal(t, domain.SessionAnonymous, session.State)
				assert.Empty(t, s.Token())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store, api, creds := newTestStore(ctrl)

			assert.Equal(t, domain.SessionLoading, store.Session().State)

			tt.setup(api, creds)
			session := store.Init(context.Background())
			tt.validate(t, store, session)
		})
	}
}

func TestStore_Login(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(api *apimocks.MockClient, creds *mocks.MockCredentialRepository)
		wantCode string
		wantMsg  string
		wantAuth bool
	}{
		{
			name:     "campos obrigatórios validados antes da requisição",
			email:    "  ",
			password: "secret",
			setup:    func(api *apimocks.MockClient, creds *mocks.MockCredentialRepository) {},
			wantCode: apiErrors.ErrMissingRequiredData,
			wantMsg:  msgLoginRequired,
		},
		{
			name:     "sucesso persiste a credencial",
			email:    "ana@farm.io",
			password: "secret",
			setup: func(api *apimocks.MockClient, creds *mocks.MockCredentialRepository) {
				api.EXPECT().
					Login(gomock.Any(), domain.LoginRequest{Email: "ana@farm.io", Password: "secret"}).
					Return(&domain.AuthResponse{User: testUser, Token: "jwt"}, nil)
				creds.EXPECT().Save(gomock.Any(), domain.Credential{
					Profile: "default",
					User:    testUser,
					Token:   "jwt",
					SavedAt: fixedNow,
				}).Return(nil)
			},
			wantAuth: true,
		},
		{
			name:     "falha ao persistir não derruba a sessão",
			email:    "ana@farm.io",
			password: "secret",
			setup: func(api *apimocks.MockClient, creds *mocks.MockCredentialRepository) {
				api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&domain.AuthResponse{User: testUser, Token: "jwt"}, nil)
				creds.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantAuth: true,
		},
		{
			name:     "mensagem do backend",
			email:    "ana@farm.io",
			password: "wrong",
			setup: func(api *apimocks.MockClient, creds *mocks.MockCredentialRepository) {
				api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, &yieldapi.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid email or password"})
			},
			wantCode: apiErrors.ErrInvalidCredentials,
			wantMsg:  "Invalid email or password",
		},
		{
			name:     "sem mensagem do backend usa o texto do erro",
			email:    "ana@farm.io",
			password: "secret",
			setup: func(api *apimocks.MockClient, creds *mocks.MockCredentialRepository) {
				api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))
			},
			wantCode: apiErrors.ErrExternalService,
			wantMsg:  "dial tcp: connection refused",
		},
		{
			name:     "base url ausente",
			email:    "ana@farm.io",
			password: "secret",
			setup: func(api *apimocks.MockClient, creds *mocks.MockCredentialRepository) {
				api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, yieldapi.ErrMissingBaseURL)
			},
			wantCode: apiErrors.ErrMissingConfig,
			wantMsg:  yieldapi.ErrMissingBaseURL.Error(),
		},
		{
			name:     "resposta sem token",
			email:    "ana@farm.io",
			password: "secret",
			setup: func(api *apimocks.MockClient, creds *mocks.MockCredentialRepository) {
				api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&domain.AuthResponse{User: testUser}, nil)
			},
			wantCode: apiErrors.ErrExternalService,
			wantMsg:  msgAuthenticationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store, api, creds := newTestStore(ctrl)
			tt.setup(api, creds)

			session, err := store.Login(context.Background(), tt.email, tt.password)

			if tt.wantAuth {
				require.NoError(t, err)
				assert.True(t, session.IsAuthenticated())
				assert.Equal(t, "jwt", store.Token())
				assert.Empty(t, session.Error)
				return
			}

			require.Error(t, err)
			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.wantCode, authErr.Code)
			assert.Equal(t, tt.wantMsg, session.Error)
			assert.Equal(t, domain.SessionAnonymous, session.State)

			store.ClearError()
			assert.Empty(t, store.Session().Error)
		})
	}
}

func TestStore_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	store, api, creds := newTestStore(ctrl)

	_, err := store.Register(context.Background(), "", "ana@farm.io", "secret")
	assert.True(t, IsValidationError(err))
	assert.Equal(t, msgRegisterRequired, store.Session().Error)

	api.EXPECT().
		Register(gomock.Any(), domain.RegisterRequest{Name: "Ana", Email: "ana@farm.io", Password: "secret"}).
		Return(&domain.AuthResponse{User: testUser, Token: "jwt"}, nil)
	creds.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	session, err := store.Register(context.Background(), "Ana", "ana@farm.io", "secret")
	require.NoError(t, err)
	assert.True(t, session.IsAuthenticated())
}

func TestStore_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	store, api, creds := newTestStore(ctrl)

	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&domain.AuthResponse{User: testUser, Token: "jwt"}, nil)
	creds.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	_, err := store.Login(context.Background(), "ana@farm.io", "secret")
	require.NoError(t, err)

	store.TriggerDashboardRefresh()
	assert.Equal(t, 2, store.TriggerDashboardRefresh())

	// Falha remota não impede a limpeza local
	api.EXPECT().Logout(gomock.Any(), "jwt").Return(errors.New("backend offline"))
	creds.EXPECT().Delete(gomock.Any(), "default").Return(nil)

	session := store.Logout(context.Background())
	assert.Equal(t, domain.SessionAnonymous, session.State)
	assert.Nil(t, session.User)
	assert.Equal(t, 0, session.RefreshSignal)
	assert.Empty(t, store.Token())
}

func TestStore_Reverify(t *testing.T) {
	login := func(t *testing.T, store *Store, api *apimocks.MockClient, creds *mocks.MockCredentialRepository) {
		api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&domain.AuthResponse{User: testUser, Token: "jwt"}, nil)
		creds.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		_, err := store.Login(context.Background(), "ana@farm.io", "secret")
		require.NoError(t, err)
	}

	t.Run("anônimo não chama o backend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store, _, _ := newTestStore(ctrl)

		session, err := store.Reverify(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, domain.SessionLoading, session.State)
	})

	t.Run("token rejeitado encerra a sessão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store, api, creds := newTestStore(ctrl)
		login(t, store, api, creds)

		api.EXPECT().Verify(gomock.Any(), "jwt").Return(nil, &yieldapi.APIError{StatusCode: http.StatusUnauthorized, Message: "expired"})
		creds.EXPECT().Delete(gomock.Any(), "default").Return(nil)

		session, err := store.Reverify(context.Background())
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Equal(t, domain.SessionAnonymous, session.State)
	})

	t.Run("falha de rede mantém a sessão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store, api, creds := newTestStore(ctrl)
		login(t, store, api, creds)

		api.EXPECT().Verify(gomock.Any(), "jwt").Return(nil, &yieldapi.APIError{StatusCode: http.StatusBadGateway, Message: "bad gateway"})

		session, err := store.Reverify(context.Background())
		assert.Error(t, err)
		assert.True(t, session.IsAuthenticated())
	})
}

func TestStore_ConcurrentAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	store, api, creds := newTestStore(ctrl)

	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&domain.AuthResponse{User: testUser, Token: "jwt"}, nil)
	creds.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	_, err := store.Login(context.Background(), "ana@farm.io", "secret")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.TriggerDashboardRefresh()
		}()
		go func() {
			defer wg.Done()
			_ = store.Session()
			_ = store.Token()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Session().RefreshSignal)
}

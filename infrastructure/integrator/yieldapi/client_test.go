package yieldapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/harvest-yield-tracker/internal/config"
	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.HandlerFunc) *YieldClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{YieldAPI: config.YieldAPI{BaseURL: server.URL}}
	return NewClient(cfg, staticToken("tok-123"))
}

func TestYieldClient_MissingBaseURL(t *testing.T) {
	client := NewClient(&config.Config{}, staticToken("tok"))

	calls := []func() error{
		func() error { _, err := client.ListYields(context.Background()); return err },
		func() error { _, err := client.ListHistories(context.Background()); return err },
		func() error {
			_, err := client.Login(context.Background(), domain.LoginRequest{Email: "a", Password: "b"})
			return err
		},
		func() error { return client.DeleteYield(context.Background(), "1") },
	}

	for _, call := range calls {
		assert.ErrorIs(t, call(), ErrMissingBaseURL)
	}
}

func TestYieldClient_InvalidBaseURL(t *testing.T) {
	client := NewClient(&config.Config{YieldAPI: config.YieldAPI{BaseURL: "backend-sem-esquema"}}, nil)

	_, err := client.ListYields(context.Background())
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

func TestYieldClient_ListYields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/yields", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":"1","cropName":"Wheat","quantity":1200,"targetYield":1500,"unit":"kg","season":"Summer 2023"}]`)
	})

	records, err := client.ListYields(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Wheat", records[0].CropName)
	assert.Equal(t, 1500.0, records[0].TargetYield)
}

func TestYieldClient_CreateAndUpdate(t *testing.T) {
	var gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/yields":
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id":"42","cropName":"Corn","quantity":10,"targetYield":20,"unit":"ton"}`)
		case r.Method == http.MethodPut && r.URL.Path == "/api/yields/42":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("rota inesperada %s %s", r.Method, r.URL.Path)
		}
	})

	input := domain.YieldInput{CropName: "Corn", Quantity: 10, TargetYield: 20, Unit: domain.UnitTon}

	created, err := client.CreateYield(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "42", created.ID)
	assert.Contains(t, gotBody, `"cropName":"Corn"`)
	assert.NotContains(t, gotBody, `"id"`)

	updated, err := client.UpdateYield(context.Background(), "42", input)
	require.NoError(t, err)
	assert.Equal(t, "42", updated.ID)
	assert.Equal(t, "Corn", updated.CropName)
}

func TestYieldClient_EscapesID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		path string
	}{
		{name: "barra", id: "a/b", path: "/api/yields/a%2Fb"},
		{name: "ponto", id: ".", path: "/api/yields/%2E"},
		{name: "dois pontos", id: "..", path: "/api/yields/%2E%2E"},
		{name: "ponto no meio", id: "a.b", path: "/api/yields/a.b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotMethod string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.EscapedPath()
				w.WriteHeader(http.StatusNoContent)
			})

			require.NoError(t, client.DeleteYield(context.Background(), tt.id))
			assert.Equal(t, http.MethodDelete, gotMethod)
			assert.Equal(t, tt.path, gotPath)
		})
	}
}

func TestYieldClient_HistoriesAndSeasons(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/yield-histories":
			_, _ = io.WriteString(w, `[{"id":"h1","cropName":"Wheat","quantity":1250,"season":"Spring 2023"}]`)
		case "/api/yield-histories/seasons":
			_, _ = io.WriteString(w, `["Spring 2023","Summer 2023"]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	histories, err := client.ListHistories(context.Background())
	require.NoError(t, err)
	require.Len(t, histories, 1)
	assert.Equal(t, 1250.0, histories[0].Quantity)

	seasons, err := client.ListHistorySeasons(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Spring 2023", "Summer 2023"}, seasons)
}

func TestYieldClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		retryable   bool
	}{
		{name: "mensagem do backend", status: http.StatusBadRequest, body: `{"message":"cropName is required"}`, wantMessage: "cropName is required"},
		{name: "campo error", status: http.StatusUnauthorized, body: `{"error":"invalid token"}`, wantMessage: "invalid token"},
		{name: "corpo vazio usa status", status: http.StatusInternalServerError, body: ``, wantMessage: "Internal Server Error", retryable: true},
		{name: "corpo não json", status: http.StatusBadGateway, body: `<html>`, wantMessage: "Bad Gateway", retryable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := client.ListYields(context.Background())
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantMessage, MessageOf(err))
			assert.Equal(t, tt.retryable, IsRetryable(err))
		})
	}
}

func TestYieldClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(&config.Config{YieldAPI: config.YieldAPI{BaseURL: url}}, nil)

	_, err := client.ListYields(context.Background())
	require.Error(t, err)

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
	assert.True(t, IsRetryable(err))
}

func TestYieldClient_Auth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			assert.Empty(t, r.Header.Get("Authorization"))
			raw, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"email":"ana@farm.io","password":"secret"}`, string(raw))
			_, _ = io.WriteString(w, `{"user":{"id":"u1","name":"Ana","email":"ana@farm.io"},"token":"jwt"}`)
		case "/api/auth/verify":
			assert.Equal(t, "Bearer saved-token", r.Header.Get("Authorization"))
			_, _ = io.WriteString(w, `{"valid":true}`)
		case "/api/auth/logout":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer saved-token", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("rota inesperada %s", r.URL.Path)
		}
	})

	resp, err := client.Login(context.Background(), domain.LoginRequest{Email: "ana@farm.io", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "jwt", resp.Token)
	assert.Equal(t, "Ana", resp.User.Name)

	verify, err := client.Verify(context.Background(), "saved-token")
	require.NoError(t, err)
	assert.True(t, verify.Valid)

	assert.NoError(t, client.Logout(context.Background(), "saved-token"))
}

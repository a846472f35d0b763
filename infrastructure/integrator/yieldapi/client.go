// Package yieldapi é o cliente HTTP do backend de produtividade
// (/api/yields, /api/yield-histories e /api/auth/*).
package yieldapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/harvest-yield-tracker/internal/config"
	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

// TokenSource fornece o bearer token da sessão atual
type TokenSource interface {
	Token() string
}

type Client interface {
	ListYields(ctx context.Context) ([]domain.YieldRecord, error)
	GetYield(ctx context.Context, id string) (*domain.YieldRecord, error)
	CreateYield(ctx context.Context, input domain.YieldInput) (*domain.YieldRecord, error)
	UpdateYield(ctx context.Context, id string, input domain.YieldInput) (*domain.YieldRecord, error)
	DeleteYield(ctx context.Context, id string) error

	ListHistories(ctx context.Context) ([]domain.YieldHistoryRecord, error)
	ListHistorySeasons(ctx context.Context) ([]string, error)

	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error)
	Verify(ctx context.Context, token string) (*domain.VerifyResponse, error)
	Logout(ctx context.Context, token string) error
}

type YieldClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient cria o cliente. tokens pode ser nil enquanto não houver sessão.
func NewClient(cfg *config.Config, tokens TokenSource) *YieldClient {
	timeout := cfg.YieldAPI.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &YieldClient{
		baseURL:    strings.TrimSpace(cfg.YieldAPI.BaseURL),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// SetTokenSource liga o cliente à sessão depois da construção
func (c *YieldClient) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

func (c *YieldClient) sessionToken() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

// endpoint junta os segmentos (já escapados) à URL base
func (c *YieldClient) endpoint(segments ...string) (string, error) {
	if c.baseURL == "" {
		return "", ErrMissingBaseURL
	}

	u, err := url.Parse(c.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", errors.Wrapf(ErrInvalidBaseURL, "%q", c.baseURL)
	}

	return u.JoinPath(segments...).String(), nil
}

// do executa a requisição e decodifica a resposta em out (quando não nil)
func (c *YieldClient) do(ctx context.Context, method string, token string, body any, out any, segments ...string) error {
	endpoint, err := c.endpoint(segments...)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "yieldapi: erro ao serializar o corpo")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, "yieldapi: erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{"method": method, "path": req.URL.Path})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Warn("yieldapi: falha de transporte")
		return &TransportError{Method: method, Path: req.URL.Path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, Path: req.URL.Path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, raw)
		logger.WithField("status_code", resp.StatusCode).Warnf("yieldapi: %s", apiErr.Message)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(ErrDecodeResponse, "%s %s: %v", method, req.URL.Path, err)
	}

	return nil
}

package yieldapi

import (
	"context"
	"net/http"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
)

const authPath = "api/auth"

func (c *YieldClient) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := c.do(ctx, http.MethodPost, "", req, &resp, authPath, "login"); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *YieldClient) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := c.do(ctx, http.MethodPost, "", req, &resp, authPath, "register"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify valida o token informado, que pode ainda não ser o da sessão ativa
func (c *YieldClient) Verify(ctx context.Context, token string) (*domain.VerifyResponse, error) {
	var resp domain.VerifyResponse
	if err := c.do(ctx, http.MethodGet, token, nil, &resp, authPath, "verify"); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *YieldClient) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, token, struct{}{}, nil, authPath, "logout")
}

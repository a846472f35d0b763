// Package app monta o grafo de dependências compartilhado pelo servidor e pela CLI
package app

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vfg2006/harvest-yield-tracker/infrastructure/database/postgres"
	"github.com/vfg2006/harvest-yield-tracker/infrastructure/integrator/yieldapi"
	"github.com/vfg2006/harvest-yield-tracker/infrastructure/repository"
	"github.com/vfg2006/harvest-yield-tracker/internal/config"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/authenticating"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/dashboarding"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/reporting"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/yielding"
	"github.com/vfg2006/harvest-yield-tracker/pkg/log"
)

type App struct {
	Config   *config.Config
	Conn     *postgres.Connection
	Client   *yieldapi.YieldClient
	Sessions *authenticating.Store
	Yields   *yielding.Service
	Views    *dashboarding.Service
	Reports  *reporting.Service
}

// New conecta ao banco, garante o schema e liga o cliente do backend à sessão.
// A sessão começa em "loading"; quem chama decide quando executar Init.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := postgres.EnsureSchema(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "app: erro ao preparar banco")
	}

	log.ForComponent(ctx, "app").Info("Conexão com PostgreSQL estabelecida com sucesso")

	credentialRepo := repository.NewCredentialRepository(conn)
	reportExportRepo := repository.NewReportExportRepository(conn)

	client := yieldapi.NewClient(cfg, nil)
	sessions := authenticating.NewStore(client, credentialRepo, cfg.Session.Profile)
	client.SetTokenSource(sessions)

	yields := yielding.NewService(client, sessions)
	views := dashboarding.NewService(client)
	reports := reporting.NewService(yields, views, reportExportRepo)

	return &App{
		Config:   cfg,
		Conn:     conn,
		Client:   client,
		Sessions: sessions,
		Yields:   yields,
		Views:    views,
		Reports:  reports,
	}, nil
}

func (a *App) Close() error {
	if a.Conn == nil {
		return nil
	}
	return a.Conn.Close()
}

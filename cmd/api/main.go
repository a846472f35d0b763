package main

import (
	"context"
	"os"

	"github.com/vfg2006/harvest-yield-tracker/internal/api"
	"github.com/vfg2006/harvest-yield-tracker/internal/api/handler"
	"github.com/vfg2006/harvest-yield-tracker/internal/app"
	"github.com/vfg2006/harvest-yield-tracker/internal/config"
	"github.com/vfg2006/harvest-yield-tracker/internal/scheduler"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/authenticating"
	"github.com/vfg2006/harvest-yield-tracker/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, os.Stdout)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao inicializar aplicação")
	}
	defer application.Close()

	if cfg.YieldAPI.BaseURL == "" {
		log.L.Warn("YIELD_API_BASE_URL não configurada; as rotas de dados responderão CFG_001")
	}

	// Restaura a sessão salva antes de aceitar requisições
	session := application.Sessions.Init(ctx)
	log.L.WithField("session_state", session.State).Info("Sessão inicializada")

	if cfg.AccessToken.Secret == "" {
		log.L.Warn("ACCESS_TOKEN_SECRET não configurado; tokens de acesso deixam de valer ao reiniciar")
	}

	tokens, err := authenticating.NewClientTokens(cfg.AccessToken.Secret, cfg.AccessToken.TTL)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao preparar tokens de acesso")
	}

	reportExportService := scheduler.NewReportExportService(application.Reports, cfg)
	sessionVerifyService := scheduler.NewSessionVerifyService(application.Sessions, cfg)

	if err := reportExportService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de exportação de relatórios")
	}

	if err := sessionVerifyService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de verificação de sessão")
	}

	server, err := api.New(cfg, api.Services{
		Sessions: application.Sessions,
		Tokens:   tokens,
		Yields:   application.Yields,
		Views:    application.Views,
		Reports:  application.Reports,
		CronJobs: handler.CronJobServices{
			ReportExport:  reportExportService,
			SessionVerify: sessionVerifyService,
		},
	})
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

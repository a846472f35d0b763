package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/vfg2006/harvest-yield-tracker/internal/api/handler"
	"github.com/vfg2006/harvest-yield-tracker/internal/api/handler/router"
	"github.com/vfg2006/harvest-yield-tracker/internal/config"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/authenticating"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/dashboarding"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/reporting"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/yielding"
	"github.com/vfg2006/harvest-yield-tracker/pkg/log"
	"github.com/vfg2006/harvest-yield-tracker/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pelo servidor
type Services struct {
	Sessions authenticating.SessionStore
	Tokens   authenticating.ClientTokens
	Yields   yielding.Manager
	Views    dashboarding.Viewer
	Reports  reporting.Exporter
	CronJobs handler.CronJobServices
}

// NewHandler monta o router com os middlewares globais
func NewHandler(cfg *config.Config, services Services) http.Handler {
	guard := middleware.RequireSession(services.Sessions, services.Tokens)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Sessions, services.Tokens, guard)...),
		router.WithRoutes(handler.Views(services.Views, guard)...),
		router.WithRoutes(handler.Yields(services.Yields, guard)...),
		router.WithRoutes(handler.Reports(services.Reports, guard)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs, guard)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Sessions == nil || services.Tokens == nil || services.Yields == nil || services.Views == nil || services.Reports == nil {
		return nil, fmt.Errorf("api: serviços obrigatórios não informados")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	logger := log.ForComponent(ctx, "server")

	go func() {
		logger.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logger.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logger.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logger.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

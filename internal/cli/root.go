// Package cli implementa o yieldctl, cliente de terminal do rastreador de colheita
package cli

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vfg2006/harvest-yield-tracker/internal/app"
	"github.com/vfg2006/harvest-yield-tracker/internal/config"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/authenticating"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/dashboarding"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/reporting"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/yielding"
	"github.com/vfg2006/harvest-yield-tracker/pkg/log"
)

var ErrNotAuthenticated = errors.New("sessão não autenticada: execute `yieldctl login`")

// Services são os casos de uso usados pelos comandos
type Services struct {
	Sessions authenticating.SessionStore
	Yields   yielding.Manager
	Views    dashboarding.Viewer
	Reports  reporting.Exporter
}

// Factory constrói os serviços; o retorno close libera os recursos
type Factory func(ctx context.Context) (services *Services, close func(), err error)

// DefaultFactory lê a configuração e monta o grafo real da aplicação
func DefaultFactory(ctx context.Context) (*Services, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	services := &Services{
		Sessions: application.Sessions,
		Yields:   application.Yields,
		Views:    application.Views,
		Reports:  application.Reports,
	}
	return services, func() { _ = application.Close() }, nil
}

type runtime struct {
	factory  Factory
	verbose  bool
	services *Services
	close    func()
}

// Run monta a árvore de comandos e executa. Os recursos abertos pelo factory
// são liberados ao final, inclusive quando o comando falha.
func Run(ctx context.Context, factory Factory, configure func(root *cobra.Command)) error {
	rt := &runtime{factory: factory}
	defer rt.release()

	root := rt.rootCommand()
	if configure != nil {
		configure(root)
	}
	return root.ExecuteContext(ctx)
}

func (rt *runtime) release() {
	if rt.close != nil {
		rt.close()
		rt.close = nil
	}
}

func (rt *runtime) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "yieldctl",
		Short:         "Acompanhe a produtividade das culturas da fazenda",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if rt.verbose {
				level = "debug"
			}
			log.Setup(level, cmd.ErrOrStderr())

			services, closeFn, err := rt.factory(cmd.Context())
			if err != nil {
				return errors.Wrap(err, "erro ao inicializar")
			}
			rt.services = services
			rt.close = closeFn

			session := services.Sessions.Init(cmd.Context())
			log.L.WithField("session_state", session.State).Debug("Sessão inicializada")
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&rt.verbose, "verbose", "v", false, "exibe logs detalhados no stderr")

	root.AddCommand(
		rt.loginCmd(),
		rt.registerCmd(),
		rt.logoutCmd(),
		rt.sessionCmd(),
		rt.dashboardCmd(),
		rt.analyticsCmd(),
		rt.historyCmd(),
		rt.seasonsCmd(),
		rt.yieldsCmd(),
		rt.reportCmd(),
	)

	return root
}

// requireSession bloqueia comandos de dados sem usuário autenticado
func (rt *runtime) requireSession() error {
	if !rt.services.Sessions.Session().IsAuthenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

// Execute roda o yieldctl com os argumentos do processo
func Execute(ctx context.Context) int {
	var root *cobra.Command
	err := Run(ctx, DefaultFactory, func(cmd *cobra.Command) { root = cmd })
	if err != nil {
		root.PrintErrln(warnStyle.Render("Erro: " + describe(err)))
		return 1
	}
	return 0
}

package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"

	"github.com/vfg2006/harvest-yield-tracker/internal/config"
	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/pkg/log"
)

const sessionVerifyTimeout = 30 * time.Second

// SessionVerifier revalida a sessão atual junto ao backend
type SessionVerifier interface {
	Reverify(ctx context.Context) (domain.Session, error)
}

// SessionVerifyService revalida periodicamente o token persistido, para que
// um token revogado no backend derrube a sessão sem esperar uma requisição.
type SessionVerifyService struct {
	scheduler    *gocron.Scheduler
	cronSchedule string
	enabled      bool
	verifier     SessionVerifier

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastState       domain.SessionState
	lastError       string
	wg              sync.WaitGroup
}

func NewSessionVerifyService(verifier SessionVerifier, appConfig *config.Config) *SessionVerifyService {
	log.ForComponent(context.Background(), "scheduler").WithFields(log.Fields{
		"session_cron":    appConfig.SessionVerify.CronSchedule,
		"session_enabled": appConfig.SessionVerify.Enabled,
	}).Info("Configuração da verificação agendada de sessão carregada")

	return &SessionVerifyService{
		scheduler:    gocron.NewScheduler(time.Local),
		cronSchedule: appConfig.SessionVerify.CronSchedule,
		enabled:      appConfig.SessionVerify.Enabled,
		verifier:     verifier,
	}
}

func (s *SessionVerifyService) Start(ctx context.Context) error {
	logger := log.ForComponent(ctx, "scheduler")

	if !s.enabled {
		logger.Info("Verificação agendada de sessão desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.launch()
	})
	if err != nil {
		return errors.Wrap(err, "scheduler: erro ao agendar verificação de sessão")
	}

	s.scheduler.StartAsync()
	logger.WithField("session_cron", s.cronSchedule).Info("Agendador de verificação de sessão iniciado")

	go func() {
		<-ctx.Done()
		logger.Info("Parando agendador de verificação de sessão")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma verificação em background. Retorna false se
// já houver uma em andamento.
func (s *SessionVerifyService) TriggerManualSync() bool {
	return s.launch()
}

func (s *SessionVerifyService) launch() bool {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.ForComponent(context.Background(), "scheduler").Info("Verificação de sessão já em andamento, ignorando")
		return false
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), sessionVerifyTimeout)
		defer cancel()

		state, err := s.verify(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.running = false
		s.lastCompletedAt = time.Now()
		s.lastState = state
		s.lastError = ""
		if err != nil {
			s.lastError = err.Error()
		}
	}()

	return true
}

func (s *SessionVerifyService) verify(ctx context.Context) (domain.SessionState, error) {
	logger := log.ForComponent(ctx, "scheduler")

	session, err := s.verifier.Reverify(ctx)
	if err != nil {
		logger.WithError(err).WithField("session_state", session.State).Warn("Verificação de sessão falhou")
		return session.State, err
	}

	logger.WithField("session_state", session.State).Info("Sessão verificada")
	return session.State, nil
}

// GetStatus retorna o status atual do agendador
func (s *SessionVerifyService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"enabled":           s.enabled,
		"cron":              s.cronSchedule,
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_state":        s.lastState,
		"last_error":        s.lastError,
	}
}

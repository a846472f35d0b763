package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"

	"github.com/vfg2006/harvest-yield-tracker/internal/config"
	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/reporting"
	"github.com/vfg2006/harvest-yield-tracker/pkg/log"
)

const reportExportTimeout = 2 * time.Minute

// ReportExportConfig representa a configuração da exportação agendada de relatórios
type ReportExportConfig struct {
	CronSchedule string
	Enabled      bool
	Dir          string
	Format       domain.ReportFormat
	Kinds        []domain.ReportKind
}

// ReportExportService grava periodicamente os relatórios configurados em disco
type ReportExportService struct {
	scheduler *gocron.Scheduler
	config    ReportExportConfig
	exporter  reporting.Exporter

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
	lastFiles       []string
	wg              sync.WaitGroup
}

func NewReportExportService(exporter reporting.Exporter, appConfig *config.Config) *ReportExportService {
	logger := log.ForComponent(context.Background(), "scheduler")

	format, err := domain.ParseReportFormat(appConfig.ReportExport.Format)
	if err != nil {
		logger.WithError(err).Warn("Formato de exportação inválido, usando pdf")
		format = domain.FormatPDF
	}

	kinds := make([]domain.ReportKind, 0, len(appConfig.ReportExport.Kinds))
	for _, raw := range appConfig.ReportExport.Kinds {
		kind, err := domain.ParseReportKind(raw)
		if err != nil {
			logger.WithError(err).Warn("Tipo de relatório ignorado na exportação agendada")
			continue
		}
		kinds = append(kinds, kind)
	}

	exportConfig := ReportExportConfig{
		CronSchedule: appConfig.ReportExport.CronSchedule,
		Enabled:      appConfig.ReportExport.Enabled,
		Dir:          appConfig.ReportExport.Dir,
		Format:       format,
		Kinds:        kinds,
	}

	logger.WithFields(log.Fields{
		"report_cron":    exportConfig.CronSchedule,
		"report_enabled": exportConfig.Enabled,
		"report_dir":     exportConfig.Dir,
		"report_format":  exportConfig.Format,
		"report_kinds":   exportConfig.Kinds,
	}).Info("Configuração da exportação agendada de relatórios carregada")

	return &ReportExportService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    exportConfig,
		exporter:  exporter,
	}
}

// Start agenda a exportação; não faz nada quando desabilitada
func (s *ReportExportService) Start(ctx context.Context) error {
	logger := log.ForComponent(ctx, "scheduler")

	if !s.config.Enabled {
		logger.Info("Exportação agendada de relatórios desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.launch()
	})
	if err != nil {
		return errors.Wrap(err, "scheduler: erro ao agendar exportação de relatórios")
	}

	s.scheduler.StartAsync()
	logger.WithField("report_cron", s.config.CronSchedule).Info("Agendador de exportação de relatórios iniciado")

	go func() {
		<-ctx.Done()
		logger.Info("Parando agendador de exportação de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma exportação em background. Retorna false se
// já houver uma em andamento.
func (s *ReportExportService) TriggerManualSync() bool {
	return s.launch()
}

func (s *ReportExportService) launch() bool {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.ForComponent(context.Background(), "scheduler").Info("Exportação de relatórios já em andamento, ignorando")
		return false
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), reportExportTimeout)
		defer cancel()

		files, err := s.exportAll(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.running = false
		s.lastCompletedAt = time.Now()
		s.lastFiles = files
		s.lastError = ""
		if err != nil {
			s.lastError = err.Error()
		}
	}()

	return true
}

// exportAll gera cada tipo configurado e grava no diretório. Um tipo com
// falha não impede os demais; o último erro é devolvido.
func (s *ReportExportService) exportAll(ctx context.Context) ([]string, error) {
	logger := log.ForComponent(ctx, "scheduler")
	startTime := time.Now()

	if err := os.MkdirAll(s.config.Dir, 0o755); err != nil {
		logger.WithError(err).Error("Erro ao criar diretório de relatórios")
		return nil, errors.Wrapf(err, "scheduler: erro ao criar diretório %s", s.config.Dir)
	}

	var (
		files   []string
		lastErr error
	)
	for _, kind := range s.config.Kinds {
		result, err := s.exporter.Export(ctx, kind, s.config.Format, domain.TriggerScheduled)
		if err != nil {
			logger.WithError(err).WithField("report_kind", kind).Error("Erro ao exportar relatório")
			lastErr = err
			continue
		}

		path := filepath.Join(s.config.Dir, result.Export.FileName)
		if err := os.WriteFile(path, result.Content, 0o644); err != nil {
			logger.WithError(err).WithField("report_file", path).Error("Erro ao gravar relatório")
			lastErr = errors.Wrapf(err, "scheduler: erro ao gravar %s", path)
			continue
		}
		files = append(files, path)
	}

	logger.WithFields(log.Fields{
		"report_files": len(files),
		"duration_ms":  time.Since(startTime).Milliseconds(),
	}).Info("Exportação agendada de relatórios concluída")

	return files, lastErr
}

// GetStatus retorna o status atual do agendador
func (s *ReportExportService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"dir":               s.config.Dir,
		"format":            s.config.Format,
		"kinds":             s.config.Kinds,
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_error":        s.lastError,
		"last_files":        s.lastFiles,
	}
}

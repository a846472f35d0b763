// Package reporting gera os relatórios exportáveis (PDF e planilha) e mantém
// o registro das exportações.
package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/harvest-yield-tracker/infrastructure/repository"
	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/dashboarding"
	"github.com/vfg2006/harvest-yield-tracker/pkg/log"
	"github.com/vfg2006/harvest-yield-tracker/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var ErrUnsupportedFormat = errors.New("reporting: formato sem renderizador")

// MetricsLister lista as culturas já convertidas em métricas
type MetricsLister interface {
	List(ctx context.Context) ([]domain.PerformanceMetric, error)
}

// Result é o arquivo gerado junto com seu registro
type Result struct {
	Export  domain.ReportExport
	Content []byte
}

type Exporter interface {
	Export(ctx context.Context, kind domain.ReportKind, format domain.ReportFormat, trigger string) (*Result, error)
	ListExports(ctx context.Context, limit uint64) ([]domain.ReportExport, error)
}

type Service struct {
	metrics   MetricsLister
	views     dashboarding.Viewer
	exports   repository.ReportExportRepository
	renderers map[domain.ReportFormat]Renderer
	now       func() time.Time
}

var _ Exporter = (*Service)(nil)

func NewService(metrics MetricsLister, views dashboarding.Viewer, exports repository.ReportExportRepository) *Service {
	return &Service{
		metrics: metrics,
		views:   views,
		exports: exports,
		renderers: map[domain.ReportFormat]Renderer{
			domain.FormatPDF:  PDFRenderer{},
			domain.FormatXLSX: XLSXRenderer{},
		},
		now: time.Now,
	}
}

// Export monta o documento do tipo pedido, renderiza e registra a exportação.
// Falha ao registrar não invalida o arquivo gerado.
func (s *Service) Export(ctx context.Context, kind domain.ReportKind, format domain.ReportFormat, trigger string) (*Result, error) {
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "formato %q", format)
	}

	generatedAt := s.now()
	doc, err := s.build(ctx, kind, generatedAt)
	if err != nil {
		return nil, err
	}

	content, err := renderer.Render(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "reporting: erro ao renderizar relatório %s", kind)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "reporting: erro ao gerar id da exportação")
	}

	if trigger == "" {
		trigger = domain.TriggerManual
	}

	export := domain.ReportExport{
		ID:        id,
		Kind:      kind,
		Format:    format,
		FileName:  kind.FileName(format, generatedAt),
		SizeBytes: len(content),
		Trigger:   trigger,
		CreatedAt: generatedAt,
	}

	logger := log.ForComponent(ctx, "reporting").WithFields(log.Fields{
		"report_id":     export.ID,
		"report_kind":   kind,
		"report_format": format,
		"report_file":   export.FileName,
	})

	if s.exports != nil {
		if err := s.exports.Insert(ctx, export); err != nil {
			logger.WithError(err).Error("Erro ao registrar exportação")
		}
	}

	logger.WithField("report_size", export.SizeBytes).Info("Relatório exportado")

	return &Result{Export: export, Content: content}, nil
}

func (s *Service) ListExports(ctx context.Context, limit uint64) ([]domain.ReportExport, error) {
	if s.exports == nil {
		return []domain.ReportExport{}, nil
	}

	exports, err := s.exports.ListRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "reporting: erro ao listar exportações")
	}
	return exports, nil
}

func (s *Service) build(ctx context.Context, kind domain.ReportKind, generatedAt time.Time) (Document, error) {
	switch kind {
	case domain.ReportCrops:
		metrics, err := s.metrics.List(ctx)
		if err != nil {
			return Document{}, errors.Wrap(err, "reporting: erro ao buscar culturas")
		}
		return BuildCropsReport(metrics, generatedAt), nil

	case domain.ReportHistory:
		view, err := s.views.History(ctx)
		if err != nil {
			return Document{}, errors.Wrap(err, "reporting: erro ao buscar histórico")
		}
		return BuildHistoryReport(*view, generatedAt), nil

	case domain.ReportAnalytics:
		view, err := s.views.Dashboard(ctx)
		if err != nil {
			return Document{}, errors.Wrap(err, "reporting: erro ao buscar analytics")
		}
		return BuildAnalyticsReport(*view, generatedAt), nil

	default:
		return Document{}, errors.Errorf("reporting: tipo de relatório inválido %q", kind)
	}
}

// Package dashboarding monta as views (dashboard, analytics e histórico) a
// partir dos dados do backend.
package dashboarding

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/analyzing"
	"github.com/vfg2006/harvest-yield-tracker/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// DataSource é o subconjunto do cliente do backend lido pelas views
type DataSource interface {
	ListYields(ctx context.Context) ([]domain.YieldRecord, error)
	ListHistories(ctx context.Context) ([]domain.YieldHistoryRecord, error)
	ListHistorySeasons(ctx context.Context) ([]string, error)
}

type Viewer interface {
	Dashboard(ctx context.Context) (*domain.DashboardView, error)
	Analytics(ctx context.Context, chart domain.ChartType, selection domain.ComparisonSelection) (*domain.AnalyticsView, error)
	History(ctx context.Context) (*domain.HistoryView, error)
	Seasons(ctx context.Context) ([]string, error)
}

type Service struct {
	source DataSource
}

var _ Viewer = (*Service)(nil)

func NewService(source DataSource) *Service {
	return &Service{source: source}
}

// Dashboard busca safras e histórico em paralelo e monta os cards e gráficos
func (s *Service) Dashboard(ctx context.Context) (*domain.DashboardView, error) {
	var (
		records   []domain.YieldRecord
		histories []domain.YieldHistoryRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		records, err = s.source.ListYields(gctx)
		return errors.Wrap(err, "dashboard: erro ao buscar safras")
	})
	g.Go(func() (err error) {
		histories, err = s.source.ListHistories(gctx)
		return errors.Wrap(err, "dashboard: erro ao buscar histórico")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics := analyzing.ToPerformanceMetrics(records)
	series := analyzing.GroupHistories(histories)
	warnUnrecognized(ctx, series)

	return &domain.DashboardView{
		Summary:        analyzing.Summarize(metrics),
		Metrics:        metrics,
		Distribution:   analyzing.Distribution(records),
		History:        series,
		Forecast:       analyzing.ForecastNextSeason(series),
		ForecastSeries: analyzing.ForecastSeries(series),
		Efficiency:     analyzing.CropEfficiency(metrics),
	}, nil
}

// Analytics devolve as métricas para o gráfico escolhido e o resultado da comparação
func (s *Service) Analytics(ctx context.Context, chart domain.ChartType, selection domain.ComparisonSelection) (*domain.AnalyticsView, error) {
	var (
		records   []domain.YieldRecord
		histories []domain.YieldHistoryRecord
		seasons   []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		records, err = s.source.ListYields(gctx)
		return errors.Wrap(err, "analytics: erro ao buscar safras")
	})
	g.Go(func() (err error) {
		histories, err = s.source.ListHistories(gctx)
		return errors.Wrap(err, "analytics: erro ao buscar histórico")
	})
	// As estações também saem da série; falha aqui não derruba a view
	g.Go(func() error {
		var err error
		seasons, err = s.source.ListHistorySeasons(gctx)
		if err != nil {
			log.ForComponent(ctx, "analytics").WithError(err).Warn("Estações indisponíveis; usando as da série histórica")
			seasons = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics := analyzing.ToPerformanceMetrics(records)
	series := analyzing.GroupHistories(histories)
	warnUnrecognized(ctx, series)

	return &domain.AnalyticsView{
		ChartType:  chart,
		Metrics:    metrics,
		Crops:      cropOptions(metrics, series),
		Seasons:    analyzing.MergeSeasons(seasons, analyzing.SeriesSeasons(series)),
		Comparison: analyzing.Compare(series, metrics, selection),
	}, nil
}

func (s *Service) History(ctx context.Context) (*domain.HistoryView, error) {
	histories, err := s.source.ListHistories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "history: erro ao buscar histórico")
	}

	series := analyzing.GroupHistories(histories)
	warnUnrecognized(ctx, series)

	return &domain.HistoryView{
		Crops:  analyzing.CropNames(series),
		Series: series,
	}, nil
}

func (s *Service) Seasons(ctx context.Context) ([]string, error) {
	seasons, err := s.source.ListHistorySeasons(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "seasons: erro ao buscar estações")
	}
	return analyzing.MergeSeasons(seasons), nil
}

func cropOptions(metrics []domain.PerformanceMetric, series []domain.HistoricalSeriesEntry) []string {
	seen := make(map[string]struct{})
	crops := []string{}
	for _, name := range analyzing.CropNames(series) {
		seen[name] = struct{}{}
		crops = append(crops, name)
	}
	for _, m := range metrics {
		if _, ok := seen[m.CropName]; ok {
			continue
		}
		seen[m.CropName] = struct{}{}
		crops = append(crops, m.CropName)
	}
	sort.Strings(crops)
	return crops
}

// Rótulos fora do padrão fragmentam os grupos; apenas registramos
func warnUnrecognized(ctx context.Context, series []domain.HistoricalSeriesEntry) {
	labels := analyzing.UnrecognizedSeasons(series)
	if len(labels) == 0 {
		return
	}

	log.ForComponent(ctx, "dashboarding").
		WithField("season_labels", labels).
		Warnf("%d estação(ões) com rótulo fora do padrão \"<Estação> <Ano>\"", len(labels))
}

// Package yielding implementa o gerenciamento de registros de colheita
package yielding

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/analyzing"
	"github.com/vfg2006/harvest-yield-tracker/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var (
	ErrMissingID = errors.New("yielding: id do registro é obrigatório")
	ErrInvalidID = errors.New("yielding: id do registro inválido")
)

// checkID recusa ids vazios e segmentos de caminho relativos ("." e ".."),
// que apontariam para a coleção ou para a raiz da API
func checkID(id string) error {
	switch strings.TrimSpace(id) {
	case "":
		return ErrMissingID
	case ".", "..":
		return ErrInvalidID
	}
	return nil
}

// YieldAPI é o subconjunto do cliente do backend usado no CRUD
type YieldAPI interface {
	ListYields(ctx context.Context) ([]domain.YieldRecord, error)
	GetYield(ctx context.Context, id string) (*domain.YieldRecord, error)
	CreateYield(ctx context.Context, input domain.YieldInput) (*domain.YieldRecord, error)
	UpdateYield(ctx context.Context, id string, input domain.YieldInput) (*domain.YieldRecord, error)
	DeleteYield(ctx context.Context, id string) error
}

// RefreshNotifier é avisado quando os dados do dashboard mudam
type RefreshNotifier interface {
	TriggerDashboardRefresh() int
}

type Manager interface {
	List(ctx context.Context) ([]domain.PerformanceMetric, error)
	Get(ctx context.Context, id string) (*domain.PerformanceMetric, error)
	Create(ctx context.Context, form Form) (*domain.PerformanceMetric, error)
	Update(ctx context.Context, id string, form Form) (*domain.PerformanceMetric, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	api      YieldAPI
	notifier RefreshNotifier
}

var _ Manager = (*Service)(nil)

func NewService(api YieldAPI, notifier RefreshNotifier) *Service {
	return &Service{
		api:      api,
		notifier: notifier,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.PerformanceMetric, error) {
	records, err := s.api.ListYields(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "yielding: erro ao listar registros")
	}
	return analyzing.ToPerformanceMetrics(records), nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.PerformanceMetric, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	record, err := s.api.GetYield(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "yielding: erro ao buscar registro %s", id)
	}
	return toMetric(*record), nil
}

func (s *Service) Create(ctx context.Context, form Form) (*domain.PerformanceMetric, error) {
	input, err := form.Validate()
	if err != nil {
		return nil, err
	}

	record, err := s.api.CreateYield(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "yielding: erro ao criar registro")
	}

	s.changed(ctx, "criado", record.ID, record.CropName)
	return toMetric(*record), nil
}

func (s *Service) Update(ctx context.Context, id string, form Form) (*domain.PerformanceMetric, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	input, err := form.Validate()
	if err != nil {
		return nil, err
	}

	record, err := s.api.UpdateYield(ctx, id, input)
	if err != nil {
		return nil, errors.Wrapf(err, "yielding: erro ao atualizar registro %s", id)
	}

	s.changed(ctx, "atualizado", id, record.CropName)
	return toMetric(*record), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}

	if err := s.api.DeleteYield(ctx, id); err != nil {
		return errors.Wrapf(err, "yielding: erro ao remover registro %s", id)
	}

	s.changed(ctx, "removido", id, "")
	return nil
}

func (s *Service) changed(ctx context.Context, action, id, crop string) {
	signal := 0
	if s.notifier != nil {
		signal = s.notifier.TriggerDashboardRefresh()
	}

	log.ForComponent(ctx, "yielding").WithFields(log.Fields{
		"crop_id":        id,
		"crop_name":      crop,
		"session_signal": signal,
	}).Infof("Registro %s", action)
}

func toMetric(record domain.YieldRecord) *domain.PerformanceMetric {
	metric := analyzing.ToPerformanceMetrics([]domain.YieldRecord{record})[0]
	return &metric
}

package yielding

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/harvest-yield-tracker/infrastructure/integrator/yieldapi"
	"github.com/vfg2006/harvest-yield-tracker/infrastructure/integrator/yieldapi/mocks"
	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
)

type countingNotifier struct {
	calls int
}

func (n *countingNotifier) TriggerDashboardRefresh() int {
	n.calls++
	return n.calls
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockClient(ctrl)
	service := NewService(api, &countingNotifier{})

	api.EXPECT().ListYields(gomock.Any()).Return([]domain.YieldRecord{
		{ID: "1", CropName: "Wheat", Quantity: 1200, TargetYield: 1500},
		{ID: "2", CropName: "Oats", Quantity: 10, TargetYield: 0},
	}, nil)

	metrics, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, metrics, 2)
	assert.InDelta(t, 80.0, metrics[0].Progress, 1e-9)
	assert.Equal(t, 0.0, metrics[1].Progress)
}

func TestService_Mutations(t *testing.T) {
	validForm := Form{CropName: "Wheat", Quantity: floatPtr(1300), TargetYield: floatPtr(1000)}

	tests := []struct {
		name        string
		run         func(s *Service) error
		setup       func(api *mocks.MockClient)
		wantErr     func(t *testing.T, err error)
		wantRefresh int
	}{
		{
			name: "create válido",
			run: func(s *Service) error {
				metric, err := s.Create(context.Background(), validForm)
				if err == nil {
					assert.Equal(t, 30, metric.Efficiency)
				}
				return err
			},
			setup: func(api *mocks.MockClient) {
				api.EXPECT().CreateYield(gomock.Any(), domain.YieldInput{CropName: "Wheat", Quantity: 1300, TargetYield: 1000, Unit: "kg"}).
					Return(&domain.YieldRecord{ID: "9", CropName: "Wheat", Quantity: 1300, TargetYield: 1000, Unit: "kg"}, nil)
			},
			wantRefresh: 1,
		},
		{
			name: "create inválido não chama o backend",
			run: func(s *Service) error {
				_, err := s.Create(context.Background(), Form{CropName: "Wheat"})
				return err
			},
			setup: func(api *mocks.MockClient) {},
			wantErr: func(t *testing.T, err error) {
				var verr *ValidationError
				assert.True(t, errors.As(err, &verr))
			},
		},
		{
			name: "update sem id",
			run: func(s *Service) error {
				_, err := s.Update(context.Background(), " ", validForm)
				return err
			},
			setup: func(api *mocks.MockClient) {},
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrMissingID)
			},
		},
		{
			name: "delete com id relativo não chama o backend",
			run: func(s *Service) error {
				return s.Delete(context.Background(), ".")
			},
			setup: func(api *mocks.MockClient) {},
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidID)
			},
		},
		{
			name: "get com id .. não chama o backend",
			run: func(s *Service) error {
				_, err := s.Get(context.Background(), "..")
				return err
			},
			setup: func(api *mocks.MockClient) {},
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidID)
			},
		},
		{
			name: "update com id relativo não chama o backend",
			run: func(s *Service) error {
				_, err := s.Update(context.Background(), " .. ", validForm)
				return err
			},
			setup: func(api *mocks.MockClient) {},
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidID)
			},
		},
		{
			name: "update com erro do backend preserva o APIError",
			run: func(s *Service) error {
				_, err := s.Update(context.Background(), "9", validForm)
				return err
			},
			setup: func(api *mocks.MockClient) {
				api.EXPECT().UpdateYield(gomock.Any(), "9", gomock.Any()).
					Return(nil, &yieldapi.APIError{StatusCode: http.StatusNotFound, Message: "not found"})
			},
			wantErr: func(t *testing.T, err error) {
				var apiErr *yieldapi.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.True(t, apiErr.IsNotFound())
			},
		},
		{
			name: "delete",
			run: func(s *Service) error {
				return s.Delete(context.Background(), "9")
			},
			setup: func(api *mocks.MockClient) {
				api.EXPECT().DeleteYield(gomock.Any(), "9").Return(nil)
			},
			wantRefresh: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mocks.NewMockClient(ctrl)
			notifier := &countingNotifier{}
			service := NewService(api, notifier)
			tt.setup(api)

			err := tt.run(service)
			if tt.wantErr != nil {
				require.Error(t, err)
				tt.wantErr(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantRefresh, notifier.calls)
		})
	}
}

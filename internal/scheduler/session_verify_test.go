package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/harvest-yield-tracker/internal/config"
	"github.com/vfg2006/harvest-yield-tracker/internal/domain"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/authenticating"
	"github.com/vfg2006/harvest-yield-tracker/internal/usecases/authenticating/mocks"
)

func sessionConfig(enabled bool) *config.Config {
	return &config.Config{
		SessionVerify: config.SessionVerify{CronSchedule: "*/30 * * * *", Enabled: enabled},
	}
}

func TestSessionVerifyService_TriggerManualSync(t *testing.T) {
	tests := []struct {
		name      string
		session   domain.Session
		err       error
		wantState domain.SessionState
		wantError string
	}{
		{
			name:      "sessão válida",
			session:   domain.Session{State: domain.SessionAuthenticated, User: &domain.User{ID: "u1"}},
			wantState: domain.SessionAuthenticated,
		},
		{
			name:      "token revogado derruba a sessão",
			session:   domain.Session{State: domain.SessionAnonymous},
			err:       authenticating.ErrInvalidToken,
			wantState: domain.SessionAnonymous,
			wantError: authenticating.ErrInvalidToken.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			ctrl := gomock.NewController(t)
			store := mocks.NewMockSessionStore(ctrl)
			store.EXPECT().Reverify(gomock.Any()).Return(tt.session, tt.err)

			service := NewSessionVerifyService(store, sessionConfig(false))

			assert.True(t, service.TriggerManualSync())
			service.wg.Wait()

			status := service.GetStatus()
			assert.Equal(t, false, status["running"])
			assert.Equal(t, tt.wantState, status["last_state"])
			assert.Equal(t, tt.wantError, status["last_error"])
		})
	}
}

func TestSessionVerifyService_Start(t *testing.T) {
	defer goleak.VerifyNone(t)

	service := NewSessionVerifyService(nil, sessionConfig(false))
	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["enabled"])
}

package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, now time.Time) (*SourceRefreshSyncService, *mocks.MockDashboarder) {
	ctrl := gomock.NewController(t)
	mockDashboard := mocks.NewMockDashboarder(ctrl)

	service := NewSourceRefreshSyncService(mockDashboard, &config.Config{
		SourceRefreshSync: config.SourceRefreshSync{CronSchedule: "0 */6 * * *", Enabled: true},
	})
	service.now = func() time.Time { return now }

	return service, mockDashboard
}

func TestSourceRefreshSyncService_refreshSources(t *testing.T) {
	june := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	january := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		now        time.Time
		setup      func(m *mocks.MockDashboarder)
		wantStatus domain.FetchStatus
		wantError  string
	}{
		{
			name: "Coleta completa do ano corrente",
			now:  june,
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().RefreshSourceData(gomock.Any(), 2024).
					Return(domain.FetchOk(&domain.SourceData{}), nil)
			},
			wantStatus: domain.FetchOK,
		},
		{
			name: "Janeiro também coleta o ano anterior",
			now:  january,
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().RefreshSourceData(gomock.Any(), 2024).
					Return(domain.FetchOk(&domain.SourceData{}), nil)
				m.EXPECT().RefreshSourceData(gomock.Any(), 2023).
					Return(domain.FetchOk(&domain.SourceData{}), nil)
			},
			wantStatus: domain.FetchOK,
		},
		{
			name: "Coleta parcial não é gravada e fica registrada",
			now:  june,
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().RefreshSourceData(gomock.Any(), 2024).
					Return(domain.FetchDegradedWith(&domain.SourceData{}, errors.New("fonte sul fora do ar")), nil)
			},
			wantStatus: domain.FetchDegraded,
			wantError:  "fonte sul fora do ar",
		},
		{
			name: "Erro ao gravar",
			now:  june,
			setup: func(m *mocks.MockDashboarder) {
				m.EXPECT().RefreshSourceData(gomock.Any(), 2024).
					Return(domain.FetchResult{}, errors.New("banco indisponível"))
			},
			wantStatus: domain.FetchEmpty,
			wantError:  "banco indisponível",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockDashboard := newTestService(t, tt.now)
			tt.setup(mockDashboard)

			service.refreshSources(context.Background())

			status := service.GetStatus()
			assert.Equal(t, tt.wantStatus, status["last_sync_status"])
			assert.Equal(t, tt.wantError, status["last_sync_error"])
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, tt.now, status["last_sync_started_at"])
		})
	}
}

func TestSourceRefreshSyncService_ignoraColetaEmAndamento(t *testing.T) {
	service, _ := newTestService(t, time.Now())
	service.syncRunning = true

	// Sem expectativas no mock: qualquer chamada falharia o teste
	service.refreshSources(context.Background())
	service.TriggerManualSync()

	assert.True(t, service.IsRunning())
}

func TestSourceRefreshSyncService_StartDesabilitado(t *testing.T) {
	service, _ := newTestService(t, time.Now())
	service.config.SyncEnabled = false

	assert.NoError(t, service.Start(context.Background()))
}

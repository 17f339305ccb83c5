package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
)

// SourceRefreshSyncConfig representa a configuração do agendador de coleta das APIs de vendas
type SourceRefreshSyncConfig struct {
	CronSchedule string
	Timeout      time.Duration
	SyncEnabled  bool
	RunOnStartup bool
}

// SourceRefreshSyncService agenda a coleta periódica das APIs de vendas e grava o resultado
// completo para servir de fallback quando as APIs estiverem fora do ar
type SourceRefreshSyncService struct {
	scheduler        *gocron.Scheduler
	config           SourceRefreshSyncConfig
	dashboardService dashboard.Dashboarder
	now              func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastStatus          domain.FetchStatus
	lastError           string
}

// NewSourceRefreshSyncService cria o agendador de coleta
func NewSourceRefreshSyncService(dashboardService dashboard.Dashboarder, appConfig *config.Config) *SourceRefreshSyncService {
	syncConfig := SourceRefreshSyncConfig{
		CronSchedule: appConfig.SourceRefreshSync.CronSchedule,
		Timeout:      appConfig.SourceRefreshSync.Timeout,
		SyncEnabled:  appConfig.SourceRefreshSync.Enabled,
		RunOnStartup: appConfig.SourceRefreshSync.RunOnStartup,
	}
	if syncConfig.Timeout <= 0 {
		syncConfig.Timeout = 5 * time.Minute
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"timeout":        syncConfig.Timeout.String(),
		"sync_enabled":   syncConfig.SyncEnabled,
		"run_on_startup": syncConfig.RunOnStartup,
	}).Info("Configuração do agendador de coleta das APIs de vendas carregada")

	return &SourceRefreshSyncService{
		scheduler:        gocron.NewScheduler(time.Local),
		config:           syncConfig,
		dashboardService: dashboardService,
		now:              time.Now,
	}
}

// Start inicia o agendador
func (s *SourceRefreshSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Coleta agendada das APIs de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de coleta das APIs de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshSources(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar coleta das APIs de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	if s.config.RunOnStartup {
		go s.refreshSources(ctx)
	}

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de coleta das APIs de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshSources coleta o ano corrente; em janeiro também o ano anterior, que ainda
// é consultado no fechamento
func (s *SourceRefreshSyncService) refreshSources(parent context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta das APIs de vendas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, cancel := context.WithTimeout(parent, s.config.Timeout)
	defer cancel()

	years := []int{startTime.Year()}
	if startTime.Month() == time.January {
		years = append(years, startTime.Year()-1)
	}

	status := domain.FetchOK
	var lastErr error
	for _, year := range years {
		result, err := s.dashboardService.RefreshSourceData(ctx, year)
		if err != nil {
			logrus.WithError(err).WithField("year", year).Error("Erro ao gravar coleta das APIs de vendas")
			lastErr = err
			status = domain.FetchEmpty
			continue
		}

		logger := logrus.WithFields(logrus.Fields{
			"year":   year,
			"status": result.Status,
		})
		if result.Status != domain.FetchOK {
			if result.Cause != nil {
				logger = logger.WithError(result.Cause)
			}
			logger.Warn("Coleta incompleta, dados gravados anteriormente mantidos")
			lastErr = result.Cause
			if status == domain.FetchOK {
				status = result.Status
			}
			continue
		}
		logger.Info("Coleta das APIs de vendas gravada com sucesso")
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastStatus = status
	s.lastError = ""
	if lastErr != nil {
		s.lastError = lastErr.Error()
	}
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": s.now().Sub(startTime).String(),
		"years":    years,
		"status":   status,
	}).Info("Coleta das APIs de vendas concluída")
}

// TriggerManualSync inicia manualmente uma coleta
func (s *SourceRefreshSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta das APIs de vendas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando coleta manual das APIs de vendas")
	go s.refreshSources(context.Background())
}

// IsRunning informa se há uma coleta em andamento
func (s *SourceRefreshSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *SourceRefreshSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_timeout":           s.config.Timeout.String(),
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_status":       s.lastStatus,
		"last_sync_error":        s.lastError,
	}
}

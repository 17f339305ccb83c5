package dashboard

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"golang.org/x/sync/errgroup"
)

const defaultMaxConcurrency = 4

const (
	noticeDegradedLive  = "Algumas fontes de vendas não responderam. Os números mostram apenas as fontes disponíveis."
	noticeDegradedCache = "As fontes de vendas estão indisponíveis. Os números mostram a última coleta salva."
	noticeEmpty         = "Nenhum dado de vendas disponível no momento. O dashboard mostra apenas pedidos manuais e metas."
)

var _ Dashboarder = (*Service)(nil)

type Service struct {
	integrator     salesapi.SalesDataIntegrator
	processor      *reporting.RecordProcessor
	orders         OrderLister
	targets        PlanProvider
	sourceRepo     repository.SourceDataRepository
	maxConcurrency int
	now            func() time.Time
}

// NewService cria o orquestrador do dashboard
func NewService(
	cfg *config.Config,
	integrator salesapi.SalesDataIntegrator,
	processor *reporting.RecordProcessor,
	orders OrderLister,
	targets PlanProvider,
) *Service {
	maxConcurrency := defaultMaxConcurrency
	if cfg != nil && cfg.SalesAPI.MaxConcurrency > 0 {
		maxConcurrency = cfg.SalesAPI.MaxConcurrency
	}

	return &Service{
		integrator:     integrator,
		processor:      processor,
		orders:         orders,
		targets:        targets,
		maxConcurrency: maxConcurrency,
		now:            time.Now,
	}
}

// WithCache habilita a última coleta salva como reserva quando nenhuma fonte responde
func (s *Service) WithCache(sourceRepo repository.SourceDataRepository) *Service {
	s.sourceRepo = sourceRepo
	return s
}

func (s *Service) GetDashboard(ctx context.Context, userID string, req domain.DashboardRequest) (*domain.DashboardResponse, error) {
	viewMode, err := normalizeViewMode(req.ViewMode)
	if err != nil {
		return nil, err
	}
	if req.Month > 11 {
		return nil, ErrInvalidMonth
	}

	filters := req.Filters
	filters.BusinessUnit = s.processor.NormalizeUnit(filters.BusinessUnit)
	if filters.Year <= 0 {
		filters.Year = s.now().Year()
	}

	// 1. Coleta das fontes com reserva no banco
	result := s.FetchSourceData(ctx, filters.Year)

	// 2. Filtro de unidade e meses disponíveis
	data := reporting.FilterSourceData(result.Data, filters.BusinessUnit)
	months := reporting.AvailableMonths(reporting.MonthsOf(data.Invoices), reporting.MonthsOf(data.SalesOrders))

	periodMonth := req.Month
	if periodMonth < 0 {
		periodMonth = s.latestMonthIndex(months)
	}

	// 3. Snapshot da API para o período
	apiSnapshot := reporting.BuildSnapshot(data, periodMonth, viewMode)

	// 4. Pedidos manuais e metas do usuário
	orders, err := s.orders.ListOrders(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("Erro ao buscar pedidos manuais, seguindo sem eles")
		orders = nil
	}

	plan, err := s.targets.ActivePlan(ctx, userID, filters.BusinessUnit)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("Erro ao buscar metas, seguindo sem comparação")
		plan = nil
	}

	// 5. Conciliação
	snapshot := reporting.Reconcile(&apiSnapshot, orders, filters, periodMonth, viewMode, plan)

	monthKey := domain.MonthKeyAt(periodMonth)

	return &domain.DashboardResponse{
		DashboardSnapshot: snapshot,
		Period: domain.PeriodInfo{
			ViewMode: viewMode,
			Month:    periodMonth + 1,
			MonthKey: monthKey,
			Year:     filters.Year,
		},
		Filters:         filters,
		AvailableMonths: months,
		Status:          result.Status,
		Notice:          notice(result),
		GeneratedAt:     s.now(),
	}, nil
}

func (s *Service) GetAvailableMonths(ctx context.Context, year int) (*domain.AvailableMonths, error) {
	if year <= 0 {
		year = s.now().Year()
	}

	result := s.FetchSourceData(ctx, year)

	var invoices, salesOrders []string
	if result.Data != nil {
		invoices = reporting.MonthsOf(result.Data.Invoices)
		salesOrders = reporting.MonthsOf(result.Data.SalesOrders)
	}
	months := reporting.AvailableMonths(invoices, salesOrders)

	return &domain.AvailableMonths{
		Months:      months,
		LatestMonth: reporting.LatestMonth(months),
		Status:      result.Status,
	}, nil
}

// RefreshSourceData coleta todas as fontes e grava o resultado. Coletas parciais não
// sobrescrevem a última coleta completa.
func (s *Service) RefreshSourceData(ctx context.Context, year int) (domain.FetchResult, error) {
	if year <= 0 {
		year = s.now().Year()
	}

	result := s.fetchLive(ctx, year)

	logger := logrus.WithFields(logrus.Fields{
		"year":   year,
		"status": result.Status,
	})

	if result.Status != domain.FetchOK {
		logger.WithError(result.Cause).Warn("Coleta incompleta, última coleta salva mantida")
		return result, nil
	}

	if s.sourceRepo == nil {
		logger.Debug("Coleta concluída sem armazenamento configurado")
		return result, nil
	}

	entry := &domain.SourceDataEntry{
		Year: year,
		Data: result.Data,
	}
	if err := s.sourceRepo.SaveOrUpdate(ctx, entry); err != nil {
		return result, errors.Wrap(err, "erro ao gravar coleta das fontes")
	}

	logger.WithFields(logrus.Fields{
		"invoices":     len(result.Data.Invoices),
		"sales_orders": len(result.Data.SalesOrders),
	}).Info("Coleta das fontes gravada")

	return result, nil
}

// FetchSourceData busca as fontes ao vivo e recorre à última coleta salva quando todas falham
func (s *Service) FetchSourceData(ctx context.Context, year int) domain.FetchResult {
	result := s.fetchLive(ctx, year)
	if result.Status != domain.FetchEmpty {
		return result
	}

	return s.fallback(ctx, year, result.Cause)
}

// fetchLive consulta cada fonte em paralelo. Fontes com erro são descartadas.
func (s *Service) fetchLive(ctx context.Context, year int) domain.FetchResult {
	sources := s.integrator.Sources()
	if len(sources) == 0 {
		return domain.FetchEmptyWith(ErrNoSourcesConfigured)
	}

	collected := make([]*domain.SourceData, len(sources))
	failures := make([]error, len(sources))

	var group errgroup.Group
	group.SetLimit(s.maxConcurrency)

	for i, source := range sources {
		group.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					failures[i] = &SourceError{Source: source, Err: fmt.Errorf("panic: %v", r)}
				}
			}()

			payload, err := s.integrator.GetSalesData(ctx, source, year)
			if err != nil {
				failures[i] = &SourceError{Source: source, Err: err}
				return nil
			}

			if payload == nil {
				payload = &domain.RawPayload{}
			}

			data := s.processor.Process(*payload)
			data.Sources = []string{source}
			collected[i] = data

			return nil
		})
	}

	_ = group.Wait()

	merged := &domain.SourceData{}
	for i, data := range collected {
		if data == nil {
			logrus.WithError(failures[i]).WithField("source", sources[i]).Warn("Fonte de vendas descartada da coleta")
			continue
		}
		merged.Invoices = append(merged.Invoices, data.Invoices...)
		merged.SalesOrders = append(merged.SalesOrders, data.SalesOrders...)
		merged.Sources = append(merged.Sources, data.Sources...)
	}

	cause := stderrors.Join(failures...)

	switch {
	case len(merged.Sources) == 0:
		return domain.FetchEmptyWith(stderrors.Join(ErrAllSourcesFailed, cause))
	case cause != nil:
		return domain.FetchDegradedWith(merged, cause)
	default:
		return domain.FetchOk(merged)
	}
}

func (s *Service) fallback(ctx context.Context, year int, cause error) domain.FetchResult {
	if s.sourceRepo == nil {
		return domain.FetchEmptyWith(cause)
	}

	entry, err := s.sourceRepo.GetByYear(ctx, year)
	if err != nil {
		logrus.WithError(err).WithField("year", year).Error("Erro ao buscar a última coleta salva")
		return domain.FetchEmptyWith(stderrors.Join(cause, err))
	}

	if entry == nil || entry.Data.IsEmpty() {
		return domain.FetchEmptyWith(stderrors.Join(cause, ErrNoSourceData))
	}

	logrus.WithFields(logrus.Fields{
		"year":       year,
		"updated_at": entry.UpdatedAt,
	}).Warn("Fontes indisponíveis, usando a última coleta salva")

	result := domain.FetchDegradedWith(entry.Data, cause)
	result.FetchedAt = entry.UpdatedAt

	return result
}

// latestMonthIndex usa o último mês com dados ou o mês corrente quando não há dados
func (s *Service) latestMonthIndex(months []string) int {
	if order := domain.MonthOrder(reporting.LatestMonth(months)); order > 0 {
		return order - 1
	}

	return int(s.now().Month()) - 1
}

func normalizeViewMode(viewMode domain.ViewMode) (domain.ViewMode, error) {
	switch viewMode {
	case "":
		return domain.ViewMonthly, nil
	case domain.ViewMonthly, domain.ViewQTD, domain.ViewYTD:
		return viewMode, nil
	default:
		return "", errors.Wrapf(ErrInvalidViewMode, "%q", viewMode)
	}
}

func notice(result domain.FetchResult) string {
	switch result.Status {
	case domain.FetchEmpty:
		return noticeEmpty
	case domain.FetchDegraded:
		if stderrors.Is(result.Cause, ErrAllSourcesFailed) || stderrors.Is(result.Cause, ErrNoSourcesConfigured) {
			return noticeDegradedCache
		}
		return noticeDegradedLive
	default:
		return ""
	}
}

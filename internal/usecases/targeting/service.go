package targeting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var (
	ErrInvalidInputMethod  = errors.New("método de entrada de metas inválido")
	ErrInvalidRollover     = errors.New("estratégia de rollover inválida")
	ErrInvalidDistribution = errors.New("método de distribuição inválido")
	ErrNegativeTarget      = errors.New("metas não podem ser negativas")
	ErrUserIDRequired      = errors.New("usuário obrigatório")
)

// Targeter gerencia a configuração de metas de cada usuário
type Targeter interface {
	Load(ctx context.Context, userID string) (*domain.EnhancedTargets, error)
	Save(ctx context.Context, userID string, targets *domain.EnhancedTargets) (*domain.EnhancedTargets, error)
	ActivePlan(ctx context.Context, userID string, businessUnit string) (*domain.TargetPlan, error)
	Summary(ctx context.Context, userID string, businessUnit string, currentMonth int) (*domain.TargetSummary, error)
	DistributePreview(req domain.DistributeRequest) domain.MonthlyTargets
}

// UnitNormalizer traduz chaves de unidade antigas para as canônicas
type UnitNormalizer interface {
	MapFold(raw string) string
}

var _ Targeter = (*Service)(nil)

type Service struct {
	repo       repository.TargetRepository
	normalizer UnitNormalizer
}

func NewService(repo repository.TargetRepository, normalizer UnitNormalizer) *Service {
	return &Service{
		repo:       repo,
		normalizer: normalizer,
	}
}

// DefaultTargets é a configuração de quem ainda não salvou metas
func DefaultTargets() *domain.EnhancedTargets {
	return &domain.EnhancedTargets{
		InputMethod:      domain.InputMethodMonthly,
		RolloverStrategy: domain.RolloverNone,
		AnnualTargets:    domain.AnnualTargets{Distribution: domain.DistributionEqual},
		GlobalTargets:    true,
	}
}

// Load busca a configuração salva. Chaves de unidade antigas são migradas e a configuração migrada é gravada.
func (s *Service) Load(ctx context.Context, userID string) (*domain.EnhancedTargets, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}

	targets, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar metas")
	}
	if targets == nil {
		return DefaultTargets(), nil
	}

	normalize(targets)

	if s.migrate(targets) {
		logrus.WithField("user_id", userID).Info("Metas com unidades antigas migradas para as unidades canônicas")

		if err := s.repo.Save(ctx, userID, targets); err != nil {
			logrus.WithError(err).WithField("user_id", userID).Warn("Erro ao gravar metas migradas")
		}
	}

	return targets, nil
}

// Save valida e grava a configuração. Com entrada anual as metas mensais são recalculadas.
func (s *Service) Save(ctx context.Context, userID string, targets *domain.EnhancedTargets) (*domain.EnhancedTargets, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	if targets == nil {
		return nil, errors.Wrap(ErrInvalidInputMethod, "configuração ausente")
	}

	normalize(targets)

	if err := validateTargets(targets); err != nil {
		return nil, err
	}

	s.migrate(targets)

	if targets.InputMethod == domain.InputMethodAnnual {
		targets.MonthlyTargets = DistributeAnnual(targets.AnnualTargets)
		for unit, set := range targets.BusinessUnitTargets {
			set.MonthlyTargets = DistributeAnnual(set.AnnualTargets)
			targets.BusinessUnitTargets[unit] = set
		}
	}

	if err := s.repo.Save(ctx, userID, targets); err != nil {
		return nil, errors.Wrap(err, "erro ao gravar metas")
	}

	return targets, nil
}

// ActivePlan seleciona o conjunto de metas em vigor para o filtro de unidade do dashboard
func (s *Service) ActivePlan(ctx context.Context, userID string, businessUnit string) (*domain.TargetPlan, error) {
	targets, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	set := ActiveSet(targets, businessUnit)

	return &domain.TargetPlan{
		Monthly:  set.MonthlyTargets,
		Rollover: targets.RolloverStrategy,
	}, nil
}

// Summary soma as metas em vigor por trimestre, no acumulado do ano e no ano todo
func (s *Service) Summary(ctx context.Context, userID string, businessUnit string, currentMonth int) (*domain.TargetSummary, error) {
	plan, err := s.ActivePlan(ctx, userID, businessUnit)
	if err != nil {
		return nil, err
	}

	summary := &domain.TargetSummary{
		Month:    currentMonth,
		YTD:      YTDTarget(plan.Monthly, currentMonth),
		Annual:   RangeTarget(plan.Monthly, 0, 11),
		Monthly:  plan.Monthly,
		Rollover: plan.Rollover,
	}
	for q := 1; q <= 4; q++ {
		summary.Quarters[q-1] = QuarterlyTarget(plan.Monthly, q)
	}

	return summary, nil
}

// DistributePreview calcula a distribuição sem gravar nada
func (s *Service) DistributePreview(req domain.DistributeRequest) domain.MonthlyTargets {
	return Distribute(req.Sales, req.GP, req.Distribution, req.Weights)
}

// ActiveSet escolhe entre as metas globais e as da unidade.
// Com metas por unidade vale o filtro do dashboard; com "all" vale a unidade selecionada na configuração.
func ActiveSet(targets *domain.EnhancedTargets, businessUnit string) domain.TargetSet {
	global := domain.TargetSet{
		MonthlyTargets: targets.MonthlyTargets,
		AnnualTargets:  targets.AnnualTargets,
	}
	if targets.GlobalTargets {
		return global
	}

	unit := businessUnit
	if unit == "" || unit == domain.FilterAll {
		unit = targets.SelectedBusinessUnit
	}

	if set, ok := targets.BusinessUnitTargets[unit]; ok {
		return set
	}

	return domain.TargetSet{}
}

// migrate renomeia chaves de unidade antigas. Retorna true quando algo mudou.
func (s *Service) migrate(targets *domain.EnhancedTargets) bool {
	if s.normalizer == nil {
		return false
	}

	changed := false

	if targets.SelectedBusinessUnit != "" {
		if canonical := s.normalizer.MapFold(targets.SelectedBusinessUnit); canonical != targets.SelectedBusinessUnit {
			targets.SelectedBusinessUnit = canonical
			changed = true
		}
	}

	if len(targets.BusinessUnitTargets) == 0 {
		return changed
	}

	migrated := make(map[string]domain.TargetSet, len(targets.BusinessUnitTargets))
	for unit, set := range targets.BusinessUnitTargets {
		canonical := s.normalizer.MapFold(unit)
		if canonical != unit {
			changed = true
		}
		// Quando a chave antiga e a nova coexistem, a canônica prevalece
		if _, exists := migrated[canonical]; exists && canonical != unit {
			continue
		}
		migrated[canonical] = set
	}
	targets.BusinessUnitTargets = migrated

	return changed
}

// normalize completa campos vazios vindos de configurações antigas
func normalize(targets *domain.EnhancedTargets) {
	if targets.InputMethod == "" {
		targets.InputMethod = domain.InputMethodMonthly
	}
	if targets.RolloverStrategy == "" {
		targets.RolloverStrategy = domain.RolloverNone
	}
	if targets.AnnualTargets.Distribution == "" {
		targets.AnnualTargets.Distribution = domain.DistributionEqual
	}
}

func validateTargets(targets *domain.EnhancedTargets) error {
	switch targets.InputMethod {
	case domain.InputMethodMonthly, domain.InputMethodAnnual:
	default:
		return errors.Wrapf(ErrInvalidInputMethod, "%q", targets.InputMethod)
	}

	switch targets.RolloverStrategy {
	case domain.RolloverNone, domain.RolloverCumulative, domain.RolloverQuarterly, domain.RolloverRedistribute:
	default:
		return errors.Wrapf(ErrInvalidRollover, "%q", targets.RolloverStrategy)
	}

	sets := []domain.TargetSet{{MonthlyTargets: targets.MonthlyTargets, AnnualTargets: targets.AnnualTargets}}
	for _, set := range targets.BusinessUnitTargets {
		sets = append(sets, set)
	}

	for _, set := range sets {
		switch set.AnnualTargets.Distribution {
		case "", domain.DistributionEqual, domain.DistributionWeighted, domain.DistributionCustom:
		default:
			return errors.Wrapf(ErrInvalidDistribution, "%q", set.AnnualTargets.Distribution)
		}

		if set.AnnualTargets.Sales < 0 || set.AnnualTargets.GP < 0 {
			return ErrNegativeTarget
		}
		for i := range set.MonthlyTargets.Sales {
			if set.MonthlyTargets.Sales[i] < 0 || set.MonthlyTargets.GP[i] < 0 {
				return ErrNegativeTarget
			}
		}
	}

	return nil
}

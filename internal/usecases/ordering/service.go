package ordering

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/formula"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// ManualOrderService gerencia os pedidos lançados manualmente
type ManualOrderService interface {
	CreateOrder(ctx context.Context, userID string, req domain.CreateManualOrderRequest) (*domain.ManualOrder, error)
	ListOrders(ctx context.Context, userID string) ([]domain.ManualOrder, error)
	DeleteOrder(ctx context.Context, userID, id string) error
}

// UnitNormalizer normaliza o rótulo de unidade de negócio informado no formulário
type UnitNormalizer interface {
	MapFold(raw string) string
}

var _ ManualOrderService = (*Service)(nil)

type Service struct {
	repo       repository.ManualOrderRepository
	cache      cache.ManualOrderCache
	normalizer UnitNormalizer
	validate   *validator.Validate
	now        func() time.Time
}

// NewService cria o serviço com o postgres como armazenamento principal
func NewService(repo repository.ManualOrderRepository, normalizer UnitNormalizer) *Service {
	return &Service{
		repo:       repo,
		normalizer: normalizer,
		validate:   newValidator(),
		now:        time.Now,
	}
}

// WithCache habilita o cache reserva usado quando o postgres falha
func (s *Service) WithCache(orderCache cache.ManualOrderCache) *Service {
	s.cache = orderCache
	return s
}

// CreateOrder valida o formulário, calcula o lucro bruto e grava o pedido.
// Se o postgres falhar o pedido fica pendente no cache até a próxima leitura com o banco no ar.
func (s *Service) CreateOrder(ctx context.Context, userID string, req domain.CreateManualOrderRequest) (*domain.ManualOrder, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}

	// 1. Validação do formulário, sem espaços nas pontas dos textos
	req = trimRequest(req)
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, toValidationError(err)
	}

	orderDate, err := time.Parse(time.DateOnly, req.OrderDate)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"order_date": "datetime"}}
	}

	// 2. Montagem do pedido com o lucro bruto derivado
	unit := req.BusinessUnit
	if unit == "" {
		unit = req.ProductGroup
	}
	if s.normalizer != nil {
		unit = s.normalizer.MapFold(unit)
	}

	grossProfit, err := formula.Evaluate(formula.GrossProfit, map[string]float64{
		formula.VarOrderValue:  req.OrderValue,
		formula.VarGrossMargin: req.GrossMargin,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular lucro bruto")
	}

	id, err := utils.GenerateOrderID()
	if err != nil {
		return nil, errors.Wrap(ErrGenerateID, err.Error())
	}

	order := &domain.ManualOrder{
		ID:           id,
		UserID:       userID,
		OrderDate:    orderDate,
		CustomerName: req.CustomerName,
		BusinessUnit: unit,
		OrderValue:   req.OrderValue,
		GrossMargin:  req.GrossMargin,
		GrossProfit:  grossProfit,
		Salesperson:  req.Salesperson,
		CreatedAt:    s.now().UTC(),
	}

	// 3. Gravação no postgres, com o cache como reserva
	if err := s.repo.Create(ctx, order); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("Erro ao gravar pedido manual no banco, usando cache")

		if s.cache == nil {
			return nil, errors.Wrap(ErrStorageUnavailable, err.Error())
		}
		if cacheErr := s.cache.AddPending(ctx, userID, *order); cacheErr != nil {
			logrus.WithError(cacheErr).WithField("user_id", userID).Error("Erro ao gravar pedido manual pendente no cache")
			return nil, errors.Wrap(ErrStorageUnavailable, cacheErr.Error())
		}
		if cacheErr := s.cache.Append(ctx, userID, *order); cacheErr != nil {
			logrus.WithError(cacheErr).WithField("user_id", userID).Warn("Erro ao atualizar cache de pedidos manuais")
		}

		return order, nil
	}

	if s.cache != nil {
		if err := s.cache.Append(ctx, userID, *order); err != nil {
			logrus.WithError(err).WithField("user_id", userID).Warn("Erro ao atualizar cache de pedidos manuais")
		}
	}

	return order, nil
}

// ListOrders lê do postgres e atualiza o cache; em caso de falha serve o cache
func (s *Service) ListOrders(ctx context.Context, userID string) ([]domain.ManualOrder, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}

	orders, err := s.repo.ListByUserID(ctx, userID)
	if err == nil {
		if s.cache != nil {
			orders = s.flushPending(ctx, userID, orders)
			if cacheErr := s.cache.Replace(ctx, userID, orders); cacheErr != nil {
				logrus.WithError(cacheErr).WithField("user_id", userID).Warn("Erro ao atualizar cache de pedidos manuais")
			}
		}
		return orders, nil
	}

	logrus.WithError(err).WithField("user_id", userID).Warn("Erro ao buscar pedidos manuais no banco, usando cache")

	if s.cache == nil {
		return nil, errors.Wrap(ErrStorageUnavailable, err.Error())
	}

	cached, cacheErr := s.cache.List(ctx, userID)
	if cacheErr != nil {
		logrus.WithError(cacheErr).WithField("user_id", userID).Error("Erro ao buscar pedidos manuais no cache")
		return nil, errors.Wrap(ErrStorageUnavailable, cacheErr.Error())
	}
	if cached == nil {
		cached = []domain.ManualOrder{}
	}

	return cached, nil
}

// flushPending grava no postgres os pedidos aceitos enquanto o banco estava fora.
// Um pedido só deixa de ser pendente depois que a gravação funciona; até lá continua na listagem.
func (s *Service) flushPending(ctx context.Context, userID string, orders []domain.ManualOrder) []domain.ManualOrder {
	pending, err := s.cache.ListPending(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("Erro ao buscar pedidos manuais pendentes no cache")
		return orders
	}

	stored := make(map[string]bool, len(orders))
	for _, order := range orders {
		stored[order.ID] = true
	}

	for _, order := range pending {
		fields := logrus.Fields{"user_id": userID, "order_id": order.ID}

		if !stored[order.ID] {
			if err := s.repo.Create(ctx, &order); err != nil {
				logrus.WithError(err).WithFields(fields).Warn("Erro ao gravar pedido manual pendente no banco")
				orders = append(orders, order)
				continue
			}
			orders = append(orders, order)
		}

		if _, err := s.cache.RemovePending(ctx, userID, order.ID); err != nil {
			logrus.WithError(err).WithFields(fields).Warn("Erro ao remover pedido manual pendente do cache")
		}
	}

	return orders
}

// DeleteOrder remove o pedido do postgres e do cache
func (s *Service) DeleteOrder(ctx context.Context, userID, id string) error {
	if userID == "" {
		return ErrUserIDRequired
	}

	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"user_id": userID, "order_id": id}).Warn("Erro ao remover pedido manual do banco")
		if s.cache == nil {
			return errors.Wrap(ErrStorageUnavailable, err.Error())
		}
	}

	cachedDeleted := false
	if s.cache != nil {
		removed, cacheErr := s.cache.Remove(ctx, userID, id)
		if cacheErr != nil {
			logrus.WithError(cacheErr).WithFields(logrus.Fields{"user_id": userID, "order_id": id}).Warn("Erro ao remover pedido manual do cache")
			if err != nil {
				return errors.Wrap(ErrStorageUnavailable, cacheErr.Error())
			}
		}
		cachedDeleted = removed

		pendingRemoved, pendingErr := s.cache.RemovePending(ctx, userID, id)
		if pendingErr != nil {
			logrus.WithError(pendingErr).WithFields(logrus.Fields{"user_id": userID, "order_id": id}).Warn("Erro ao remover pedido manual pendente do cache")
		}
		cachedDeleted = cachedDeleted || pendingRemoved
	}

	if !deleted && !cachedDeleted {
		return ErrManualOrderNotFound
	}

	return nil
}

func trimRequest(req domain.CreateManualOrderRequest) domain.CreateManualOrderRequest {
	req.OrderDate = strings.TrimSpace(req.OrderDate)
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.BusinessUnit = strings.TrimSpace(req.BusinessUnit)
	req.ProductGroup = strings.TrimSpace(req.ProductGroup)
	req.Salesperson = strings.TrimSpace(req.Salesperson)

	return req
}

func toValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.Wrap(ErrInvalidManualOrder, err.Error())
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}

	return &ValidationError{Fields: fields}
}

// newValidator usa os nomes JSON nos erros de validação
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

package salesapi

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi/salesapiclient"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var ErrUnknownSource = errors.New("fonte de API de vendas não configurada")

type SalesDataIntegrator interface {
	Sources() []string
	GetSalesData(ctx context.Context, source string, year int) (*domain.RawPayload, error)
}

type SalesAPIService struct {
	cfg    *config.Config
	Client salesapiclient.Client
}

func New(cfg *config.Config, client salesapiclient.Client) SalesDataIntegrator {
	return &SalesAPIService{
		cfg:    cfg,
		Client: client,
	}
}

// Sources lista os códigos das empresas configuradas em ordem estável
func (s *SalesAPIService) Sources() []string {
	sources := make([]string, 0, len(s.cfg.SalesAPIMultiClient))
	for code := range s.cfg.SalesAPIMultiClient {
		sources = append(sources, code)
	}
	sort.Strings(sources)

	return sources
}

func (s *SalesAPIService) GetSalesData(ctx context.Context, source string, year int) (*domain.RawPayload, error) {
	salesAPIConfig, ok := s.cfg.SalesAPIMultiClient[source]
	if !ok {
		return nil, errors.Wrap(ErrUnknownSource, source)
	}

	params := salesapiclient.SalesDataParams{Year: year}
	if source != config.DefaultSalesAPISource {
		params.Company = source
	}

	resp, err := s.Client.GetSalesData(ctx, params, &salesAPIConfig)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar dados da fonte %s", source)
	}

	return &domain.RawPayload{
		Invoice:    resp.Datas.Invoice,
		SalesOrder: resp.Datas.SalesOrder,
	}, nil
}

package salesapiclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 30 * time.Second

type Client interface {
	GetSalesData(ctx context.Context, params SalesDataParams, salesAPIConfig *config.SalesAPI) (*SalesDataResponse, error)
}

type SalesAPIClient struct {
	httpClient *http.Client
}

// NewClient cria o cliente HTTP da API de vendas. O timeout de cada fonte é aplicado por requisição.
func NewClient(cfg *config.Config) Client {
	timeout := cfg.SalesAPI.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &SalesAPIClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

package salesapiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

type SalesDataParams struct {
	Company string
	Year    int
}

// SalesDataResponse é o envelope devolvido pela API: { datas: { invoice: [...], sales_order: [...] } }
type SalesDataResponse struct {
	Datas struct {
		Invoice    []any `json:"invoice"`
		SalesOrder []any `json:"sales_order"`
	} `json:"datas"`
}

func (c *SalesAPIClient) GetSalesData(ctx context.Context, params SalesDataParams, salesAPIConfig *config.SalesAPI) (*SalesDataResponse, error) {
	if salesAPIConfig.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, salesAPIConfig.Timeout)
		defer cancel()
	}

	// Construir a URL da requisição.
	endpoint, err := url.Parse(salesAPIConfig.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	query := endpoint.Query()
	if params.Year > 0 {
		query.Set("year", strconv.Itoa(params.Year))
	}
	if params.Company != "" {
		query.Set("company", params.Company)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	if salesAPIConfig.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+salesAPIConfig.AccessToken)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("requisição falhou com status: %s: %s", resp.Status, body)
	}

	var response SalesDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}

package gumroadclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	gumroaddomain "github.com/VinnieVedi1/revenue-tracker-api/infrastructure/integrator/gumroad/domain"
)

type SalesParams struct {
	After  time.Time
	Before time.Time
}

func (c *GumroadClient) GetSales(ctx context.Context, params SalesParams) ([]gumroaddomain.Sale, error) {
	endpoint, err := url.Parse(c.config.Gumroad.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/sales")

	query := endpoint.Query()
	query.Set("after", params.After.Format(time.DateOnly))
	query.Set("before", params.Before.Format(time.DateOnly))
	query.Set("access_token", c.config.Gumroad.AccessToken)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response gumroaddomain.SalesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if !response.Success {
		return nil, fmt.Errorf("API do Gumroad reportou falha na consulta de vendas")
	}

	return response.Sales, nil
}

package stripeclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	stripedomain "github.com/VinnieVedi1/revenue-tracker-api/infrastructure/integrator/stripe/domain"
)

// Tamanho máximo de página aceito pela API de cobranças
const chargesPageLimit = 100

type ChargesParams struct {
	CreatedGte time.Time
	CreatedLt  time.Time
}

// ListCharges busca todas as cobranças do período, paginando via
// starting_after até a API indicar que não há mais resultados
func (c *StripeClient) ListCharges(ctx context.Context, params ChargesParams) ([]stripedomain.Charge, error) {
	charges := make([]stripedomain.Charge, 0)
	startingAfter := ""

	for {
		page, err := c.listChargesPage(ctx, params, startingAfter)
		if err != nil {
			return nil, err
		}

		charges = append(charges, page.Data...)

		if !page.HasMore || len(page.Data) == 0 {
			break
		}
		startingAfter = page.Data[len(page.Data)-1].ID
	}

	return charges, nil
}

func (c *StripeClient) listChargesPage(ctx context.Context, params ChargesParams, startingAfter string) (*stripedomain.ChargeList, error) {
	endpoint, err := url.Parse(c.config.Stripe.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/charges")

	query := endpoint.Query()
	query.Set("created[gte]", strconv.FormatInt(params.CreatedGte.Unix(), 10))
	query.Set("created[lt]", strconv.FormatInt(params.CreatedLt.Unix(), 10))
	query.Set("limit", strconv.Itoa(chargesPageLimit))
	if startingAfter != "" {
		query.Set("starting_after", startingAfter)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Stripe.SecretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var page stripedomain.ChargeList
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &page, nil
}

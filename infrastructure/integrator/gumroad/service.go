package gumroad

import (
	"context"
	"fmt"
	"time"

	gumroaddomain "github.com/VinnieVedi1/revenue-tracker-api/infrastructure/integrator/gumroad/domain"
	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/integrator/gumroad/gumroadclient"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/config"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
)

// SourceName identifica a origem nos registros de receita e marcas d'água
const SourceName = "gumroad"

type GumroadIntegrator interface {
	Name() string
	FetchTransactions(ctx context.Context, since, until time.Time) ([]domain.RawTransaction, error)
}

type GumroadService struct {
	cfg    *config.Config
	Client gumroadclient.Client
}

func New(cfg *config.Config, client gumroadclient.Client) GumroadIntegrator {
	return &GumroadService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GumroadService) Name() string {
	return SourceName
}

func (s *GumroadService) FetchTransactions(ctx context.Context, since, until time.Time) ([]domain.RawTransaction, error) {
	sales, err := s.Client.GetSales(ctx, gumroadclient.SalesParams{
		After:  since,
		Before: until,
	})
	if err != nil {
		return nil, err
	}

	transactions := make([]domain.RawTransaction, 0, len(sales))
	for _, sale := range sales {
		tx, err := toRawTransaction(sale)
		if err != nil {
			return nil, err
		}

		// O Gumroad filtra por dia inteiro; recortar aqui para respeitar a
		// janela exata da marca d'água
		if tx.OccurredAt.Before(since) || !tx.OccurredAt.Before(until) {
			continue
		}

		transactions = append(transactions, tx)
	}

	return transactions, nil
}

func toRawTransaction(sale gumroaddomain.Sale) (domain.RawTransaction, error) {
	occurredAt, err := time.Parse(time.RFC3339, sale.CreatedAt)
	if err != nil {
		return domain.RawTransaction{}, fmt.Errorf("erro ao converter data da venda %s: %w", sale.ID, err)
	}

	return domain.RawTransaction{
		ExternalID:   sale.ID,
		AmountMinor:  sale.Price,
		OccurredAt:   occurredAt.UTC(),
		Paid:         true, // a API só retorna vendas concluídas
		Refunded:     sale.Refunded,
		BillingEmail: sale.Email,
		Metadata: map[string]string{
			domain.MetadataEntityKey: sale.ProductID,
		},
	}, nil
}

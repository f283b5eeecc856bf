package stripe

import (
	"context"
	"time"

	stripedomain "github.com/VinnieVedi1/revenue-tracker-api/infrastructure/integrator/stripe/domain"
	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/integrator/stripe/stripeclient"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/config"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
)

// SourceName identifica a origem nos registros de receita e marcas d'água
const SourceName = "stripe"

type StripeIntegrator interface {
	Name() string
	FetchTransactions(ctx context.Context, since, until time.Time) ([]domain.RawTransaction, error)
}

type StripeService struct {
	cfg    *config.Config
	Client stripeclient.Client
}

func New(cfg *config.Config, client stripeclient.Client) StripeIntegrator {
	return &StripeService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *StripeService) Name() string {
	return SourceName
}

// FetchTransactions busca as cobranças do período e as converte para a forma
// bruta comum. Flags de pagamento/estorno são preservadas; quem ingere decide
// o que pular.
func (s *StripeService) FetchTransactions(ctx context.Context, since, until time.Time) ([]domain.RawTransaction, error) {
	charges, err := s.Client.ListCharges(ctx, stripeclient.ChargesParams{
		CreatedGte: since,
		CreatedLt:  until,
	})
	if err != nil {
		return nil, err
	}

	transactions := make([]domain.RawTransaction, 0, len(charges))
	for _, charge := range charges {
		transactions = append(transactions, toRawTransaction(charge))
	}

	return transactions, nil
}

func toRawTransaction(charge stripedomain.Charge) domain.RawTransaction {
	email := charge.BillingDetails.Email
	if email == "" {
		email = charge.ReceiptEmail
	}

	return domain.RawTransaction{
		ExternalID:   charge.ID,
		AmountMinor:  charge.Amount,
		OccurredAt:   time.Unix(charge.Created, 0).UTC(),
		Paid:         charge.Paid,
		Refunded:     charge.Refunded,
		BillingEmail: email,
		Metadata:     charge.Metadata,
	}
}

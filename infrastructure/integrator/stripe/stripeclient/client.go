package stripeclient

import (
	"context"
	"net/http"
	"time"

	stripedomain "github.com/VinnieVedi1/revenue-tracker-api/infrastructure/integrator/stripe/domain"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/config"
)

type Client interface {
	ListCharges(ctx context.Context, params ChargesParams) ([]stripedomain.Charge, error)
}

type StripeClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &StripeClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

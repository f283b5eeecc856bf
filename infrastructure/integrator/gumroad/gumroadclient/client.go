package gumroadclient

import (
	"context"
	"net/http"
	"time"

	gumroaddomain "github.com/VinnieVedi1/revenue-tracker-api/infrastructure/integrator/gumroad/domain"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/config"
)

type Client interface {
	GetSales(ctx context.Context, params SalesParams) ([]gumroaddomain.Sale, error)
}

type GumroadClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &GumroadClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

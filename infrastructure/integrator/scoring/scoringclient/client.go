package scoringclient

import (
	"context"
	"net/http"
	"time"

	"github.com/VinnieVedi1/revenue-tracker-api/internal/config"
)

type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type ScoringClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ScoringClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

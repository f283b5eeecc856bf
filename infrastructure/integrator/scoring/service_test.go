package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/VinnieVedi1/revenue-tracker-api/internal/config"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	content string
	err     error
}

func (c *fakeClient) Complete(_ context.Context, _ string) (string, error) {
	return c.content, c.err
}

func TestScoringService_ScoreOpportunity(t *testing.T) {
	topic := domain.NicheTopic{
		Topic:           "online course creation",
		SearchVolume:    28000,
		CompetitionTier: domain.CompetitionLow,
	}

	tests := []struct {
		name      string
		content   string
		clientErr error
		want      float64
		wantErr   bool
	}{
		{
			name:    "resposta limpa com número",
			content: "87",
			want:    87,
		},
		{
			name:    "resposta com texto em volta do número",
			content: "O score deste nicho é 72, considerando a competição.",
			want:    72,
		},
		{
			name:    "score acima de 100 é recortado",
			content: "150",
			want:    100,
		},
		{
			name:    "score negativo é recortado para zero",
			content: "-20",
			want:    0,
		},
		{
			name:    "resposta sem número falha",
			content: "não consigo avaliar este nicho",
			wantErr: true,
		},
		{
			name:      "erro do cliente é propagado",
			clientErr: errors.New("status 429"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &ScoringService{
				cfg:    &config.Config{},
				Client: &fakeClient{content: tt.content, err: tt.clientErr},
			}

			score, err := service.ScoreOpportunity(context.Background(), topic)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, score)
		})
	}
}

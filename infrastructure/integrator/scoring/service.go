package scoring

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/integrator/scoring/scoringclient"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/config"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
)

type ScoringIntegrator interface {
	ScoreOpportunity(ctx context.Context, topic domain.NicheTopic) (float64, error)
}

type ScoringService struct {
	cfg    *config.Config
	Client scoringclient.Client
}

func New(cfg *config.Config, client scoringclient.Client) ScoringIntegrator {
	return &ScoringService{
		cfg:    cfg,
		Client: client,
	}
}

const scorePrompt = `Avalie a atratividade do nicho de mercado abaixo para venda de produtos digitais.
Nicho: %s
Volume de busca mensal: %d
Competição: %s
Responda apenas com um número inteiro de 0 a 100.`

// ScoreOpportunity pede ao modelo um score de 0 a 100 para o tópico. O valor
// retornado é sempre recortado para [0, 100].
func (s *ScoringService) ScoreOpportunity(ctx context.Context, topic domain.NicheTopic) (float64, error) {
	prompt := fmt.Sprintf(scorePrompt, topic.Topic, topic.SearchVolume, topic.CompetitionTier)

	content, err := s.Client.Complete(ctx, prompt)
	if err != nil {
		return 0, err
	}

	score, err := parseScore(content)
	if err != nil {
		return 0, err
	}

	return clampScore(score), nil
}

func parseScore(content string) (float64, error) {
	// O modelo às vezes devolve texto em volta do número; usar o primeiro
	// token numérico encontrado
	for _, field := range strings.Fields(content) {
		cleaned := strings.Trim(field, ".,;:%")
		if score, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return score, nil
		}
	}

	return 0, fmt.Errorf("resposta do modelo sem score numérico: %q", content)
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

package scanning

import (
	"context"
	"sort"
	"time"

	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/integrator/scoring"
	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/repository"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/config"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// defaultTopics é a lista fixa de tópicos candidatos varrida a cada ciclo
var defaultTopics = []domain.NicheTopic{
	{Topic: "ai automation tools", SearchVolume: 74000, CompetitionTier: domain.CompetitionMedium},
	{Topic: "notion templates", SearchVolume: 51000, CompetitionTier: domain.CompetitionHigh},
	{Topic: "print on demand", SearchVolume: 43000, CompetitionTier: domain.CompetitionMedium},
	{Topic: "online course creation", SearchVolume: 28000, CompetitionTier: domain.CompetitionLow},
	{Topic: "personal finance tracker", SearchVolume: 22000, CompetitionTier: domain.CompetitionLow},
}

// Scanner pontua os tópicos candidatos e devolve as oportunidades acima do
// limiar configurado
type Scanner interface {
	Scan(ctx context.Context) ([]*domain.NicheOpportunity, error)
	ListOpportunities() ([]*domain.NicheOpportunity, error)
}

type Service struct {
	scorer   scoring.ScoringIntegrator
	repo     repository.NicheOpportunityRepository
	minScore float64
	topics   []domain.NicheTopic
}

func NewService(
	scorer scoring.ScoringIntegrator,
	repo repository.NicheOpportunityRepository,
	cfg *config.Config,
) Scanner {
	return &Service{
		scorer:   scorer,
		repo:     repo,
		minScore: cfg.NicheScan.MinScore,
		topics:   defaultTopics,
	}
}

// Scan pontua cada tópico pelo adaptador externo. Falha do adaptador degrada
// para o score neutro 50 em vez de propagar o erro; sem retry nem backoff.
// O resultado vem ordenado por score decrescente, filtrado pelo limiar, e
// todas as pontuações (filtradas ou não) são persistidas.
func (s *Service) Scan(ctx context.Context) ([]*domain.NicheOpportunity, error) {
	scoredAt := time.Now().UTC()

	opportunities := make([]*domain.NicheOpportunity, 0, len(s.topics))
	for _, topic := range s.topics {
		opportunity := &domain.NicheOpportunity{
			Topic:           topic.Topic,
			SearchVolume:    topic.SearchVolume,
			CompetitionTier: topic.CompetitionTier,
			ScoredAt:        scoredAt,
		}

		score, err := s.scorer.ScoreOpportunity(ctx, topic)
		if err != nil {
			logrus.WithError(err).WithField("topic", topic.Topic).
				Warn("scanning: scorer failed, using neutral default score")
			opportunity.Score = domain.NeutralOpportunityScore
			opportunity.Fallback = true
		} else {
			opportunity.Score = score
		}

		if err := s.repo.SaveOrUpdate(opportunity); err != nil {
			logrus.WithError(err).WithField("topic", topic.Topic).
				Error("scanning: failed to persist opportunity")
		}

		opportunities = append(opportunities, opportunity)
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].Score > opportunities[j].Score
	})

	filtered := make([]*domain.NicheOpportunity, 0, len(opportunities))
	for _, opportunity := range opportunities {
		if opportunity.Score >= s.minScore {
			filtered = append(filtered, opportunity)
		}
	}

	logrus.WithFields(logrus.Fields{
		"scored":   len(opportunities),
		"selected": len(filtered),
	}).Info("scanning: niche scan completed")

	return filtered, nil
}

// ListOpportunities retorna as oportunidades persistidas acima do limiar
func (s *Service) ListOpportunities() ([]*domain.NicheOpportunity, error) {
	return s.repo.ListByMinScore(s.minScore)
}

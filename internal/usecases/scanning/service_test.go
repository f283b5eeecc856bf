package scanning

import (
	"context"
	"errors"
	"testing"

	scoringmocks "github.com/VinnieVedi1/revenue-tracker-api/infrastructure/integrator/scoring/mocks"
	repomocks "github.com/VinnieVedi1/revenue-tracker-api/infrastructure/repository/mocks"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/config"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func scanConfig(minScore float64) *config.Config {
	return &config.Config{
		NicheScan: config.NicheScan{
			CronSchedule: "0 6 * * *",
			MinScore:     minScore,
			Enabled:      true,
		},
	}
}

func TestService_Scan_OrdenaEFiltraPorScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScorer := scoringmocks.NewMockScoringIntegrator(ctrl)
	mockRepo := repomocks.NewMockNicheOpportunityRepository(ctrl)

	scores := map[string]float64{
		"ai automation tools":      82,
		"notion templates":         41,
		"print on demand":          70,
		"online course creation":   91,
		"personal finance tracker": 55,
	}

	mockScorer.EXPECT().
		ScoreOpportunity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, topic domain.NicheTopic) (float64, error) {
			return scores[topic.Topic], nil
		}).
		Times(len(scores))

	// Todas as pontuações são persistidas, inclusive as abaixo do limiar
	mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(len(scores))

	service := NewService(mockScorer, mockRepo, scanConfig(70))

	result, err := service.Scan(context.Background())
	require.NoError(t, err)

	require.Len(t, result, 3)
	assert.Equal(t, "online course creation", result[0].Topic)
	assert.Equal(t, "ai automation tools", result[1].Topic)
	assert.Equal(t, "print on demand", result[2].Topic)

	for _, opportunity := range result {
		assert.GreaterOrEqual(t, opportunity.Score, 70.0)
		assert.False(t, opportunity.Fallback)
	}
}

func TestService_Scan_FalhaDoScorerDegradaParaScoreNeutro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScorer := scoringmocks.NewMockScoringIntegrator(ctrl)
	mockRepo := repomocks.NewMockNicheOpportunityRepository(ctrl)

	mockScorer.EXPECT().
		ScoreOpportunity(gomock.Any(), gomock.Any()).
		Return(0.0, errors.New("scoring api: status 429")).
		Times(len(defaultTopics))

	persisted := make([]*domain.NicheOpportunity, 0, len(defaultTopics))
	mockRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(opportunity *domain.NicheOpportunity) error {
			persisted = append(persisted, opportunity)
			return nil
		}).
		Times(len(defaultTopics))

	// Limiar abaixo do neutro: as oportunidades degradadas ainda aparecem
	service := NewService(mockScorer, mockRepo, scanConfig(40))

	result, err := service.Scan(context.Background())
	require.NoError(t, err)

	require.Len(t, result, len(defaultTopics))
	for _, opportunity := range result {
		assert.Equal(t, domain.NeutralOpportunityScore, opportunity.Score)
		assert.True(t, opportunity.Fallback)
	}

	require.Len(t, persisted, len(defaultTopics))
	for _, opportunity := range persisted {
		assert.True(t, opportunity.Fallback)
	}
}

func TestService_Scan_LimiarAcimaDoNeutroEsvaziaResultadoDegradado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScorer := scoringmocks.NewMockScoringIntegrator(ctrl)
	mockRepo := repomocks.NewMockNicheOpportunityRepository(ctrl)

	mockScorer.EXPECT().
		ScoreOpportunity(gomock.Any(), gomock.Any()).
		Return(0.0, errors.New("scoring api: timeout")).
		Times(len(defaultTopics))

	mockRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(len(defaultTopics))

	service := NewService(mockScorer, mockRepo, scanConfig(70))

	result, err := service.Scan(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestService_Scan_FalhaDePersistenciaNaoAbortaAVarredura(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScorer := scoringmocks.NewMockScoringIntegrator(ctrl)
	mockRepo := repomocks.NewMockNicheOpportunityRepository(ctrl)

	mockScorer.EXPECT().
		ScoreOpportunity(gomock.Any(), gomock.Any()).
		Return(80.0, nil).
		Times(len(defaultTopics))

	mockRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(errors.New("pq: connection reset")).
		Times(len(defaultTopics))

	service := NewService(mockScorer, mockRepo, scanConfig(70))

	result, err := service.Scan(context.Background())
	require.NoError(t, err)
	assert.Len(t, result, len(defaultTopics))
}

func TestService_ListOpportunities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScorer := scoringmocks.NewMockScoringIntegrator(ctrl)
	mockRepo := repomocks.NewMockNicheOpportunityRepository(ctrl)

	expected := []*domain.NicheOpportunity{
		{Topic: "online course creation", Score: 91},
	}

	mockRepo.EXPECT().ListByMinScore(70.0).Return(expected, nil)

	service := NewService(mockScorer, mockRepo, scanConfig(70))

	result, err := service.ListOpportunities()
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/database/postgres"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
)

const nicheOpportunitiesTable = "niche_opportunities"

type NicheOpportunityRepository interface {
	SaveOrUpdate(opportunity *domain.NicheOpportunity) error
	ListByMinScore(minScore float64) ([]*domain.NicheOpportunity, error)
}

type nicheOpportunityRepository struct {
	conn *postgres.Connection
}

func NewNicheOpportunityRepository(conn *postgres.Connection) NicheOpportunityRepository {
	return &nicheOpportunityRepository{
		conn: conn,
	}
}

func (r *nicheOpportunityRepository) SaveOrUpdate(opportunity *domain.NicheOpportunity) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(nicheOpportunitiesTable).
		Columns("topic", "search_volume", "competition_tier", "score", "fallback", "scored_at").
		Values(
			opportunity.Topic,
			opportunity.SearchVolume,
			opportunity.CompetitionTier,
			opportunity.Score,
			opportunity.Fallback,
			opportunity.ScoredAt,
		).
		Suffix(`
			ON CONFLICT (topic) DO UPDATE SET
				search_volume = EXCLUDED.search_volume,
				competition_tier = EXCLUDED.competition_tier,
				score = EXCLUDED.score,
				fallback = EXCLUDED.fallback,
				scored_at = EXCLUDED.scored_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar oportunidade de nicho: %w", err)
	}

	return nil
}

func (r *nicheOpportunityRepository) ListByMinScore(minScore float64) ([]*domain.NicheOpportunity, error) {
	query, args, err := squirrel.
		Select("id, topic, search_volume, competition_tier, score, fallback, scored_at").
		From(nicheOpportunitiesTable).
		Where(squirrel.GtOrEq{"score": minScore}).
		OrderBy("score DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	opportunities := make([]*domain.NicheOpportunity, 0)
	for rows.Next() {
		opportunity := &domain.NicheOpportunity{}
		err := rows.Scan(
			&opportunity.ID,
			&opportunity.Topic,
			&opportunity.SearchVolume,
			&opportunity.CompetitionTier,
			&opportunity.Score,
			&opportunity.Fallback,
			&opportunity.ScoredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear oportunidade de nicho: %w", err)
		}
		opportunities = append(opportunities, opportunity)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return opportunities, nil
}

package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/database/postgres"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
)

const sourceWatermarksTable = "source_watermarks"

type WatermarkRepository interface {
	GetBySource(source string) (*domain.SourceWatermark, error)
	SaveOrUpdate(source string, lastSeen time.Time) error
}

type watermarkRepository struct {
	conn *postgres.Connection
}

func NewWatermarkRepository(conn *postgres.Connection) WatermarkRepository {
	return &watermarkRepository{
		conn: conn,
	}
}

// GetBySource retorna nil sem erro quando a origem ainda não tem marca d'água
func (r *watermarkRepository) GetBySource(source string) (*domain.SourceWatermark, error) {
	query, args, err := squirrel.
		Select("source, last_seen, updated_at").
		From(sourceWatermarksTable).
		Where(squirrel.Eq{"source": source}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	watermark := &domain.SourceWatermark{}
	err = r.conn.QueryRow(query, args...).Scan(
		&watermark.Source,
		&watermark.LastSeen,
		&watermark.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear marca d'água: %w", err)
	}

	watermark.LastSeen = watermark.LastSeen.UTC()

	return watermark, nil
}

func (r *watermarkRepository) SaveOrUpdate(source string, lastSeen time.Time) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(sourceWatermarksTable).
		Columns("source", "last_seen").
		Values(source, lastSeen).
		Suffix(`
			ON CONFLICT (source) DO UPDATE SET
				last_seen = EXCLUDED.last_seen,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar marca d'água: %w", err)
	}

	return nil
}

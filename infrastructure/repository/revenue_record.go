package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/VinnieVedi1/revenue-tracker-api/infrastructure/database/postgres"
	"github.com/VinnieVedi1/revenue-tracker-api/internal/domain"
	"github.com/lib/pq"
)

const (
	revenueRecordsTable = "revenue_records"

	// Código do Postgres para violação de constraint de unicidade
	pqUniqueViolation = "23505"
)

type RevenueRecordRepository interface {
	Insert(record *domain.RevenueRecord) (string, error)
	GetByDateRange(startDate, endDate time.Time, filter *domain.RevenueFilter) ([]*domain.RevenueRecord, error)
	Delete(id string) error
	CountBySource(source string) (int64, error)
}

type revenueRecordRepository struct {
	conn *postgres.Connection
}

func NewRevenueRecordRepository(conn *postgres.Connection) RevenueRecordRepository {
	return &revenueRecordRepository{
		conn: conn,
	}
}

// Insert grava o registro e retorna o ID atribuído. A unicidade de
// (source, external_transaction_id) é garantida pela constraint do banco;
// dois insersores concorrentes do mesmo par resultam em exatamente um
// registro e um domain.ErrDuplicateTransaction.
func (r *revenueRecordRepository) Insert(record *domain.RevenueRecord) (string, error) {
	query, args, err := squirrel.
		Insert(revenueRecordsTable).
		Columns("id", "occurred_at", "amount", "source", "entity_id", "external_transaction_id", "billing_email").
		Values(
			record.ID,
			record.OccurredAt,
			record.Amount,
			record.Source,
			record.EntityID,
			record.ExternalTransactionID,
			record.BillingEmail,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id string
	err = r.conn.QueryRow(query, args...).Scan(&id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return "", fmt.Errorf("transação %s da origem %s: %w",
				record.ExternalTransactionID, record.Source, domain.ErrDuplicateTransaction)
		}
		return "", fmt.Errorf("erro ao inserir registro de receita: %w", err)
	}

	return id, nil
}

// GetByDateRange busca registros com occurred_at em [startDate, endDate),
// intervalo semiaberto, opcionalmente filtrados por entidade e/ou origem
func (r *revenueRecordRepository) GetByDateRange(startDate, endDate time.Time, filter *domain.RevenueFilter) ([]*domain.RevenueRecord, error) {
	builder := squirrel.
		Select("id, occurred_at, amount, source, entity_id, external_transaction_id, billing_email, created_at").
		From(revenueRecordsTable).
		Where(squirrel.GtOrEq{"occurred_at": startDate}).
		Where(squirrel.Lt{"occurred_at": endDate}).
		OrderBy("occurred_at ASC")

	if filter != nil {
		if filter.EntityID != nil {
			builder = builder.Where(squirrel.Eq{"entity_id": *filter.EntityID})
		}
		if filter.Source != nil {
			builder = builder.Where(squirrel.Eq{"source": *filter.Source})
		}
	}

	query, args, err := builder.
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

	records := make([]*domain.RevenueRecord, 0)
	for rows.Next() {
		record, err := r.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de receita: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// Delete remove um registro. Usado para estornos modelados como exclusão;
// o registro original nunca é alterado in-place.
func (r *revenueRecordRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(revenueRecordsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *revenueRecordRepository) CountBySource(source string) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(revenueRecordsTable).
		Where(squirrel.Eq{"source": source}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar registros: %w", err)
	}

	return count, nil
}

func (r *revenueRecordRepository) scanRecord(rows *sql.Rows) (*domain.RevenueRecord, error) {
	record := &domain.RevenueRecord{}
	var billingEmail sql.NullString

	err := rows.Scan(
		&record.ID,
		&record.OccurredAt,
		&record.Amount,
		&record.Source,
		&record.EntityID,
		&record.ExternalTransactionID,
		&billingEmail,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if billingEmail.Valid {
		record.BillingEmail = billingEmail.String
	}
	record.OccurredAt = record.OccurredAt.UTC()

	return record, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SourceDataRepository guarda a última coleta consolidada das APIs de vendas por ano
type SourceDataRepository interface {
	GetByYear(ctx context.Context, year int) (*domain.SourceDataEntry, error)
	SaveOrUpdate(ctx context.Context, entry *domain.SourceDataEntry) error
}

type sourceDataRepository struct {
	conn postgres.Queryer
}

func NewSourceDataRepository(conn postgres.Queryer) SourceDataRepository {
	return &sourceDataRepository{
		conn: conn,
	}
}

func (r *sourceDataRepository) GetByYear(ctx context.Context, year int) (*domain.SourceDataEntry, error) {
	query, args, err := squirrel.
		Select("sd.id, sd.year, sd.data, sd.created_at, sd.updated_at").
		From("source_data sd").
		Where(squirrel.Eq{"sd.year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		entry   domain.SourceDataEntry
		payload []byte
	)
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&entry.ID,
		&entry.Year,
		&payload,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear dados de origem: %w", err)
	}

	entry.Data = &domain.SourceData{}
	if err := json.Unmarshal(payload, entry.Data); err != nil {
		return nil, fmt.Errorf("erro ao deserializar dados de origem: %w", err)
	}

	return &entry, nil
}

// SaveOrUpdate sobrescreve a coleta do ano. A última gravação prevalece.
func (r *sourceDataRepository) SaveOrUpdate(ctx context.Context, entry *domain.SourceDataEntry) error {
	payload, err := json.Marshal(entry.Data)
	if err != nil {
		return fmt.Errorf("erro ao serializar dados de origem para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert("source_data").
		Columns("year", "data").
		Values(entry.Year, payload).
		Suffix(`
			ON CONFLICT (year) DO UPDATE SET
				data = EXCLUDED.data,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

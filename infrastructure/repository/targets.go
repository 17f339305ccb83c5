package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type TargetRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.EnhancedTargets, error)
	Save(ctx context.Context, userID string, targets *domain.EnhancedTargets) error
}

type targetRepository struct {
	conn postgres.Queryer
}

func NewTargetRepository(conn postgres.Queryer) TargetRepository {
	return &targetRepository{
		conn: conn,
	}
}

// GetByUserID retorna nil, nil quando o usuário ainda não salvou metas
func (r *targetRepository) GetByUserID(ctx context.Context, userID string) (*domain.EnhancedTargets, error) {
	query, args, err := squirrel.
		Select("ut.targets").
		From("user_targets ut").
		Where(squirrel.Eq{"ut.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var payload []byte
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar metas: %w", err)
	}

	targets := &domain.EnhancedTargets{}
	if err := json.Unmarshal(payload, targets); err != nil {
		return nil, fmt.Errorf("erro ao deserializar metas: %w", err)
	}

	return targets, nil
}

func (r *targetRepository) Save(ctx context.Context, userID string, targets *domain.EnhancedTargets) error {
	payload, err := json.Marshal(targets)
	if err != nil {
		return fmt.Errorf("erro ao serializar metas para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert("user_targets").
		Columns("user_id", "targets").
		Values(userID, payload).
		Suffix(`
			ON CONFLICT (user_id) DO UPDATE SET
				targets = EXCLUDED.targets,
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

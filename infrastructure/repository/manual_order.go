package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	manualOrdersTable = "manual_orders mo"
)

type ManualOrderRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]domain.ManualOrder, error)
	Create(ctx context.Context, order *domain.ManualOrder) error
	Delete(ctx context.Context, userID, id string) (bool, error)
}

type manualOrderRepository struct {
	conn postgres.Queryer
}

func NewManualOrderRepository(conn postgres.Queryer) ManualOrderRepository {
	return &manualOrderRepository{
		conn: conn,
	}
}

func (r *manualOrderRepository) ListByUserID(ctx context.Context, userID string) ([]domain.ManualOrder, error) {
	query, args, err := squirrel.
		Select("mo.id, mo.user_id, mo.order_date, mo.customer_name, mo.business_unit, mo.order_value, mo.gross_margin, mo.gross_profit, mo.salesperson, mo.created_at").
		From(manualOrdersTable).
		Where(squirrel.Eq{"mo.user_id": userID}).
		OrderBy("mo.order_date ASC", "mo.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.ManualOrder, 0)
	for rows.Next() {
		var order domain.ManualOrder
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.OrderDate,
			&order.CustomerName,
			&order.BusinessUnit,
			&order.OrderValue,
			&order.GrossMargin,
			&order.GrossProfit,
			&order.Salesperson,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido manual: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

func (r *manualOrderRepository) Create(ctx context.Context, order *domain.ManualOrder) error {
	query, args, err := squirrel.
		Insert("manual_orders").
		Columns("id", "user_id", "order_date", "customer_name", "business_unit", "order_value", "gross_margin", "gross_profit", "salesperson").
		Values(
			order.ID,
			order.UserID,
			order.OrderDate.Format(time.DateOnly),
			order.CustomerName,
			order.BusinessUnit,
			order.OrderValue,
			order.GrossMargin,
			order.GrossProfit,
			order.Salesperson,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&order.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao inserir pedido manual: %w", err)
	}

	return nil
}

// Delete remove o pedido do usuário. Retorna false quando nenhum registro foi removido.
func (r *manualOrderRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	query, args, err := squirrel.
		Delete("manual_orders").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return affected > 0, nil
}

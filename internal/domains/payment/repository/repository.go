package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"toolindex-backend/internal/domains/payment/model"
)

type PaymentRepository interface {
	// TotalRevenue sums completed payments
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}

type postgresPaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &postgresPaymentRepository{pool: pool}
}

func (r *postgresPaymentRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = $1`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, model.StatusCompleted).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum revenue: %w", err)
	}

	return total, nil
}

package service

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	paymentrepo "toolindex-backend/internal/domains/payment/repository"
	reviewmodel "toolindex-backend/internal/domains/review/model"
	reviewrepo "toolindex-backend/internal/domains/review/repository"
	toolmodel "toolindex-backend/internal/domains/tool/model"
	toolrepo "toolindex-backend/internal/domains/tool/repository"
)

// DashboardStats is the admin dashboard payload.
type DashboardStats struct {
	ToolsApproved  int64           `json:"tools_approved"`
	ToolsPending   int64           `json:"tools_pending"`
	ReviewsPending int64           `json:"reviews_pending"`
	ReviewsTotal   int64           `json:"reviews_total"`
	Revenue        decimal.Decimal `json:"revenue"`
}

type StatsService interface {
	// Dashboard gathers the admin counters concurrently. Any failed
	// count fails the whole request.
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type statsService struct {
	toolRepo    toolrepo.ToolRepository
	reviewRepo  reviewrepo.ReviewRepository
	paymentRepo paymentrepo.PaymentRepository
}

func NewStatsService(
	toolRepo toolrepo.ToolRepository,
	reviewRepo reviewrepo.ReviewRepository,
	paymentRepo paymentrepo.PaymentRepository,
) StatsService {
	return &statsService{
		toolRepo:    toolRepo,
		reviewRepo:  reviewRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *statsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.toolRepo.CountByStatus(gctx, toolmodel.StatusApproved)
		stats.ToolsApproved = n
		return err
	})
	g.Go(func() error {
		n, err := s.toolRepo.CountByStatus(gctx, toolmodel.StatusPending)
		stats.ToolsPending = n
		return err
	})
	g.Go(func() error {
		n, err := s.reviewRepo.CountByStatus(gctx, reviewmodel.StatusPending)
		stats.ReviewsPending = n
		return err
	})
	g.Go(func() error {
		n, err := s.reviewRepo.CountByStatus(gctx, reviewmodel.StatusApproved)
		stats.ReviewsTotal = n
		return err
	})
	g.Go(func() error {
		total, err := s.paymentRepo.TotalRevenue(gctx)
		stats.Revenue = total
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}

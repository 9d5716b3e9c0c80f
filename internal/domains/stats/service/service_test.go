package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	reviewmodel "toolindex-backend/internal/domains/review/model"
	toolmodel "toolindex-backend/internal/domains/tool/model"
)

// =====================================================
// MOCKS
// =====================================================

type MockToolRepository struct {
	mock.Mock
}

func (m *MockToolRepository) Create(ctx context.Context, tool *toolmodel.Tool) error {
	return m.Called(ctx, tool).Error(0)
}

func (m *MockToolRepository) GetByID(ctx context.Context, id uuid.UUID) (*toolmodel.Tool, error) {
	args := m.Called(ctx, id)
	return nil, args.Error(1)
}

func (m *MockToolRepository) GetBySlug(ctx context.Context, slug string) (*toolmodel.Tool, error) {
	args := m.Called(ctx, slug)
	return nil, args.Error(1)
}

func (m *MockToolRepository) ListApproved(ctx context.Context, q toolmodel.ListToolsQuery) ([]*toolmodel.Tool, int64, error) {
	args := m.Called(ctx, q)
	return nil, 0, args.Error(2)
}

func (m *MockToolRepository) ListPending(ctx context.Context) ([]*toolmodel.Tool, error) {
	args := m.Called(ctx)
	return nil, args.Error(1)
}

func (m *MockToolRepository) ListBySubmitter(ctx context.Context, userID uuid.UUID) ([]*toolmodel.Tool, error) {
	args := m.Called(ctx, userID)
	return nil, args.Error(1)
}

func (m *MockToolRepository) Approve(ctx context.Context, id, approvedBy uuid.UUID, approvedAt time.Time, forceFeatured bool) (bool, error) {
	args := m.Called(ctx, id, approvedBy, approvedAt, forceFeatured)
	return args.Bool(0), args.Error(1)
}

func (m *MockToolRepository) Reject(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockToolRepository) Archive(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockToolRepository) ToggleFeatured(ctx context.Context, id uuid.UUID) (bool, bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func (m *MockToolRepository) UpdateRatingAggregate(ctx context.Context, id uuid.UUID, avg float64, count int) error {
	return m.Called(ctx, id, avg, count).Error(0)
}

func (m *MockToolRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockToolRepository) GetSummaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]toolmodel.ToolSummary, error) {
	args := m.Called(ctx, ids)
	return nil, args.Error(1)
}

func (m *MockToolRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *reviewmodel.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*reviewmodel.Review, error) {
	args := m.Called(ctx, id)
	return nil, args.Error(1)
}

func (m *MockReviewRepository) ListApprovedByTool(ctx context.Context, toolID uuid.UUID) ([]*reviewmodel.Review, error) {
	args := m.Called(ctx, toolID)
	return nil, args.Error(1)
}

func (m *MockReviewRepository) ListForAdmin(ctx context.Context, q reviewmodel.AdminListReviewsQuery) ([]*reviewmodel.Review, int64, error) {
	args := m.Called(ctx, q)
	return nil, 0, args.Error(2)
}

func (m *MockReviewRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockReviewRepository) ApprovedRatings(ctx context.Context, toolID uuid.UUID) ([]int, error) {
	args := m.Called(ctx, toolID)
	return nil, args.Error(1)
}

func (m *MockReviewRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// =====================================================
// TESTS
// =====================================================

func TestStatsService_Dashboard(t *testing.T) {
	t.Run("gathers all counters", func(t *testing.T) {
		toolRepo := new(MockToolRepository)
		reviewRepo := new(MockReviewRepository)
		paymentRepo := new(MockPaymentRepository)
		svc := NewStatsService(toolRepo, reviewRepo, paymentRepo)

		toolRepo.On("CountByStatus", mock.Anything, toolmodel.StatusApproved).Return(int64(42), nil)
		toolRepo.On("CountByStatus", mock.Anything, toolmodel.StatusPending).Return(int64(7), nil)
		reviewRepo.On("CountByStatus", mock.Anything, reviewmodel.StatusPending).Return(int64(3), nil)
		reviewRepo.On("CountByStatus", mock.Anything, reviewmodel.StatusApproved).Return(int64(120), nil)
		paymentRepo.On("TotalRevenue", mock.Anything).Return(decimal.NewFromFloat(499.50), nil)

		stats, err := svc.Dashboard(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(42), stats.ToolsApproved)
		assert.Equal(t, int64(7), stats.ToolsPending)
		assert.Equal(t, int64(3), stats.ReviewsPending)
		assert.Equal(t, int64(120), stats.ReviewsTotal)
		assert.True(t, decimal.NewFromFloat(499.50).Equal(stats.Revenue))
	})

	t.Run("one failed counter fails the whole request", func(t *testing.T) {
		toolRepo := new(MockToolRepository)
		reviewRepo := new(MockReviewRepository)
		paymentRepo := new(MockPaymentRepository)
		svc := NewStatsService(toolRepo, reviewRepo, paymentRepo)

		toolRepo.On("CountByStatus", mock.Anything, mock.Anything).Return(int64(1), nil)
		reviewRepo.On("CountByStatus", mock.Anything, mock.Anything).Return(int64(0), nil)
		paymentRepo.On("TotalRevenue", mock.Anything).Return(decimal.Zero, errors.New("store down"))

		stats, err := svc.Dashboard(context.Background())

		assert.Error(t, err)
		assert.Nil(t, stats)
	})
}

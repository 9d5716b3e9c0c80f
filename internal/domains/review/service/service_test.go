package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	profilemodel "toolindex-backend/internal/domains/profile/model"
	"toolindex-backend/internal/domains/review/model"
	toolmodel "toolindex-backend/internal/domains/tool/model"
	"toolindex-backend/internal/shared/authz"
)

// =====================================================
// MOCKS
// =====================================================

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewRepository) ListApprovedByTool(ctx context.Context, toolID uuid.UUID) ([]*model.Review, error) {
	args := m.Called(ctx, toolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Review), args.Error(1)
}

func (m *MockReviewRepository) ListForAdmin(ctx context.Context, q model.AdminListReviewsQuery) ([]*model.Review, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*model.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockReviewRepository) ApprovedRatings(ctx context.Context, toolID uuid.UUID) ([]int, error) {
	args := m.Called(ctx, toolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockReviewRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockToolRepository struct {
	mock.Mock
}

func (m *MockToolRepository) Create(ctx context.Context, tool *toolmodel.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}

func (m *MockToolRepository) GetByID(ctx context.Context, id uuid.UUID) (*toolmodel.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*toolmodel.Tool), args.Error(1)
}

func (m *MockToolRepository) GetBySlug(ctx context.Context, slug string) (*toolmodel.Tool, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*toolmodel.Tool), args.Error(1)
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
	args := m.Called(ctx, id, avg, count)
	return args.Error(0)
}

func (m *MockToolRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockToolRepository) GetSummaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]toolmodel.ToolSummary, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]toolmodel.ToolSummary), args.Error(1)
}

func (m *MockToolRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*profilemodel.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profilemodel.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetRole(ctx context.Context, userID uuid.UUID) (authz.Role, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(authz.Role), args.Error(1)
}

func (m *MockProfileRepository) GetSummaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]profilemodel.ProfileSummary, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]profilemodel.ProfileSummary), args.Error(1)
}

type MockAggregator struct {
	mock.Mock
}

func (m *MockAggregator) RecomputeRating(ctx context.Context, toolID uuid.UUID) error {
	args := m.Called(ctx, toolID)
	return args.Error(0)
}

// =====================================================
// CREATE
// =====================================================

func TestReviewService_Create(t *testing.T) {
	userID := uuid.New()
	toolID := uuid.New()
	comment := "Solid tool, saves me hours."

	req := model.CreateReviewRequest{
		ToolID:  toolID.String(),
		Rating:  5,
		Comment: &comment,
	}

	t.Run("new reviews start pending", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		toolRepo := new(MockToolRepository)
		svc := NewReviewService(reviewRepo, toolRepo, new(MockProfileRepository), new(MockAggregator))

		toolRepo.On("GetByID", mock.Anything, toolID).
			Return(&toolmodel.Tool{ID: toolID, Status: toolmodel.StatusApproved}, nil)
		reviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Review")).Return(nil)

		review, err := svc.Create(context.Background(), userID, req)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPending, review.Status)
		assert.Equal(t, 5, review.Rating)
		reviewRepo.AssertExpectations(t)
	})

	t.Run("pending tools cannot be reviewed", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		toolRepo := new(MockToolRepository)
		svc := NewReviewService(reviewRepo, toolRepo, new(MockProfileRepository), new(MockAggregator))

		toolRepo.On("GetByID", mock.Anything, toolID).
			Return(&toolmodel.Tool{ID: toolID, Status: toolmodel.StatusPending}, nil)

		_, err := svc.Create(context.Background(), userID, req)

		assert.ErrorIs(t, err, toolmodel.ErrToolNotFound)
		reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

// =====================================================
// MODERATION
// =====================================================

func TestReviewService_Approve(t *testing.T) {
	reviewID := uuid.New()
	toolID := uuid.New()
	pending := &model.Review{ID: reviewID, ToolID: toolID, Rating: 5, Status: model.StatusPending}

	t.Run("approval triggers the aggregate recompute", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		aggregator := new(MockAggregator)
		svc := NewReviewService(reviewRepo, new(MockToolRepository), new(MockProfileRepository), aggregator)

		reviewRepo.On("GetByID", mock.Anything, reviewID).Return(pending, nil)
		reviewRepo.On("SetStatus", mock.Anything, reviewID, model.StatusApproved).Return(nil)
		aggregator.On("RecomputeRating", mock.Anything, toolID).Return(nil)

		err := svc.Approve(context.Background(), reviewID)

		assert.NoError(t, err)
		reviewRepo.AssertExpectations(t)
		aggregator.AssertExpectations(t)
	})

	t.Run("recompute failure does not roll back the approval", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		aggregator := new(MockAggregator)
		svc := NewReviewService(reviewRepo, new(MockToolRepository), new(MockProfileRepository), aggregator)

		reviewRepo.On("GetByID", mock.Anything, reviewID).Return(pending, nil)
		reviewRepo.On("SetStatus", mock.Anything, reviewID, model.StatusApproved).Return(nil)
		aggregator.On("RecomputeRating", mock.Anything, toolID).Return(errors.New("store down"))

		err := svc.Approve(context.Background(), reviewID)

		assert.NoError(t, err)
	})

	t.Run("missing review", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		svc := NewReviewService(reviewRepo, new(MockToolRepository), new(MockProfileRepository), new(MockAggregator))

		reviewRepo.On("GetByID", mock.Anything, reviewID).Return(nil, model.ErrReviewNotFound)

		err := svc.Approve(context.Background(), reviewID)

		assert.ErrorIs(t, err, model.ErrReviewNotFound)
	})
}

func TestReviewService_Reject(t *testing.T) {
	reviewID := uuid.New()
	toolID := uuid.New()

	reviewRepo := new(MockReviewRepository)
	aggregator := new(MockAggregator)
	svc := NewReviewService(reviewRepo, new(MockToolRepository), new(MockProfileRepository), aggregator)

	reviewRepo.On("GetByID", mock.Anything, reviewID).
		Return(&model.Review{ID: reviewID, ToolID: toolID, Status: model.StatusPending}, nil)
	reviewRepo.On("SetStatus", mock.Anything, reviewID, model.StatusRejected).Return(nil)

	err := svc.Reject(context.Background(), reviewID)

	assert.NoError(t, err)
	// Rejected reviews never counted, so no recompute.
	aggregator.AssertNotCalled(t, "RecomputeRating", mock.Anything, mock.Anything)
}

// =====================================================
// ENRICHMENT
// =====================================================

func TestReviewService_ListApprovedByTool(t *testing.T) {
	toolID := uuid.New()

	t.Run("empty listing issues no profile lookups", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		profileRepo := new(MockProfileRepository)
		svc := NewReviewService(reviewRepo, new(MockToolRepository), profileRepo, new(MockAggregator))

		reviewRepo.On("ListApprovedByTool", mock.Anything, toolID).Return([]*model.Review{}, nil)

		reviews, err := svc.ListApprovedByTool(context.Background(), toolID)

		assert.NoError(t, err)
		assert.Empty(t, reviews)
		profileRepo.AssertNotCalled(t, "GetSummaries", mock.Anything, mock.Anything)
	})

	t.Run("authors resolved, deleted profiles come back nil", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		profileRepo := new(MockProfileRepository)
		svc := NewReviewService(reviewRepo, new(MockToolRepository), profileRepo, new(MockAggregator))

		knownUser := uuid.New()
		goneUser := uuid.New()
		reviewRepo.On("ListApprovedByTool", mock.Anything, toolID).Return([]*model.Review{
			{ID: uuid.New(), ToolID: toolID, UserID: knownUser, Rating: 5, Status: model.StatusApproved},
			{ID: uuid.New(), ToolID: toolID, UserID: goneUser, Rating: 3, Status: model.StatusApproved},
		}, nil)
		profileRepo.On("GetSummaries", mock.Anything, mock.AnythingOfType("[]uuid.UUID")).
			Return(map[uuid.UUID]profilemodel.ProfileSummary{
				knownUser: {ID: knownUser, DisplayName: "Sam"},
			}, nil)

		reviews, err := svc.ListApprovedByTool(context.Background(), toolID)

		assert.NoError(t, err)
		assert.Len(t, reviews, 2)
		assert.NotNil(t, reviews[0].User)
		assert.Equal(t, "Sam", reviews[0].User.DisplayName)
		assert.Nil(t, reviews[1].User)
	})
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	profilerepo "toolindex-backend/internal/domains/profile/repository"
	"toolindex-backend/internal/domains/review/model"
	"toolindex-backend/internal/domains/review/repository"
	toolmodel "toolindex-backend/internal/domains/tool/model"
	toolrepo "toolindex-backend/internal/domains/tool/repository"
	"toolindex-backend/internal/shared/enrich"
	"toolindex-backend/pkg/logger"
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	toolRepo    toolrepo.ToolRepository
	profileRepo profilerepo.ProfileRepository
	aggregator  RatingAggregator
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	toolRepo toolrepo.ToolRepository,
	profileRepo profilerepo.ProfileRepository,
	aggregator RatingAggregator,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		toolRepo:    toolRepo,
		profileRepo: profileRepo,
		aggregator:  aggregator,
	}
}

// =====================================================
// CREATE
// =====================================================

func (s *reviewService) Create(ctx context.Context, userID uuid.UUID, req model.CreateReviewRequest) (*model.Review, error) {
	toolID, err := uuid.Parse(req.ToolID)
	if err != nil {
		return nil, toolmodel.ErrToolNotFound
	}

	// Only live listings accept reviews.
	tool, err := s.toolRepo.GetByID(ctx, toolID)
	if err != nil {
		return nil, err
	}
	if !tool.IsApproved() {
		return nil, toolmodel.ErrToolNotFound
	}

	now := time.Now()
	review := &model.Review{
		ID:        uuid.New(),
		ToolID:    toolID,
		UserID:    userID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
		Pros:      req.Pros,
		Cons:      req.Cons,
		Status:    model.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// =====================================================
// LISTING & ENRICHMENT
// =====================================================

func (s *reviewService) ListApprovedByTool(ctx context.Context, toolID uuid.UUID) ([]*model.EnrichedReview, error) {
	reviews, err := s.reviewRepo.ListApprovedByTool(ctx, toolID)
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, reviews, false)
}

func (s *reviewService) ListForAdmin(ctx context.Context, q model.AdminListReviewsQuery) ([]*model.EnrichedReview, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}

	reviews, total, err := s.reviewRepo.ListForAdmin(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	enriched, err := s.enrich(ctx, reviews, true)
	if err != nil {
		return nil, 0, err
	}

	return enriched, total, nil
}

// enrich resolves author (and optionally tool) references with one
// batched lookup per column. Listing order is preserved; unresolvable
// references come back nil.
func (s *reviewService) enrich(ctx context.Context, reviews []*model.Review, withTools bool) ([]*model.EnrichedReview, error) {
	users, err := enrich.Resolve(ctx, reviews,
		func(r *model.Review) (uuid.UUID, bool) { return r.UserID, true },
		s.profileRepo.GetSummaries,
	)
	if err != nil {
		return nil, err
	}

	tools := map[uuid.UUID]toolmodel.ToolSummary{}
	if withTools {
		tools, err = enrich.Resolve(ctx, reviews,
			func(r *model.Review) (uuid.UUID, bool) { return r.ToolID, true },
			s.toolRepo.GetSummaries,
		)
		if err != nil {
			return nil, err
		}
	}

	enriched := make([]*model.EnrichedReview, 0, len(reviews))
	for _, rev := range reviews {
		e := &model.EnrichedReview{Review: *rev}
		if u, ok := users[rev.UserID]; ok {
			e.User = &u
		}
		if t, ok := tools[rev.ToolID]; ok {
			e.Tool = &t
		}
		enriched = append(enriched, e)
	}

	return enriched, nil
}

// =====================================================
// MODERATION
// =====================================================

func (s *reviewService) Approve(ctx context.Context, id uuid.UUID) error {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.reviewRepo.SetStatus(ctx, id, model.StatusApproved); err != nil {
		return err
	}

	// Recompute runs strictly after the status write. A failure here
	// leaves the aggregate stale but never rolls back the approval.
	if err := s.aggregator.RecomputeRating(ctx, review.ToolID); err != nil {
		logger.Warn("rating recompute failed after review approval", err, map[string]interface{}{
			"review_id": id.String(),
			"tool_id":   review.ToolID.String(),
		})
	}

	return nil
}

func (s *reviewService) Reject(ctx context.Context, id uuid.UUID) error {
	if _, err := s.reviewRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.reviewRepo.SetStatus(ctx, id, model.StatusRejected)
}

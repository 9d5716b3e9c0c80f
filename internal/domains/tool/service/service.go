package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"toolindex-backend/internal/domains/tool/model"
	"toolindex-backend/internal/domains/tool/repository"
	"toolindex-backend/internal/shared/utils"
	"toolindex-backend/pkg/logger"
)

type toolService struct {
	toolRepo repository.ToolRepository
	ratings  ApprovedRatingsReader
}

func NewToolService(toolRepo repository.ToolRepository, ratings ApprovedRatingsReader) ToolService {
	return &toolService{
		toolRepo: toolRepo,
		ratings:  ratings,
	}
}

// =====================================================
// SUBMISSION & PUBLIC QUERIES
// =====================================================

func (s *toolService) Submit(ctx context.Context, userID uuid.UUID, req model.SubmitToolRequest) (*model.Tool, error) {
	now := time.Now()
	tool := &model.Tool{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        utils.GenerateSlug(req.Name),
		Tagline:     req.Tagline,
		Description: req.Description,
		WebsiteURL:  req.WebsiteURL,
		LogoURL:     req.LogoURL,
		Screenshots: req.Screenshots,
		PricingType: req.PricingType,
		ListingType: req.ListingType,
		Status:      model.StatusPending,
		IsFeatured:  false,
		SubmittedBy: userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.toolRepo.Create(ctx, tool); err != nil {
		return nil, err
	}

	logger.Info("tool submitted", map[string]interface{}{
		"tool_id": tool.ID.String(),
		"slug":    tool.Slug,
	})

	return tool, nil
}

func (s *toolService) GetBySlug(ctx context.Context, slug string) (*model.Tool, error) {
	tool, err := s.toolRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// Counter write is fire-and-forget; a lost view is not worth a
	// failed page.
	if err := s.toolRepo.IncrementViews(ctx, tool.ID); err != nil {
		logger.Warn("failed to increment views", err, map[string]interface{}{
			"tool_id": tool.ID.String(),
		})
	}

	return tool, nil
}

func (s *toolService) ListApproved(ctx context.Context, q model.ListToolsQuery) ([]*model.Tool, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 20
	}
	return s.toolRepo.ListApproved(ctx, q)
}

func (s *toolService) ListPending(ctx context.Context) ([]*model.Tool, error) {
	return s.toolRepo.ListPending(ctx)
}

func (s *toolService) ListSubmissions(ctx context.Context, userID uuid.UUID) ([]*model.Tool, error) {
	return s.toolRepo.ListBySubmitter(ctx, userID)
}

// =====================================================
// MODERATION
// =====================================================

func (s *toolService) Approve(ctx context.Context, id, approvedBy uuid.UUID) error {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if tool.Status != model.StatusPending {
		return model.NewInvalidStateError(tool.Status)
	}

	// Paid listings are featured as part of the same status write.
	forceFeatured := tool.ListingType == model.ListingPaid

	matched, err := s.toolRepo.Approve(ctx, id, approvedBy, time.Now(), forceFeatured)
	if err != nil {
		return err
	}
	if !matched {
		// Lost a race with another moderator.
		return model.NewInvalidStateError(tool.Status)
	}

	logger.Info("tool approved", map[string]interface{}{
		"tool_id":  id.String(),
		"featured": forceFeatured,
	})

	return nil
}

func (s *toolService) Reject(ctx context.Context, id uuid.UUID) error {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if tool.Status != model.StatusPending {
		return model.NewInvalidStateError(tool.Status)
	}

	matched, err := s.toolRepo.Reject(ctx, id)
	if err != nil {
		return err
	}
	if !matched {
		return model.NewInvalidStateError(tool.Status)
	}

	return nil
}

func (s *toolService) Archive(ctx context.Context, id uuid.UUID) error {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if tool.Status != model.StatusApproved {
		return model.NewInvalidStateError(tool.Status)
	}

	matched, err := s.toolRepo.Archive(ctx, id)
	if err != nil {
		return err
	}
	if !matched {
		return model.NewInvalidStateError(tool.Status)
	}

	return nil
}

func (s *toolService) ToggleFeatured(ctx context.Context, id uuid.UUID) (bool, error) {
	featured, matched, err := s.toolRepo.ToggleFeatured(ctx, id)
	if err != nil {
		return false, err
	}
	if matched {
		return featured, nil
	}

	// The conditional update missed. Tell the caller why.
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return false, model.NewInvalidStateError(tool.Status)
}

// =====================================================
// RATING AGGREGATE
// =====================================================

// RecomputeRating recalculates rating_avg and rating_count from the
// approved reviews. When no approved reviews exist the previous
// aggregate is left in place rather than zeroed.
func (s *toolService) RecomputeRating(ctx context.Context, toolID uuid.UUID) error {
	ratings, err := s.ratings.ApprovedRatings(ctx, toolID)
	if err != nil {
		return fmt.Errorf("failed to read approved ratings: %w", err)
	}

	if len(ratings) == 0 {
		return nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	// Round half up to one decimal.
	avg := math.Floor(float64(sum)/float64(len(ratings))*10+0.5) / 10

	return s.toolRepo.UpdateRatingAggregate(ctx, toolID, avg, len(ratings))
}

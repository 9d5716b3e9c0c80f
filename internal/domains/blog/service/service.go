package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"toolindex-backend/internal/domains/blog/model"
	"toolindex-backend/internal/domains/blog/repository"
	profilerepo "toolindex-backend/internal/domains/profile/repository"
	"toolindex-backend/internal/shared/enrich"
)

type blogService struct {
	blogRepo    repository.BlogRepository
	profileRepo profilerepo.ProfileRepository
}

func NewBlogService(blogRepo repository.BlogRepository, profileRepo profilerepo.ProfileRepository) BlogService {
	return &blogService{
		blogRepo:    blogRepo,
		profileRepo: profileRepo,
	}
}

func (s *blogService) ListPublished(ctx context.Context, page, limit int) ([]*model.Post, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.blogRepo.ListPublished(ctx, page, limit)
}

func (s *blogService) GetPublishedBySlug(ctx context.Context, slug string) (*model.Post, []*model.EnrichedComment, error) {
	post, err := s.blogRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	comments, err := s.blogRepo.ListCommentsByPost(ctx, post.ID)
	if err != nil {
		return nil, nil, err
	}

	authors, err := enrich.Resolve(ctx, comments,
		func(cm *model.Comment) (uuid.UUID, bool) { return cm.UserID, true },
		s.profileRepo.GetSummaries,
	)
	if err != nil {
		return nil, nil, err
	}

	enriched := make([]*model.EnrichedComment, 0, len(comments))
	for _, cm := range comments {
		e := &model.EnrichedComment{Comment: *cm}
		if a, ok := authors[cm.UserID]; ok {
			e.Author = &a
		}
		enriched = append(enriched, e)
	}

	return post, enriched, nil
}

func (s *blogService) CreateComment(ctx context.Context, postID, userID uuid.UUID, req model.CreateCommentRequest) (*model.Comment, error) {
	post, err := s.blogRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Status != model.StatusPublished {
		return nil, model.ErrPostNotFound
	}

	comment := &model.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		UserID:    userID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	if err := s.blogRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *blogService) LikeComment(ctx context.Context, commentID uuid.UUID) (int, error) {
	return s.blogRepo.IncrementCommentLikes(ctx, commentID)
}

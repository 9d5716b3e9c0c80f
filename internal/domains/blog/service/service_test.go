package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"toolindex-backend/internal/domains/blog/model"
	profilemodel "toolindex-backend/internal/domains/profile/model"
	"toolindex-backend/internal/shared/authz"
)

type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) ListPublished(ctx context.Context, page, limit int) ([]*model.Post, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*model.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlogRepository) GetPublishedBySlug(ctx context.Context, slug string) (*model.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockBlogRepository) GetPostByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockBlogRepository) CreateComment(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockBlogRepository) ListCommentsByPost(ctx context.Context, postID uuid.UUID) ([]*model.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockBlogRepository) IncrementCommentLikes(ctx context.Context, commentID uuid.UUID) (int, error) {
	args := m.Called(ctx, commentID)
	return args.Int(0), args.Error(1)
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

func TestBlogService_LikeComment(t *testing.T) {
	t.Run("every like counts, including repeats", func(t *testing.T) {
		blogRepo := new(MockBlogRepository)
		svc := NewBlogService(blogRepo, new(MockProfileRepository))

		commentID := uuid.New()
		blogRepo.On("IncrementCommentLikes", mock.Anything, commentID).Return(1, nil).Once()
		blogRepo.On("IncrementCommentLikes", mock.Anything, commentID).Return(2, nil).Once()

		first, err := svc.LikeComment(context.Background(), commentID)
		assert.NoError(t, err)
		assert.Equal(t, 1, first)

		// Same caller liking again still bumps the counter.
		second, err := svc.LikeComment(context.Background(), commentID)
		assert.NoError(t, err)
		assert.Equal(t, 2, second)
	})

	t.Run("missing comment", func(t *testing.T) {
		blogRepo := new(MockBlogRepository)
		svc := NewBlogService(blogRepo, new(MockProfileRepository))

		commentID := uuid.New()
		blogRepo.On("IncrementCommentLikes", mock.Anything, commentID).
			Return(0, model.ErrCommentNotFound)

		_, err := svc.LikeComment(context.Background(), commentID)

		assert.ErrorIs(t, err, model.ErrCommentNotFound)
	})
}

func TestBlogService_CreateComment(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()
	req := model.CreateCommentRequest{Content: "Great read."}

	t.Run("comments attach to published posts", func(t *testing.T) {
		blogRepo := new(MockBlogRepository)
		svc := NewBlogService(blogRepo, new(MockProfileRepository))

		blogRepo.On("GetPostByID", mock.Anything, postID).
			Return(&model.Post{ID: postID, Status: model.StatusPublished}, nil)
		blogRepo.On("CreateComment", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)

		comment, err := svc.CreateComment(context.Background(), postID, userID, req)

		assert.NoError(t, err)
		assert.Equal(t, postID, comment.PostID)
		assert.Equal(t, 0, comment.LikesCount)
	})

	t.Run("drafts do not accept comments", func(t *testing.T) {
		blogRepo := new(MockBlogRepository)
		svc := NewBlogService(blogRepo, new(MockProfileRepository))

		blogRepo.On("GetPostByID", mock.Anything, postID).
			Return(&model.Post{ID: postID, Status: model.StatusDraft}, nil)

		_, err := svc.CreateComment(context.Background(), postID, userID, req)

		assert.ErrorIs(t, err, model.ErrPostNotFound)
		blogRepo.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
	})
}

func TestBlogService_GetPublishedBySlug(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	profileRepo := new(MockProfileRepository)
	svc := NewBlogService(blogRepo, profileRepo)

	postID := uuid.New()
	author := uuid.New()
	blogRepo.On("GetPublishedBySlug", mock.Anything, "hello-world").
		Return(&model.Post{ID: postID, Slug: "hello-world", Status: model.StatusPublished}, nil)
	blogRepo.On("ListCommentsByPost", mock.Anything, postID).Return([]*model.Comment{
		{ID: uuid.New(), PostID: postID, UserID: author, Content: "First!"},
	}, nil)
	profileRepo.On("GetSummaries", mock.Anything, mock.AnythingOfType("[]uuid.UUID")).
		Return(map[uuid.UUID]profilemodel.ProfileSummary{
			author: {ID: author, DisplayName: "Alex"},
		}, nil)

	post, comments, err := svc.GetPublishedBySlug(context.Background(), "hello-world")

	assert.NoError(t, err)
	assert.Equal(t, "hello-world", post.Slug)
	assert.Len(t, comments, 1)
	assert.NotNil(t, comments[0].Author)
	assert.Equal(t, "Alex", comments[0].Author.DisplayName)
}

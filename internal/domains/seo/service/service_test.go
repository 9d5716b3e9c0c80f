package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"toolindex-backend/internal/domains/seo/repository"
)

type MockSEORepository struct {
	mock.Mock
}

func (m *MockSEORepository) ApprovedToolSlugs(ctx context.Context) ([]repository.SlugEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.SlugEntry), args.Error(1)
}

func (m *MockSEORepository) CategorySlugs(ctx context.Context) ([]repository.SlugEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.SlugEntry), args.Error(1)
}

func (m *MockSEORepository) PublishedPostSlugs(ctx context.Context) ([]repository.SlugEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.SlugEntry), args.Error(1)
}

// fakeCache is an in-memory stand-in for redis.
type fakeCache struct {
	store map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]string{}}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	v, ok := f.store[key]
	if !ok {
		return false, nil
	}
	if s, ok := dest.(*string); ok {
		*s = v
	}
	return true, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if s, ok := value.(string); ok {
		f.store[key] = s
	}
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.store, k)
	}
	return nil
}

func (f *fakeCache) Ping(ctx context.Context) error { return nil }

func TestSEOService_Sitemap(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("contains only live content", func(t *testing.T) {
		repo := new(MockSEORepository)
		svc := NewSEOService(repo, newFakeCache(), "https://toolindex.dev")

		repo.On("ApprovedToolSlugs", mock.Anything).Return([]repository.SlugEntry{
			{Slug: "example-tool", UpdatedAt: now},
		}, nil)
		repo.On("CategorySlugs", mock.Anything).Return([]repository.SlugEntry{
			{Slug: "writing", UpdatedAt: now},
		}, nil)
		repo.On("PublishedPostSlugs", mock.Anything).Return([]repository.SlugEntry{
			{Slug: "launch-week", UpdatedAt: now},
		}, nil)

		body, err := svc.Sitemap(context.Background())

		assert.NoError(t, err)
		xml := string(body)
		assert.Contains(t, xml, "<?xml")
		assert.Contains(t, xml, "https://toolindex.dev/tools/example-tool")
		assert.Contains(t, xml, "https://toolindex.dev/categories/writing")
		assert.Contains(t, xml, "https://toolindex.dev/blog/launch-week")
		assert.Contains(t, xml, "<lastmod>2026-08-01</lastmod>")
		assert.Contains(t, xml, "<priority>1.0</priority>")
		assert.Contains(t, xml, "<changefreq>weekly</changefreq>")
		assert.Contains(t, xml, "<changefreq>monthly</changefreq>")
	})

	t.Run("second request is served from cache", func(t *testing.T) {
		repo := new(MockSEORepository)
		svc := NewSEOService(repo, newFakeCache(), "https://toolindex.dev")

		repo.On("ApprovedToolSlugs", mock.Anything).Return([]repository.SlugEntry{}, nil).Once()
		repo.On("CategorySlugs", mock.Anything).Return([]repository.SlugEntry{}, nil).Once()
		repo.On("PublishedPostSlugs", mock.Anything).Return([]repository.SlugEntry{}, nil).Once()

		first, err := svc.Sitemap(context.Background())
		assert.NoError(t, err)

		second, err := svc.Sitemap(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, first, second)
		repo.AssertExpectations(t)
	})
}

func TestSEOService_Robots(t *testing.T) {
	svc := NewSEOService(new(MockSEORepository), newFakeCache(), "https://toolindex.dev")

	body := string(svc.Robots())

	assert.True(t, strings.Contains(body, "Disallow: /admin"))
	assert.True(t, strings.Contains(body, "Sitemap: https://toolindex.dev/sitemap.xml"))
}

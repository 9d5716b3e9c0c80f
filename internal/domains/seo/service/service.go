package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"toolindex-backend/internal/domains/seo/repository"
	pkgcache "toolindex-backend/pkg/cache"
)

const (
	sitemapCacheKey = "seo:sitemap"
	sitemapTTL      = 24 * time.Hour
)

// urlset is the sitemap.org XML document.
type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type SEOService interface {
	// Sitemap returns the cached sitemap XML, rebuilding on a miss
	Sitemap(ctx context.Context) ([]byte, error)

	// RebuildSitemap regenerates the sitemap and refreshes the cache
	RebuildSitemap(ctx context.Context) ([]byte, error)

	// Robots returns the robots.txt body
	Robots() []byte
}

type seoService struct {
	seoRepo repository.SEORepository
	cache   pkgcache.Cache
	baseURL string
}

func NewSEOService(seoRepo repository.SEORepository, cache pkgcache.Cache, baseURL string) SEOService {
	return &seoService{
		seoRepo: seoRepo,
		cache:   cache,
		baseURL: baseURL,
	}
}

func (s *seoService) Sitemap(ctx context.Context) ([]byte, error) {
	var cached string
	if hit, err := s.cache.Get(ctx, sitemapCacheKey, &cached); err == nil && hit {
		return []byte(cached), nil
	}

	return s.RebuildSitemap(ctx)
}

func (s *seoService) RebuildSitemap(ctx context.Context) ([]byte, error) {
	var tools, categories, posts []repository.SlugEntry

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tools, err = s.seoRepo.ApprovedToolSlugs(gctx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.seoRepo.CategorySlugs(gctx)
		return err
	})
	g.Go(func() (err error) {
		posts, err = s.seoRepo.PublishedPostSlugs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	set := urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	set.URLs = append(set.URLs,
		sitemapURL{Loc: s.baseURL + "/", ChangeFreq: "daily", Priority: "1.0"},
		sitemapURL{Loc: s.baseURL + "/tools", ChangeFreq: "daily", Priority: "0.9"},
		sitemapURL{Loc: s.baseURL + "/blog", ChangeFreq: "daily", Priority: "0.8"},
		sitemapURL{Loc: s.baseURL + "/contact", ChangeFreq: "monthly", Priority: "0.5"},
	)
	for _, t := range tools {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/tools/%s", s.baseURL, t.Slug),
			LastMod:    t.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}
	for _, c := range categories {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/categories/%s", s.baseURL, c.Slug),
			ChangeFreq: "weekly",
			Priority:   "0.6",
		})
	}
	for _, p := range posts {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/blog/%s", s.baseURL, p.Slug),
			LastMod:    p.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	out := append([]byte(xml.Header), body...)

	// A stale cache is served until the nightly rebuild; failures
	// here only cost a rebuild on the next request.
	_ = s.cache.Set(ctx, sitemapCacheKey, string(out), sitemapTTL)

	return out, nil
}

func (s *seoService) Robots() []byte {
	return []byte(fmt.Sprintf(`User-agent: *
Allow: /
Disallow: /admin
Disallow: /api/

Sitemap: %s/sitemap.xml
`, s.baseURL))
}

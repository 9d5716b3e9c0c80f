package model

import (
	"errors"
	"strings"
)

// Error codes
const (
	ErrCodeInvalidType = "UPLOAD001"
	ErrCodeTooLarge    = "UPLOAD002"
	ErrCodeNoFile      = "UPLOAD003"
)

var (
	ErrInvalidType = errors.New("file type not allowed")
	ErrTooLarge    = errors.New("file exceeds size limit")
)

// Kind describes one upload endpoint's rules.
type Kind struct {
	Prefix  string
	MaxSize int64
	// Allowed MIME types. A single "image/*" entry accepts any image.
	Allowed []string
}

const mb = 1 << 20

var (
	// Content images for tool listings. SVG allowed for logos.
	KindContent = Kind{
		Prefix:  "content",
		MaxSize: 5 * mb,
		Allowed: []string{"image/png", "image/jpeg", "image/webp", "image/svg+xml"},
	}

	KindBlogCover = Kind{
		Prefix:  "blog-covers",
		MaxSize: 5 * mb,
		Allowed: []string{"image/png", "image/jpeg", "image/webp"},
	}

	KindTestimonial = Kind{
		Prefix:  "testimonials",
		MaxSize: 2 * mb,
		Allowed: []string{"image/*"},
	}
)

// Accepts reports whether the declared MIME type passes the kind's
// allow-list.
func (k Kind) Accepts(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	for _, a := range k.Allowed {
		if a == ct {
			return true
		}
		if a == "image/*" && strings.HasPrefix(ct, "image/") {
			return true
		}
	}
	return false
}

type UploadResponse struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Great Tool!", "my-great-tool"},
		{"  spaces  everywhere  ", "spaces-everywhere"},
		{"Already-Slugged", "already-slugged"},
		{"C++ & Go: a comparison", "c-go-a-comparison"},
		{"UPPER", "upper"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input %q", tc.in)
	}
}

func TestGenerateSlug_Truncates(t *testing.T) {
	long := strings.Repeat("word ", 50)
	slug := GenerateSlug(long)
	assert.LessOrEqual(t, len(slug), 100)
	assert.False(t, strings.HasSuffix(slug, "-"))
}

func TestGenerateObjectKey(t *testing.T) {
	a := GenerateObjectKey("testimonials", "photo.PNG")
	b := GenerateObjectKey("testimonials", "photo.PNG")

	assert.True(t, strings.HasPrefix(a, "testimonials/"))
	assert.True(t, strings.HasSuffix(a, ".png"))
	// Keys never collide, so uploads never overwrite.
	assert.NotEqual(t, a, b)
}

package utils

import (
	crand "crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// GenerateObjectKey builds a storage key under prefix that cannot
// collide with a previous upload: unix timestamp plus random suffix.
func GenerateObjectKey(prefix, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	b := make([]byte, 6)
	_, _ = crand.Read(b)
	return fmt.Sprintf("%s/%d-%s%s", prefix, time.Now().Unix(), hex.EncodeToString(b), ext)
}

// ParsePagination clamps page and limit query values to sane ranges.
func ParsePagination(pageStr, limitStr string) (page, limit int) {
	page = 1
	limit = 20
	if _, err := fmt.Sscanf(pageStr, "%d", &page); err != nil || page < 1 {
		page = 1
	}
	if _, err := fmt.Sscanf(limitStr, "%d", &limit); err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"toolindex-backend/pkg/jwt"
)

func TestAuthMiddleware(t *testing.T) {
	manager := jwt.NewManager("test-secret")

	t.Run("valid token resolves caller id", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		userID := uuid.New()
		token, err := manager.GenerateAccessToken(userID.String(), "user@example.com")
		assert.NoError(t, err)

		var seen *uuid.UUID
		router := gin.New()
		router.GET("/protected", AuthMiddleware(manager), func(c *gin.Context) {
			seen = CallerID(c)
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		if assert.NotNil(t, seen) {
			assert.Equal(t, userID, *seen)
		}
	})

	t.Run("missing header rejected", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/protected", AuthMiddleware(manager), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-uuid subject rejected", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		token, err := manager.GenerateAccessToken("not-a-uuid", "user@example.com")
		assert.NoError(t, err)

		reached := false
		router := gin.New()
		router.GET("/protected", AuthMiddleware(manager), func(c *gin.Context) {
			reached = true
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, reached)
	})

	t.Run("wrong scheme rejected", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/protected", AuthMiddleware(manager), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	manager := jwt.NewManager("test-secret")

	t.Run("anonymous request passes with nil caller", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		var seen *uuid.UUID
		router := gin.New()
		router.GET("/public", OptionalAuthMiddleware(manager), func(c *gin.Context) {
			seen = CallerID(c)
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, seen)
	})

	t.Run("valid token resolves caller id", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		userID := uuid.New()
		token, err := manager.GenerateAccessToken(userID.String(), "user@example.com")
		assert.NoError(t, err)

		var seen *uuid.UUID
		router := gin.New()
		router.GET("/public", OptionalAuthMiddleware(manager), func(c *gin.Context) {
			seen = CallerID(c)
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		if assert.NotNil(t, seen) {
			assert.Equal(t, userID, *seen)
		}
	})
}

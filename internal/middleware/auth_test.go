package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/Henry-Iheonu/Events/internal/token"
)

func setupAuthRouter(t *testing.T, tokens *token.Manager) http.Handler {
	t.Helper()

	r := ginext.New("test")
	r.GET("/whoami", Auth(tokens), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"user_id": UserID(c)})
	})
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := token.NewManager("secret", 15*time.Minute, time.Hour)
	r := setupAuthRouter(t, tokens)

	pair, err := tokens.NewPair("u1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Access)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := token.NewManager("secret", 15*time.Minute, time.Hour)
	r := setupAuthRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_BadHeaderFormat(t *testing.T) {
	tokens := token.NewManager("secret", 15*time.Minute, time.Hour)
	r := setupAuthRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_RejectsRefreshToken(t *testing.T) {
	tokens := token.NewManager("secret", 15*time.Minute, time.Hour)
	r := setupAuthRouter(t, tokens)

	pair, err := tokens.NewPair("u1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Refresh)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_GarbageToken(t *testing.T) {
	tokens := token.NewManager("secret", 15*time.Minute, time.Hour)
	r := setupAuthRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

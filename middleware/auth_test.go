package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newAuthRouter(gotUserID *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", ValidateToken, func(c *gin.Context) {
		id, _ := c.Get("user_id")
		*gotUserID, _ = id.(string)
		c.JSON(http.StatusOK, gin.H{"user_id": *gotUserID})
	})
	return r
}

func doAuth(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateToken_SetsUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	var gotUserID string
	r := newAuthRouter(&gotUserID)

	token := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := doAuth(r, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", gotUserID)
}

func TestValidateToken_RejectsMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	var gotUserID string
	r := newAuthRouter(&gotUserID)

	w := doAuth(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	var gotUserID string
	r := newAuthRouter(&gotUserID)

	token := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := doAuth(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateToken_RejectsMissingUserIDClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	var gotUserID string
	r := newAuthRouter(&gotUserID)

	token := signToken(t, "test-secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w := doAuth(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateToken_RejectsNonStringUserIDClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	var gotUserID string
	r := newAuthRouter(&gotUserID)

	token := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := doAuth(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateToken_RejectsEmptyUserIDClaim(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	var gotUserID string
	r := newAuthRouter(&gotUserID)

	token := signToken(t, "test-secret", jwt.MapClaims{
		"user_id": "",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	w := doAuth(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

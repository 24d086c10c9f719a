package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "editor1", "EDITOR")
	require.NoError(t, err)

	parsed, err := ValidateToken(token)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "editor1", claims["username"])
	assert.Equal(t, "EDITOR", claims["role"])
}

func TestValidateTokenRejectsOtherSigningMethod(t *testing.T) {
	// A token signed with any method but HS256 must fail even when it
	// carries a valid signature under the shared secret.
	claims := jwt.MapClaims{"sub": 1, "username": "editor1", "role": "EDITOR"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func newGuardedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/guarded", RequireAuthWithRoles(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "actor": c.GetString("username")})
	})
	return r
}

func doGuarded(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthWithRolesAllowsListedRole(t *testing.T) {
	r := newGuardedRouter("ADMIN", "EDITOR")

	token, err := GenerateToken(1, "editor1", "EDITOR")
	require.NoError(t, err)
	w := doGuarded(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "editor1")
}

func TestRequireAuthWithRolesRejectsOtherRole(t *testing.T) {
	r := newGuardedRouter("ADMIN", "EDITOR")

	token, err := GenerateToken(2, "viewer", "USUARIO")
	require.NoError(t, err)
	w := doGuarded(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAuthRejectsMissingOrMangledToken(t *testing.T) {
	r := newGuardedRouter("ADMIN")

	assert.Equal(t, http.StatusUnauthorized, doGuarded(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGuarded(r, "Bearer not-a-token").Code)
	assert.Equal(t, http.StatusUnauthorized, doGuarded(r, "Basic abc").Code)
}

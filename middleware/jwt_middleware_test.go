package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/beyazservis/servis-go/models"
	"github.com/beyazservis/servis-go/types"
)

func init() {
	gin.SetMode(gin.TestMode)
	jwtKey = []byte("test-secret")
}

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(), func(c *gin.Context) {
		claims := c.MustGet("claims").(*types.Claims)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})
	return r
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(2, "yildiz", models.UserRoleBayi, "Yildiz Ticaret")
	assert.NoError(t, err)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(2), claims.UserID)
	assert.Equal(t, "yildiz", claims.Username)
	assert.Equal(t, models.UserRoleBayi, claims.Rol)
	assert.Equal(t, "Yildiz Ticaret", claims.BayiAdi)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	r := protectedRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing token")
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	r := protectedRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_GarbageToken(t *testing.T) {
	r := protectedRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	r := protectedRouter()

	token, err := GenerateToken(1, "tekin", models.UserRoleUser, "")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tekin")
}

func TestAuthorizeAdmin(t *testing.T) {
	r := gin.New()
	r.GET("/admin", JWTAuthMiddleware(), AuthorizeAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	adminToken, _ := GenerateToken(1, "patron", models.UserRoleAdmin, "")
	userToken, _ := GenerateToken(2, "tekin", models.UserRoleUser, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/dapizza/storefront/controllers"
	"github.com/dapizza/storefront/middlewares"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	authCtrl := controllers.NewAuthController()
	router.POST("/admin/login", authCtrl.Login)

	admin := router.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())
	admin.POST("/logout", authCtrl.Logout)
	admin.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
	})
	return router
}

func login(t *testing.T, router *gin.Engine, password string) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, router, "POST", "/admin/login", map[string]string{"password": password})
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "kafedaki")
	router := setupAuthRouter()

	w := login(t, router, "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = login(t, router, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginIssuesWorkingToken(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "kafedaki")
	router := setupAuthRouter()

	w := login(t, router, "kafedaki")
	assert.Equal(t, http.StatusOK, w.Code)

	token, ok := decodeData(t, w)["token"].(string)
	assert.True(t, ok)
	assert.NotEmpty(t, token)

	// Token opens the admin group.
	req, _ := http.NewRequest("GET", "/admin/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "admin", resp["role"])
}

func TestAdminGroupRequiresToken(t *testing.T) {
	router := setupAuthRouter()

	req, _ := http.NewRequest("GET", "/admin/whoami", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req, _ = http.NewRequest("GET", "/admin/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "kafedaki")
	router := setupAuthRouter()

	w := login(t, router, "kafedaki")
	token := decodeData(t, w)["token"].(string)

	req, _ := http.NewRequest("POST", "/admin/logout", bytes.NewBuffer(nil))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The blacklisted token no longer opens the group.
	req, _ = http.NewRequest("GET", "/admin/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
	router := setupAuthRouter()

	w := login(t, router, "s3cret")
	assert.Equal(t, http.StatusOK, w.Code)

	w = login(t, router, "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

package controllers

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/dapizza/storefront/utils"
)

// defaultAdminPassword matches the password the original admin screen
// shipped with; override it with ADMIN_PASSWORD or, better,
// ADMIN_PASSWORD_HASH.
const defaultAdminPassword = "Da-pizza6969"

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// checkPassword prefers a bcrypt hash from the environment and falls
// back to a constant-time comparison against the plain secret. The
// gate is a single shared password; there are no user accounts.
func checkPassword(password string) bool {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}

	expected := os.Getenv("ADMIN_PASSWORD")
	if expected == "" {
		expected = defaultAdminPassword
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(expected)) == 1
}

// Login checks the admin password and returns a session token.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !checkPassword(input.Password) {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken("admin")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Println("Admin logged in")
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{"token": token})
}

// Logout revokes the current session token.
func (ac *AuthController) Logout(c *gin.Context) {
	token := c.GetString("token")
	if token != "" {
		utils.BlacklistToken(token)
	}
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

package api

import (
	"net/http"
	"time"

	"splitlog/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler issues JWTs for the single configured user.
type AuthHandler struct {
	jwtCfg       config.JWTConfig
	passwordHash string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(jwtCfg config.JWTConfig, passwordHash string) *AuthHandler {
	return &AuthHandler{jwtCfg: jwtCfg, passwordHash: passwordHash}
}

// LoginRequest is the expected JSON for logging in.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login checks the owner password against the configured bcrypt hash and
// returns a signed JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)); err != nil {
		abortWithError(c, http.StatusUnauthorized, "Invalid password")
		return
	}

	expiresAt := time.Now().Add(h.jwtCfg.Expiration)
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "owner",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.jwtCfg.Secret))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to sign token.")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}

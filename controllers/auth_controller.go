package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fooddelivery/identity"
	"fooddelivery/services"
)

type AuthController struct {
	provider identity.Provider
	users    *services.UserService
}

func NewAuthController(provider identity.Provider, users *services.UserService) *AuthController {
	return &AuthController{provider: provider, users: users}
}

// POST /auth/login {"token": "..."} verifies a provider-issued token
// server-side and resolves the store user whose username is the token's
// email. 401 for a bad token, 404 when no user mirrors the account.
func (h *AuthController) Login(c *gin.Context) {
	var body struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	token, err := h.provider.VerifyToken(ctx, body.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	user, err := h.users.FindByUsername(ctx, token.Email)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username})
}

// POST /auth/token {"username", "password"} signs in against the identity
// provider and hands the token back to the browser.
func (h *AuthController) Token(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	token, err := h.provider.SignIn(ctx, body.Username, body.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

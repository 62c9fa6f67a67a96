package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authpkg "github.com/astopaal/meksut-order-management/auth"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	creds  authpkg.Credentials
	secret string
}

func NewAuthHandler(creds authpkg.Credentials, secret string) *AuthHandler {
	return &AuthHandler{creds: creds, secret: secret}
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies the operator credentials and issues a bearer token.
func (h *AuthHandler) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p loginPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}

		if err := h.creds.Verify(p.Username, p.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		token, err := authpkg.SignJWT(h.secret, p.Username, tokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "expires_in": int(tokenTTL.Seconds())})
	}
}

package middleware

import (
	"Alkhabir/models"
	"Alkhabir/services"
	"Alkhabir/utils"
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
)

// TokenVerifier checks Firebase ID tokens. *auth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) < 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

// AuthMiddleware verifies the Firebase ID token and stores "userId" and
// "profile" in the context.
func AuthMiddleware(verifier TokenVerifier, users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		idToken := bearerToken(c)
		if idToken == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization token is required")
			return
		}

		token, err := verifier.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set("userId", token.UID)
		c.Set("profile", users.Profile(token))
		c.Next()
	}
}

// AdminMiddleware accepts an admin console session token, or a Firebase ID
// token whose profile resolves to the admin role. Either source may be nil.
func AdminMiddleware(admins *services.AdminService, verifier TokenVerifier, users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization token is required")
			return
		}

		if admins != nil {
			if claims, err := admins.ParseToken(tokenString); err == nil {
				c.Set("adminId", claims.Subject)
				c.Next()
				return
			}
		}

		if verifier != nil && users != nil {
			if token, err := verifier.VerifyIDToken(c.Request.Context(), tokenString); err == nil {
				profile := users.Profile(token)
				if profile.Role == models.RoleAdmin {
					c.Set("userId", token.UID)
					c.Set("profile", profile)
					c.Set("adminId", token.UID)
					c.Next()
					return
				}
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "Admin access required")
	}
}

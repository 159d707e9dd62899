package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	apiError "github.com/gracehq/prayerhub/errors"
	"github.com/gracehq/prayerhub/models"
	"github.com/gracehq/prayerhub/server/response"
	"github.com/gracehq/prayerhub/services/jwt"
)

const (
	contextUserID  = "user_id"
	contextUser    = "user"
	contextIsAdmin = "is_admin"
	contextToken   = "access_token"
)

// Authorize resolves the bearer token to a user and stores the identity
// in the request context. Blacklisted tokens and disabled accounts are
// rejected here, before any handler runs.
func (s *Server) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := getTokenFromHeader(c)
		if err != nil {
			respondAndAbort(c, "unauthorized", http.StatusUnauthorized, nil, apiError.ErrUnauthorized)
			return
		}
		if s.AuthRepository.TokenInBlacklist(token) {
			respondAndAbort(c, "token expired", http.StatusUnauthorized, nil, apiError.ErrUnauthorized)
			return
		}
		claims, err := jwt.ValidateAndGetClaims(token, s.Config.JWTSecret)
		if err != nil {
			respondAndAbort(c, "invalid token", http.StatusUnauthorized, nil, apiError.ErrUnauthorized)
			return
		}
		userIDClaim, ok := claims["user_id"].(float64)
		if !ok {
			respondAndAbort(c, "invalid token", http.StatusUnauthorized, nil, apiError.ErrUnauthorized)
			return
		}
		user, ferr := s.AuthRepository.FindUserByID(uint(userIDClaim))
		if ferr != nil {
			respondAndAbort(c, "unauthorized", http.StatusUnauthorized, nil, apiError.ErrUnauthorized)
			return
		}

		c.Set(contextUserID, user.ID)
		c.Set(contextUser, user)
		c.Set(contextIsAdmin, user.IsAdmin())
		c.Set(contextToken, token)
		c.Next()
	}
}

// AdminOnly assumes Authorize already ran.
func (s *Server) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdminFromCtx(c) {
			respondAndAbort(c, "admin access required", http.StatusForbidden, nil, apiError.ErrForbidden)
			return
		}
		c.Next()
	}
}

func getTokenFromHeader(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("missing authorization header")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", fmt.Errorf("malformed authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

func respondAndAbort(c *gin.Context, message string, status int, data interface{}, e *apiError.Error) {
	response.JSON(c, message, status, data, []string{e.Message})
	c.Abort()
}

func userIDFromCtx(c *gin.Context) uint {
	return c.GetUint(contextUserID)
}

func userFromCtx(c *gin.Context) *models.User {
	if v, exists := c.Get(contextUser); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

func isAdminFromCtx(c *gin.Context) bool {
	return c.GetBool(contextIsAdmin)
}

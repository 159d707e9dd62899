package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apiError "github.com/gracehq/prayerhub/errors"
	"github.com/gracehq/prayerhub/models"
	"github.com/gracehq/prayerhub/server/response"
)

func (s *Server) handleSignup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			response.JSON(c, "invalid signup payload", http.StatusBadRequest, nil, []string{err.Error()})
			return
		}
		created, apiErr := s.AuthService.SignupUser(&user)
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "signup successful", http.StatusCreated, created, nil)
	}
}

func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.LoginRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			response.JSON(c, "invalid login payload", http.StatusBadRequest, nil, []string{err.Error()})
			return
		}
		loginResponse, apiErr := s.AuthService.LoginUser(&request)
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "login successful", http.StatusOK, loginResponse, nil)
	}
}

func (s *Server) handleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := userFromCtx(c)
		token := c.GetString(contextToken)
		if user == nil || token == "" {
			response.JSON(c, "unauthorized", http.StatusUnauthorized, nil, []string{apiError.ErrUnauthorized.Message})
			return
		}
		if apiErr := s.AuthService.LogoutUser(user, token); apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "logout successful", http.StatusOK, nil, nil)
	}
}

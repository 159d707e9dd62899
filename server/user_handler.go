package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gracehq/prayerhub/models"
	"github.com/gracehq/prayerhub/server/response"
)

func (s *Server) handleGetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, apiErr := s.AuthService.GetProfile(userIDFromCtx(c))
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "profile retrieved", http.StatusOK, user, nil)
	}
}

func (s *Server) handleUpdateProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.EditProfileRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			response.JSON(c, "invalid profile payload", http.StatusBadRequest, nil, []string{err.Error()})
			return
		}
		user, apiErr := s.AuthService.UpdateProfile(userIDFromCtx(c), &request)
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "profile updated", http.StatusOK, user, nil)
	}
}

func (s *Server) handleChangePassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.ChangePasswordRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			response.JSON(c, "invalid password payload", http.StatusBadRequest, nil, []string{err.Error()})
			return
		}
		if apiErr := s.AuthService.ChangePassword(userIDFromCtx(c), &request); apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "password changed", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleGetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid user id", http.StatusBadRequest, nil, nil)
			return
		}
		user, apiErr := s.AuthService.GetProfile(id)
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		publicProfile := models.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Role:      user.Role,
		}
		response.JSON(c, "user retrieved", http.StatusOK, publicProfile, nil)
	}
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gracehq/prayerhub/models"
	"github.com/gracehq/prayerhub/server/response"
)

func (s *Server) handleAdminAnalytics() gin.HandlerFunc {
	return func(c *gin.Context) {
		analytics, apiErr := s.AdminService.GetAnalytics()
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "analytics retrieved", http.StatusOK, analytics, nil)
	}
}

func (s *Server) handleAdminListUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, size := pagingParams(c)
		users, total, apiErr := s.AdminService.ListUsers(c.Query("search"), page, size)
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "users retrieved", http.StatusOK, gin.H{
			"users": users,
			"total": total,
			"page":  page,
			"size":  size,
		}, nil)
	}
}

func (s *Server) handleAdminToggleUserStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid user id", http.StatusBadRequest, nil, nil)
			return
		}
		user, apiErr := s.AdminService.ToggleUserStatus(id)
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "user status updated", http.StatusOK, user, nil)
	}
}

func (s *Server) handleAdminUpdateUserRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid user id", http.StatusBadRequest, nil, nil)
			return
		}
		var request models.UpdateRoleRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			response.JSON(c, "invalid role payload", http.StatusBadRequest, nil, []string{err.Error()})
			return
		}
		user, apiErr := s.AdminService.UpdateUserRole(id, request.Role)
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "user role updated", http.StatusOK, user, nil)
	}
}

func (s *Server) handleAdminListPrayerRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, size := pagingParams(c)
		requests, total, apiErr := s.AdminService.ListAllRequests(c.Query("visibility"), page, size)
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "prayer requests retrieved", http.StatusOK, gin.H{
			"requests": requests,
			"total":    total,
			"page":     page,
			"size":     size,
		}, nil)
	}
}

func (s *Server) handleAdminDeletePrayerRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid prayer request id", http.StatusBadRequest, nil, nil)
			return
		}
		if apiErr := s.PrayerRequestService.DeletePrayerRequest(id, userIDFromCtx(c), true); apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "prayer request deleted", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleAdminDeleteComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid comment id", http.StatusBadRequest, nil, nil)
			return
		}
		if apiErr := s.CommentService.DeleteComment(id, userIDFromCtx(c), true); apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "comment deleted", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleAdminCreateResource() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ResourceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.JSON(c, "invalid resource payload", http.StatusBadRequest, nil, []string{err.Error()})
			return
		}
		resource, apiErr := s.ResourceService.CreateResource(&input)
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "resource created", http.StatusCreated, resource, nil)
	}
}

func (s *Server) handleAdminListResources() gin.HandlerFunc {
	return func(c *gin.Context) {
		resources, apiErr := s.ResourceService.ListAllResources()
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "resources retrieved", http.StatusOK, resources, nil)
	}
}

func (s *Server) handleAdminUpdateResource() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid resource id", http.StatusBadRequest, nil, nil)
			return
		}
		var input models.ResourceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.JSON(c, "invalid resource payload", http.StatusBadRequest, nil, []string{err.Error()})
			return
		}
		resource, apiErr := s.ResourceService.UpdateResource(id, &input)
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "resource updated", http.StatusOK, resource, nil)
	}
}

func (s *Server) handleAdminDeleteResource() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid resource id", http.StatusBadRequest, nil, nil)
			return
		}
		if apiErr := s.ResourceService.DeleteResource(id); apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "resource deleted", http.StatusOK, nil, nil)
	}
}

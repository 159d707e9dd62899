package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gracehq/prayerhub/models"
	"github.com/gracehq/prayerhub/server/response"
)

func (s *Server) handleCreateGroup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.GroupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.JSON(c, "invalid group payload", http.StatusBadRequest, nil, []string{err.Error()})
			return
		}
		group, apiErr := s.GroupService.CreateGroup(&input, userIDFromCtx(c))
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "group created", http.StatusCreated, group, nil)
	}
}

func (s *Server) handleListGroups() gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, apiErr := s.GroupService.ListGroups(c.Query("search"))
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "groups retrieved", http.StatusOK, groups, nil)
	}
}

func (s *Server) handleListMyGroups() gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, apiErr := s.GroupService.ListMyGroups(userIDFromCtx(c))
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "groups retrieved", http.StatusOK, groups, nil)
	}
}

func (s *Server) handleGetGroup() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid group id", http.StatusBadRequest, nil, nil)
			return
		}
		group, apiErr := s.GroupService.GetGroup(id)
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "group retrieved", http.StatusOK, group, nil)
	}
}

func (s *Server) handleUpdateGroup() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid group id", http.StatusBadRequest, nil, nil)
			return
		}
		var input models.GroupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.JSON(c, "invalid group payload", http.StatusBadRequest, nil, []string{err.Error()})
			return
		}
		group, apiErr := s.GroupService.UpdateGroup(id, &input, userIDFromCtx(c), isAdminFromCtx(c))
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "group updated", http.StatusOK, group, nil)
	}
}

func (s *Server) handleDeleteGroup() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid group id", http.StatusBadRequest, nil, nil)
			return
		}
		if apiErr := s.GroupService.DeleteGroup(id, userIDFromCtx(c), isAdminFromCtx(c)); apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "group deleted", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleJoinGroup() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid group id", http.StatusBadRequest, nil, nil)
			return
		}
		if apiErr := s.GroupService.JoinGroup(id, userIDFromCtx(c)); apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "joined group", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleLeaveGroup() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid group id", http.StatusBadRequest, nil, nil)
			return
		}
		if apiErr := s.GroupService.LeaveGroup(id, userIDFromCtx(c)); apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "left group", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleListGroupPrayerRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid group id", http.StatusBadRequest, nil, nil)
			return
		}
		requests, apiErr := s.PrayerRequestService.ListByGroup(id, userIDFromCtx(c))
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "group prayer requests retrieved", http.StatusOK, requests, nil)
	}
}

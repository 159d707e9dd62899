package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gracehq/prayerhub/models"
	"github.com/gracehq/prayerhub/server/response"
)

func (s *Server) handleCreatePrayerRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.PrayerRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.JSON(c, "invalid prayer request payload", http.StatusBadRequest, nil, []string{err.Error()})
			return
		}
		request, apiErr := s.PrayerRequestService.CreatePrayerRequest(&input, userIDFromCtx(c))
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "prayer request created", http.StatusCreated, request, nil)
	}
}

func (s *Server) handleListPrayerRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, size := pagingParams(c)
		search := c.Query("search")
		requests, total, apiErr := s.PrayerRequestService.ListVisible(userIDFromCtx(c), search, page, size)
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

func (s *Server) handleListMyPrayerRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		requests, apiErr := s.PrayerRequestService.ListMine(userIDFromCtx(c))
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "prayer requests retrieved", http.StatusOK, requests, nil)
	}
}

func (s *Server) handleListAnsweredPrayerRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		requests, apiErr := s.PrayerRequestService.ListAnswered(userIDFromCtx(c))
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "answered prayer requests retrieved", http.StatusOK, requests, nil)
	}
}

func (s *Server) handleGetPrayerRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid prayer request id", http.StatusBadRequest, nil, nil)
			return
		}
		request, apiErr := s.PrayerRequestService.GetPrayerRequest(id, userIDFromCtx(c))
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "prayer request retrieved", http.StatusOK, request, nil)
	}
}

func (s *Server) handleUpdatePrayerRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid prayer request id", http.StatusBadRequest, nil, nil)
			return
		}
		var input models.PrayerRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.JSON(c, "invalid prayer request payload", http.StatusBadRequest, nil, []string{err.Error()})
			return
		}
		request, apiErr := s.PrayerRequestService.UpdatePrayerRequest(id, &input, userIDFromCtx(c), isAdminFromCtx(c))
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "prayer request updated", http.StatusOK, request, nil)
	}
}

func (s *Server) handleDeletePrayerRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid prayer request id", http.StatusBadRequest, nil, nil)
			return
		}
		if apiErr := s.PrayerRequestService.DeletePrayerRequest(id, userIDFromCtx(c), isAdminFromCtx(c)); apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "prayer request deleted", http.StatusOK, nil, nil)
	}
}

func (s *Server) handlePrayForRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid prayer request id", http.StatusBadRequest, nil, nil)
			return
		}
		if apiErr := s.PrayerRequestService.PrayForRequest(id, userIDFromCtx(c)); apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "prayer recorded", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleMarkAnswered() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid prayer request id", http.StatusBadRequest, nil, nil)
			return
		}
		var input models.AnswerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.JSON(c, "invalid answer payload", http.StatusBadRequest, nil, []string{err.Error()})
			return
		}
		request, apiErr := s.PrayerRequestService.MarkAnswered(id, &input, userIDFromCtx(c), isAdminFromCtx(c))
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "prayer request marked answered", http.StatusOK, request, nil)
	}
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gracehq/prayerhub/server/response"
)

func (s *Server) handleListNotifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		notifications, apiErr := s.NotificationService.ListNotifications(userIDFromCtx(c))
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "notifications retrieved", http.StatusOK, notifications, nil)
	}
}

func (s *Server) handleUnreadCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		count, apiErr := s.NotificationService.UnreadCount(userIDFromCtx(c))
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "unread count retrieved", http.StatusOK, gin.H{"unread_count": count}, nil)
	}
}

func (s *Server) handleMarkNotificationRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid notification id", http.StatusBadRequest, nil, nil)
			return
		}
		if apiErr := s.NotificationService.MarkRead(id, userIDFromCtx(c)); apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "notification marked read", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleMarkAllNotificationsRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiErr := s.NotificationService.MarkAllRead(userIDFromCtx(c)); apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "all notifications marked read", http.StatusOK, nil, nil)
	}
}

func (s *Server) handleClearReadNotifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiErr := s.NotificationService.ClearRead(userIDFromCtx(c)); apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "read notifications cleared", http.StatusOK, nil, nil)
	}
}

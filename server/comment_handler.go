package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gracehq/prayerhub/models"
	"github.com/gracehq/prayerhub/server/response"
)

func (s *Server) handleCreateComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid prayer request id", http.StatusBadRequest, nil, nil)
			return
		}
		var input models.CommentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.JSON(c, "invalid comment payload", http.StatusBadRequest, nil, []string{err.Error()})
			return
		}
		comment, apiErr := s.CommentService.CreateComment(requestID, &input, userIDFromCtx(c))
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "comment created", http.StatusCreated, comment, nil)
	}
}

func (s *Server) handleListComments() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid prayer request id", http.StatusBadRequest, nil, nil)
			return
		}
		page, size := pagingParams(c)
		comments, total, apiErr := s.CommentService.ListComments(requestID, userIDFromCtx(c), page, size)
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "comments retrieved", http.StatusOK, gin.H{
			"comments": comments,
			"total":    total,
			"page":     page,
			"size":     size,
		}, nil)
	}
}

func (s *Server) handleUpdateComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		commentID, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid comment id", http.StatusBadRequest, nil, nil)
			return
		}
		var input models.CommentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.JSON(c, "invalid comment payload", http.StatusBadRequest, nil, []string{err.Error()})
			return
		}
		comment, apiErr := s.CommentService.UpdateComment(commentID, &input, userIDFromCtx(c), isAdminFromCtx(c))
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "comment updated", http.StatusOK, comment, nil)
	}
}

func (s *Server) handleDeleteComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		commentID, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid comment id", http.StatusBadRequest, nil, nil)
			return
		}
		if apiErr := s.CommentService.DeleteComment(commentID, userIDFromCtx(c), isAdminFromCtx(c)); apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "comment deleted", http.StatusOK, nil, nil)
	}
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gracehq/prayerhub/models"
	"github.com/gracehq/prayerhub/server/response"
)

func (s *Server) handleListResourceTypes() gin.HandlerFunc {
	return func(c *gin.Context) {
		types := []models.ResourceType{
			models.ResourceDevotional,
			models.ResourceScripture,
			models.ResourceArticle,
			models.ResourceGuide,
		}
		response.JSON(c, "resource types retrieved", http.StatusOK, types, nil)
	}
}

func (s *Server) handleListResources() gin.HandlerFunc {
	return func(c *gin.Context) {
		page, size := pagingParams(c)
		resources, total, apiErr := s.ResourceService.ListActiveResources(c.Query("type"), c.Query("search"), page, size)
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "resources retrieved", http.StatusOK, gin.H{
			"resources": resources,
			"total":     total,
			"page":      page,
			"size":      size,
		}, nil)
	}
}

func (s *Server) handleGetResource() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			response.JSON(c, "invalid resource id", http.StatusBadRequest, nil, nil)
			return
		}
		resource, apiErr := s.ResourceService.GetResource(id)
		if apiErr != nil {
			response.JSON(c, apiErr.Message, apiErr.Status, nil, []string{apiErr.Message})
			return
		}
		response.JSON(c, "resource retrieved", http.StatusOK, resource, nil)
	}
}

package response

import "github.com/gin-gonic/gin"

// JSON writes the uniform response envelope.
func JSON(c *gin.Context, message string, status int, data interface{}, errs []string) {
	responseData := gin.H{
		"message": message,
		"data":    data,
		"errors":  errs,
		"status":  status,
	}
	c.JSON(status, responseData)
}

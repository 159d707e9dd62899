package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gracehq/prayerhub/server/response"
)

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if s.Config.AccessControlAllowOrigin != "" {
		corsConfig.AllowOrigins = []string{s.Config.AccessControlAllowOrigin}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	s.defineRoutes(r)
	return r
}

func (s *Server) defineRoutes(r *gin.Engine) {
	apirouter := r.Group("/api/v1")

	apirouter.GET("/health", func(c *gin.Context) {
		response.JSON(c, "ok", http.StatusOK, nil, nil)
	})

	apirouter.POST("/auth/signup", s.handleSignup())
	apirouter.POST("/auth/login", s.handleLogin())

	authorized := apirouter.Group("/")
	authorized.Use(s.Authorize())
	{
		authorized.POST("/auth/logout", s.handleLogout())

		authorized.GET("/users/profile", s.handleGetProfile())
		authorized.PUT("/users/profile", s.handleUpdateProfile())
		authorized.PUT("/users/change-password", s.handleChangePassword())
		authorized.GET("/users/:id", s.handleGetUser())

		authorized.POST("/prayer-requests", s.handleCreatePrayerRequest())
		authorized.GET("/prayer-requests", s.handleListPrayerRequests())
		authorized.GET("/prayer-requests/my-requests", s.handleListMyPrayerRequests())
		authorized.GET("/prayer-requests/answered", s.handleListAnsweredPrayerRequests())
		authorized.GET("/prayer-requests/:id", s.handleGetPrayerRequest())
		authorized.PUT("/prayer-requests/:id", s.handleUpdatePrayerRequest())
		authorized.DELETE("/prayer-requests/:id", s.handleDeletePrayerRequest())
		authorized.POST("/prayer-requests/:id/pray", s.handlePrayForRequest())
		authorized.PUT("/prayer-requests/:id/answer", s.handleMarkAnswered())

		authorized.POST("/prayer-requests/:id/comments", s.handleCreateComment())
		authorized.GET("/prayer-requests/:id/comments", s.handleListComments())
		authorized.PUT("/comments/:id", s.handleUpdateComment())
		authorized.DELETE("/comments/:id", s.handleDeleteComment())

		authorized.POST("/groups", s.handleCreateGroup())
		authorized.GET("/groups", s.handleListGroups())
		authorized.GET("/groups/my-groups", s.handleListMyGroups())
		authorized.GET("/groups/:id", s.handleGetGroup())
		authorized.PUT("/groups/:id", s.handleUpdateGroup())
		authorized.DELETE("/groups/:id", s.handleDeleteGroup())
		authorized.POST("/groups/:id/join", s.handleJoinGroup())
		authorized.POST("/groups/:id/leave", s.handleLeaveGroup())
		authorized.GET("/groups/:id/prayer-requests", s.handleListGroupPrayerRequests())

		authorized.GET("/notifications", s.handleListNotifications())
		authorized.GET("/notifications/unread-count", s.handleUnreadCount())
		authorized.PUT("/notifications/:id/mark-read", s.handleMarkNotificationRead())
		authorized.PUT("/notifications/mark-all-read", s.handleMarkAllNotificationsRead())
		authorized.DELETE("/notifications/clear-read", s.handleClearReadNotifications())

		authorized.GET("/resources", s.handleListResources())
		authorized.GET("/resources/types", s.handleListResourceTypes())
		authorized.GET("/resources/:id", s.handleGetResource())
	}

	admin := apirouter.Group("/admin")
	admin.Use(s.Authorize(), s.AdminOnly())
	{
		admin.GET("/analytics", s.handleAdminAnalytics())
		admin.GET("/users", s.handleAdminListUsers())
		admin.PUT("/users/:id/toggle-status", s.handleAdminToggleUserStatus())
		admin.PUT("/users/:id/role", s.handleAdminUpdateUserRole())
		admin.GET("/prayer-requests", s.handleAdminListPrayerRequests())
		admin.DELETE("/prayer-requests/:id", s.handleAdminDeletePrayerRequest())
		admin.DELETE("/comments/:id", s.handleAdminDeleteComment())
		admin.POST("/resources", s.handleAdminCreateResource())
		admin.GET("/resources", s.handleAdminListResources())
		admin.PUT("/resources/:id", s.handleAdminUpdateResource())
		admin.DELETE("/resources/:id", s.handleAdminDeleteResource())
	}
}

package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gracehq/prayerhub/config"
	"github.com/gracehq/prayerhub/db"
	"github.com/gracehq/prayerhub/logging"
	"github.com/gracehq/prayerhub/services"
)

// Server owns the HTTP surface and the services behind it.
type Server struct {
	Config               *config.Config
	AuthRepository       db.AuthRepository
	AuthService          services.AuthService
	PrayerRequestService services.PrayerRequestService
	CommentService       services.CommentService
	GroupService         services.GroupService
	NotificationService  services.NotificationService
	AdminService         services.AdminService
	ResourceService      services.ResourceService
}

// Start runs the router until SIGINT/SIGTERM, then drains in-flight
// requests and stops the notification dispatcher.
func (s *Server) Start() {
	r := s.setupRouter()

	port := s.Config.Port
	if port == 0 {
		port = 8080
	}
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	s.NotificationService.Start()

	go func() {
		logging.InfoLogger.Printf("server started on port %d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.InfoLogger.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown:", err)
	}

	s.NotificationService.Stop()
	logging.InfoLogger.Println("server exiting")
}

package main

import (
	"log"

	"github.com/gracehq/prayerhub/config"
	"github.com/gracehq/prayerhub/db"
	"github.com/gracehq/prayerhub/logging"
	"github.com/gracehq/prayerhub/server"
	"github.com/gracehq/prayerhub/services"
)

func main() {
	logging.Init()

	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB := db.GetDB(conf)
	authRepo := db.NewAuthRepo(gormDB)
	requestRepo := db.NewPrayerRequestRepo(gormDB)
	groupRepo := db.NewGroupRepo(gormDB)
	prayerRepo := db.NewPrayerRepo(gormDB)
	commentRepo := db.NewCommentRepo(gormDB)
	notificationRepo := db.NewNotificationRepo(gormDB)
	resourceRepo := db.NewResourceRepo(gormDB)

	notificationService := services.NewNotificationService(notificationRepo, conf.NotificationQueueSize)
	authService := services.NewAuthService(authRepo, conf)
	prayerRequestService := services.NewPrayerRequestService(requestRepo, groupRepo, prayerRepo, authRepo, notificationService)
	commentService := services.NewCommentService(commentRepo, requestRepo, groupRepo, authRepo, notificationService)
	groupService := services.NewGroupService(groupRepo)
	adminService := services.NewAdminService(authRepo, requestRepo, groupRepo, commentRepo, prayerRepo)
	resourceService := services.NewResourceService(resourceRepo)

	s := &server.Server{
		Config:               conf,
		AuthRepository:       authRepo,
		AuthService:          authService,
		PrayerRequestService: prayerRequestService,
		CommentService:       commentService,
		GroupService:         groupService,
		NotificationService:  notificationService,
		AdminService:         adminService,
		ResourceService:      resourceService,
	}
	s.Start()
}

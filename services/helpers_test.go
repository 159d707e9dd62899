package services

import (
	"fmt"
	"testing"

	"github.com/gracehq/prayerhub/db"
	"github.com/gracehq/prayerhub/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database. The pool is capped at one
// connection so every goroutine shares the same database and concurrent
// transactions serialize instead of failing on a locked file.
func newTestDB(t *testing.T) *db.GormDB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Blacklist{},
		&models.Group{},
		&models.PrayerRequest{},
		&models.Comment{},
		&models.Prayer{},
		&models.Notification{},
		&models.Resource{},
	))
	return &db.GormDB{DB: gdb}
}

func createTestUser(t *testing.T, gdb *db.GormDB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:       username,
		Email:          fmt.Sprintf("%s@example.com", username),
		FirstName:      "Test",
		LastName:       username,
		HashedPassword: "not-a-real-hash",
		Role:           models.RoleUser,
		Enabled:        true,
	}
	require.NoError(t, gdb.DB.Create(user).Error)
	return user
}

type testEnv struct {
	gdb              *db.GormDB
	authRepo         db.AuthRepository
	requestRepo      db.PrayerRequestRepository
	groupRepo        db.GroupRepository
	prayerRepo       db.PrayerRepository
	commentRepo      db.CommentRepository
	notificationRepo db.NotificationRepository
	resourceRepo     db.ResourceRepository

	notifications NotificationService
	requests      PrayerRequestService
	comments      CommentService
	groups        GroupService
	admin         AdminService
	resources     ResourceService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb := newTestDB(t)
	env := &testEnv{
		gdb:              gdb,
		authRepo:         db.NewAuthRepo(gdb),
		requestRepo:      db.NewPrayerRequestRepo(gdb),
		groupRepo:        db.NewGroupRepo(gdb),
		prayerRepo:       db.NewPrayerRepo(gdb),
		commentRepo:      db.NewCommentRepo(gdb),
		notificationRepo: db.NewNotificationRepo(gdb),
		resourceRepo:     db.NewResourceRepo(gdb),
	}
	env.notifications = NewNotificationService(env.notificationRepo, 64)
	env.notifications.Start()
	t.Cleanup(env.notifications.Stop)

	env.requests = NewPrayerRequestService(env.requestRepo, env.groupRepo, env.prayerRepo, env.authRepo, env.notifications)
	env.comments = NewCommentService(env.commentRepo, env.requestRepo, env.groupRepo, env.authRepo, env.notifications)
	env.groups = NewGroupService(env.groupRepo)
	env.admin = NewAdminService(env.authRepo, env.requestRepo, env.groupRepo, env.commentRepo, env.prayerRepo)
	env.resources = NewResourceService(env.resourceRepo)
	return env
}

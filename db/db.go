package db

import (
	"fmt"
	"log"

	"github.com/gracehq/prayerhub/config"
	"github.com/gracehq/prayerhub/models"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GormDB wraps the gorm connection shared by the repositories.
type GormDB struct {
	DB *gorm.DB
}

func GetDB(c *config.Config) *GormDB {
	gormDB := &GormDB{}
	gormDB.Init(c)
	return gormDB
}

func (g *GormDB) Init(c *config.Config) {
	g.DB = getPostgresDB(c)

	if err := migrate(g.DB); err != nil {
		log.Fatalf("unable to run migrations: %v", err)
	}
}

func getPostgresDB(c *config.Config) *gorm.DB {
	log.Printf("connecting to postgres: %s", c.PostgresHost)

	postgresDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort)

	db, err := gorm.Open(postgres.Open(postgresDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("unable to connect to postgres: %v", err)
	}
	return db
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Blacklist{},
		&models.Group{},
		&models.PrayerRequest{},
		&models.Comment{},
		&models.Prayer{},
		&models.Notification{},
		&models.Resource{},
	)
	if err != nil {
		return errors.Wrap(err, "migrations error")
	}
	return nil
}

package db

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gracehq/prayerhub/models"
	"gorm.io/gorm"
)

// PrayerRepository records prayers and keeps the denormalized counter on
// the request in step with the prayer rows.
type PrayerRepository interface {
	CreatePrayerWithCount(userID, requestID uint) (*models.Prayer, error)
	HasPrayed(userID, requestID uint) (bool, error)
	CountPrayers() (int64, error)
}

type prayerRepo struct {
	DB *gorm.DB
}

func NewPrayerRepo(db *GormDB) PrayerRepository {
	return &prayerRepo{db.DB}
}

// CreatePrayerWithCount inserts the prayer row and bumps prayed_for_count
// in one transaction. The check inside the transaction handles the common
// duplicate; the composite unique index on (user_id, prayer_request_id)
// backstops the race where two prayers land at once.
func (p *prayerRepo) CreatePrayerWithCount(userID, requestID uint) (*models.Prayer, error) {
	prayer := &models.Prayer{
		ID:              uuid.New().String(),
		UserID:          userID,
		PrayerRequestID: requestID,
		PrayedAt:        time.Now(),
	}

	err := p.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Prayer{}).
			Where("user_id = ? AND prayer_request_id = ?", userID, requestID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyPrayed
		}
		if err := tx.Create(prayer).Error; err != nil {
			return err
		}
		return tx.Model(&models.PrayerRequest{}).Where("id = ?", requestID).
			UpdateColumn("prayed_for_count", gorm.Expr("prayed_for_count + ?", 1)).Error
	})
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate") {
			return nil, ErrAlreadyPrayed
		}
		return nil, err
	}
	return prayer, nil
}

func (p *prayerRepo) HasPrayed(userID, requestID uint) (bool, error) {
	var count int64
	err := p.DB.Model(&models.Prayer{}).
		Where("user_id = ? AND prayer_request_id = ?", userID, requestID).
		Count(&count).Error
	return count > 0, err
}

func (p *prayerRepo) CountPrayers() (int64, error) {
	var count int64
	err := p.DB.Model(&models.Prayer{}).Count(&count).Error
	return count, err
}

package db

import (
	"time"

	"github.com/terraincognita07/cyclewise/internal/models"
	"gorm.io/gorm"
)

type SymptomLogRepository struct {
	database *gorm.DB
}

func NewSymptomLogRepository(database *gorm.DB) *SymptomLogRepository {
	return &SymptomLogRepository{database: database}
}

func (repo *SymptomLogRepository) ListNewestFirst() ([]models.SymptomLog, error) {
	logs := make([]models.SymptomLog, 0)
	if err := repo.database.Order("date DESC, id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListRange takes calendar days (UTC midnight). Both bounds are inclusive and
// either may be nil.
func (repo *SymptomLogRepository) ListRange(from *time.Time, to *time.Time) ([]models.SymptomLog, error) {
	query := repo.database.Model(&models.SymptomLog{})
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date < ?", to.AddDate(0, 0, 1))
	}

	logs := make([]models.SymptomLog, 0)
	if err := query.Order("date DESC, id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *SymptomLogRepository) FindByDate(day time.Time) (models.SymptomLog, bool, error) {
	entry := models.SymptomLog{}
	result := repo.database.
		Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1)).
		Order("id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.SymptomLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.SymptomLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *SymptomLogRepository) Create(entry *models.SymptomLog) error {
	return repo.database.Create(entry).Error
}

func (repo *SymptomLogRepository) Save(entry *models.SymptomLog) error {
	return repo.database.Save(entry).Error
}

func (repo *SymptomLogRepository) DeleteByDate(day time.Time) (bool, error) {
	result := repo.database.
		Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1)).
		Delete(&models.SymptomLog{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

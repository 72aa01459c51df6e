package db

import (
	"time"

	"github.com/terraincognita07/cyclewise/internal/models"
	"gorm.io/gorm"
)

type CycleEntryRepository struct {
	database *gorm.DB
}

func NewCycleEntryRepository(database *gorm.DB) *CycleEntryRepository {
	return &CycleEntryRepository{database: database}
}

// ListRange returns entries newest first. Bounds are calendar days, inclusive
// and optional.
func (repo *CycleEntryRepository) ListRange(from *time.Time, to *time.Time) ([]models.CycleEntry, error) {
	query := repo.database.Model(&models.CycleEntry{})
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date < ?", to.AddDate(0, 0, 1))
	}

	entries := make([]models.CycleEntry, 0)
	if err := query.Order("date DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *CycleEntryRepository) FindByDate(day time.Time) (models.CycleEntry, bool, error) {
	entry := models.CycleEntry{}
	result := repo.database.
		Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1)).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.CycleEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *CycleEntryRepository) Create(entry *models.CycleEntry) error {
	if entry.Symptoms == nil {
		entry.Symptoms = []string{}
	}
	return repo.database.Create(entry).Error
}

func (repo *CycleEntryRepository) Save(entry *models.CycleEntry) error {
	if entry.Symptoms == nil {
		entry.Symptoms = []string{}
	}
	return repo.database.Save(entry).Error
}

func (repo *CycleEntryRepository) DeleteByDate(day time.Time) (bool, error) {
	result := repo.database.
		Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1)).
		Delete(&models.CycleEntry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

package db

import (
	"github.com/terraincognita07/cyclewise/internal/models"
	"gorm.io/gorm"
)

type JournalRepository struct {
	database *gorm.DB
}

func NewJournalRepository(database *gorm.DB) *JournalRepository {
	return &JournalRepository{database: database}
}

func (repo *JournalRepository) ListNewestFirst() ([]models.JournalEntry, error) {
	entries := make([]models.JournalEntry, 0)
	if err := repo.database.Order("date DESC, created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *JournalRepository) Create(entry *models.JournalEntry) error {
	if entry.Symptoms == nil {
		entry.Symptoms = []string{}
	}
	return repo.database.Create(entry).Error
}

func (repo *JournalRepository) DeleteByID(id string) (bool, error) {
	result := repo.database.Where("id = ?", id).Delete(&models.JournalEntry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

package db

import (
	"github.com/terraincognita07/cyclewise/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) Find() (models.CycleProfile, bool, error) {
	profile := models.CycleProfile{}
	result := repo.database.Where("id = ?", models.CycleProfileID).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.CycleProfile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleProfile{}, false, nil
	}
	return profile, true, nil
}

func (repo *ProfileRepository) Save(profile *models.CycleProfile) error {
	profile.ID = models.CycleProfileID
	return repo.database.Save(profile).Error
}

func (repo *ProfileRepository) Delete() error {
	return repo.database.Where("id = ?", models.CycleProfileID).Delete(&models.CycleProfile{}).Error
}

package db

import (
	"github.com/terraincognita07/cyclewise/internal/models"
	"gorm.io/gorm"
)

type LockRepository struct {
	database *gorm.DB
}

func NewLockRepository(database *gorm.DB) *LockRepository {
	return &LockRepository{database: database}
}

func (repo *LockRepository) Find() (models.AppLock, bool, error) {
	lock := models.AppLock{}
	result := repo.database.Where("id = ?", models.AppLockID).Limit(1).Find(&lock)
	if result.Error != nil {
		return models.AppLock{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.AppLock{}, false, nil
	}
	return lock, true, nil
}

func (repo *LockRepository) Save(lock *models.AppLock) error {
	lock.ID = models.AppLockID
	return repo.database.Save(lock).Error
}

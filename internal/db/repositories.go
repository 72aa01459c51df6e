package db

import (
	"fmt"

	"github.com/terraincognita07/cyclewise/internal/models"
	"gorm.io/gorm"
)

type Repositories struct {
	Profiles    *ProfileRepository
	SymptomLogs *SymptomLogRepository
	Entries     *CycleEntryRepository
	Journal     *JournalRepository
	Locks       *LockRepository

	database *gorm.DB
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Profiles:    NewProfileRepository(database),
		SymptomLogs: NewSymptomLogRepository(database),
		Entries:     NewCycleEntryRepository(database),
		Journal:     NewJournalRepository(database),
		Locks:       NewLockRepository(database),
		database:    database,
	}
}

// DeleteHealthData removes every health record in one transaction. The app
// lock row is kept so its generation keeps counting up.
func (repos *Repositories) DeleteHealthData() error {
	return repos.database.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.SymptomLog{},
			&models.CycleEntry{},
			&models.JournalEntry{},
			&models.CycleProfile{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("delete %T: %w", model, err)
			}
		}
		return nil
	})
}

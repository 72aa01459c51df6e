package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/cyclewise/internal/models"
)

var (
	ErrJournalEntryNotFound     = errors.New("journal entry not found")
	ErrJournalLoadFailed        = errors.New("load journal failed")
	ErrJournalCreateFailed      = errors.New("create journal entry failed")
	ErrJournalDeleteFailed      = errors.New("delete journal entry failed")
	ErrInvalidJournalIdentifier = errors.New("invalid journal entry id")
)

type JournalRepository interface {
	ListNewestFirst() ([]models.JournalEntry, error)
	Create(entry *models.JournalEntry) error
	DeleteByID(id string) (bool, error)
}

type JournalService struct {
	entries JournalRepository
	newID   func() string
}

func NewJournalService(entries JournalRepository) *JournalService {
	return &JournalService{
		entries: entries,
		newID:   uuid.NewString,
	}
}

// Create stores a new entry. The id and creation instant are assigned here
// and never change afterwards.
func (service *JournalService) Create(input JournalEntryInput, now time.Time) (models.JournalEntry, error) {
	entry, err := ValidateJournalEntry(input)
	if err != nil {
		return models.JournalEntry{}, err
	}

	entry.ID = service.newID()
	entry.CreatedAt = now.UTC()
	if err := service.entries.Create(&entry); err != nil {
		return models.JournalEntry{}, fmt.Errorf("%w: %v", ErrJournalCreateFailed, err)
	}
	return entry, nil
}

func (service *JournalService) List() ([]models.JournalEntry, error) {
	entries, err := service.entries.ListNewestFirst()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJournalLoadFailed, err)
	}
	return entries, nil
}

func (service *JournalService) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidJournalIdentifier
	}
	deleted, err := service.entries.DeleteByID(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrJournalDeleteFailed, err)
	}
	if !deleted {
		return ErrJournalEntryNotFound
	}
	return nil
}

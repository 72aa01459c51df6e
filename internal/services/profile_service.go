package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/cyclewise/internal/models"
)

var (
	ErrProfileNotFound   = errors.New("cycle profile not found")
	ErrProfileLoadFailed = errors.New("load cycle profile failed")
	ErrProfileSaveFailed = errors.New("save cycle profile failed")
)

type ProfileRepository interface {
	Find() (models.CycleProfile, bool, error)
	Save(profile *models.CycleProfile) error
	Delete() error
}

type ProfileService struct {
	profiles ProfileRepository
	log      logrus.FieldLogger
}

func NewProfileService(profiles ProfileRepository, log logrus.FieldLogger) *ProfileService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ProfileService{
		profiles: profiles,
		log:      log,
	}
}

// Get returns ErrProfileNotFound on first run, before onboarding.
func (service *ProfileService) Get() (models.CycleProfile, error) {
	profile, found, err := service.profiles.Find()
	if err != nil {
		return models.CycleProfile{}, fmt.Errorf("%w: %v", ErrProfileLoadFailed, err)
	}
	if !found {
		return models.CycleProfile{}, ErrProfileNotFound
	}
	return profile, nil
}

// Save validates input and replaces the stored profile wholesale.
func (service *ProfileService) Save(input CycleProfileInput) (models.CycleProfile, error) {
	profile, err := ValidateCycleProfile(input)
	if err != nil {
		return models.CycleProfile{}, err
	}

	if existing, found, err := service.profiles.Find(); err == nil && found {
		profile.CreatedAt = existing.CreatedAt
	}
	if err := service.profiles.Save(&profile); err != nil {
		return models.CycleProfile{}, fmt.Errorf("%w: %v", ErrProfileSaveFailed, err)
	}

	if HasEmptyFollicularBand(profile) {
		service.log.WithFields(logrus.Fields{
			"cycle_length":  profile.CycleLength,
			"period_length": profile.PeriodLength,
		}).Warn("profile leaves no follicular days")
	}
	return profile, nil
}

func (service *ProfileService) Delete() error {
	return service.profiles.Delete()
}

package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/cyclewise/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasscodeNotSet   = errors.New("passcode not set")
	ErrInvalidPasscode  = errors.New("invalid passcode")
	ErrLockLoadFailed   = errors.New("load app lock failed")
	ErrLockSaveFailed   = errors.New("save app lock failed")
	ErrMissingSecretKey = errors.New("secret key is required for app lock")
)

type LockRepository interface {
	Find() (models.AppLock, bool, error)
	Save(lock *models.AppLock) error
}

// LockService guards the device data behind an optional passcode. With no
// passcode stored the app is unlocked.
type LockService struct {
	locks     LockRepository
	secretKey []byte
	ttl       time.Duration
}

func NewLockService(locks LockRepository, secretKey []byte, ttl time.Duration) *LockService {
	if ttl <= 0 {
		ttl = DefaultUnlockTTL
	}
	return &LockService{
		locks:     locks,
		secretKey: secretKey,
		ttl:       ttl,
	}
}

func (service *LockService) IsLocked() (bool, error) {
	_, locked, err := service.currentLock()
	return locked, err
}

// currentLock reports locked only when a passcode hash is stored. A cleared
// lock keeps its row so the generation never goes backwards.
func (service *LockService) currentLock() (models.AppLock, bool, error) {
	lock, found, err := service.locks.Find()
	if err != nil {
		return models.AppLock{}, false, fmt.Errorf("%w: %v", ErrLockLoadFailed, err)
	}
	if !found {
		return models.AppLock{ID: models.AppLockID}, false, nil
	}
	return lock, strings.TrimSpace(lock.PasscodeHash) != "", nil
}

// SetPasscode stores a new passcode hash and bumps the generation, which
// invalidates every unlock token issued before.
func (service *LockService) SetPasscode(passcode string) error {
	if len(service.secretKey) == 0 {
		return ErrMissingSecretKey
	}
	passcode = strings.TrimSpace(passcode)
	if err := ValidatePasscode(passcode); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash passcode: %w", err)
	}

	lock, _, err := service.currentLock()
	if err != nil {
		return err
	}
	lock.PasscodeHash = string(hash)
	lock.Generation++

	if err := service.locks.Save(&lock); err != nil {
		return fmt.Errorf("%w: %v", ErrLockSaveFailed, err)
	}
	return nil
}

func (service *LockService) ClearPasscode() error {
	lock, locked, err := service.currentLock()
	if err != nil {
		return err
	}
	if !locked {
		return nil
	}
	lock.PasscodeHash = ""
	lock.Generation++
	if err := service.locks.Save(&lock); err != nil {
		return fmt.Errorf("%w: %v", ErrLockSaveFailed, err)
	}
	return nil
}

func (service *LockService) Unlock(passcode string, now time.Time) (string, time.Time, error) {
	lock, locked, err := service.currentLock()
	if err != nil {
		return "", time.Time{}, err
	}
	if !locked {
		return "", time.Time{}, ErrPasscodeNotSet
	}
	if bcrypt.CompareHashAndPassword([]byte(lock.PasscodeHash), []byte(strings.TrimSpace(passcode))) != nil {
		return "", time.Time{}, ErrInvalidPasscode
	}
	return BuildUnlockToken(service.secretKey, lock.Generation, service.ttl, now)
}

// Authorize accepts any request while no passcode is set. Otherwise the
// token must be valid and minted for the current passcode generation.
func (service *LockService) Authorize(rawToken string, now time.Time) error {
	lock, locked, err := service.currentLock()
	if err != nil {
		return err
	}
	if !locked {
		return nil
	}

	claims, err := ParseUnlockToken(service.secretKey, rawToken, now)
	if err != nil {
		return err
	}
	if claims.Generation != lock.Generation {
		return ErrUnlockTokenStale
	}
	return nil
}

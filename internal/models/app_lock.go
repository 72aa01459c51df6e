package models

import "time"

const AppLockID uint = 1

// AppLock holds the optional device passcode. Generation changes on every
// passcode update so previously issued unlock tokens stop verifying.
type AppLock struct {
	ID           uint   `gorm:"primaryKey"`
	PasscodeHash string `gorm:"not null"`
	Generation   int64  `gorm:"not null"`
	UpdatedAt    time.Time
}

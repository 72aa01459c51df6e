package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5

	MinCycleLength  = 21
	MaxCycleLength  = 40
	MinPeriodLength = 2
	MaxPeriodLength = 10
)

// CycleProfileID is the primary key of the only profile row kept per device.
const CycleProfileID uint = 1

type CycleProfile struct {
	ID             uint      `gorm:"primaryKey"`
	LastPeriodDate time.Time `gorm:"type:date;not null"`
	CycleLength    int       `gorm:"not null;default:28"`
	PeriodLength   int       `gorm:"not null;default:5"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

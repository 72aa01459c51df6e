package models

import "time"

// Severity is an ordinal symptom intensity.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityMild
	SeverityModerate
	SeveritySevere
)

const (
	MinSleepQuality     = 1
	MaxSleepQuality     = 5
	DefaultSleepQuality = 3
)

func (severity Severity) Valid() bool {
	return severity >= SeverityNone && severity <= SeveritySevere
}

func (severity Severity) Label() string {
	switch severity {
	case SeverityNone:
		return "None"
	case SeverityMild:
		return "Mild"
	case SeverityModerate:
		return "Moderate"
	case SeveritySevere:
		return "Severe"
	default:
		return "Unknown"
	}
}

type SymptomLog struct {
	ID           uint      `gorm:"primaryKey"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uidx_symptom_logs_date"`
	Cramps       Severity  `gorm:"not null;default:0"`
	Fatigue      Severity  `gorm:"not null;default:0"`
	MoodSwings   Severity  `gorm:"not null;default:0"`
	SleepQuality int       `gorm:"not null;default:3"`
	Bloating     bool      `gorm:"not null;default:false"`
	Headache     bool      `gorm:"not null;default:false"`
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

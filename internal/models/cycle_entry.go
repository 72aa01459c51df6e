package models

import "time"

const (
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

const (
	EntryMoodHappy   = "happy"
	EntryMoodNeutral = "neutral"
	EntryMoodLow     = "low"
)

func Flows() []string {
	return []string{FlowLight, FlowMedium, FlowHeavy}
}

func EntryMoods() []string {
	return []string{EntryMoodHappy, EntryMoodNeutral, EntryMoodLow}
}

// CycleEntrySymptoms is the fixed tag list a period entry may carry.
func CycleEntrySymptoms() []string {
	return []string{
		"Cramps",
		"Headache",
		"Bloating",
		"Fatigue",
		"Back pain",
		"Breast tenderness",
		"Nausea",
		"Acne",
	}
}

// CycleEntry is one period-tracker record. There is at most one per date.
type CycleEntry struct {
	ID        uint      `gorm:"primaryKey"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_cycle_entries_date"`
	Flow      string    `gorm:"not null;default:medium"`
	Mood      string    `gorm:"not null;default:neutral"`
	Symptoms  []string  `gorm:"serializer:json"`
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

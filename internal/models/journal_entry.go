package models

import "time"

// Mood values are ordered from best to worst.
type Mood string

const (
	MoodGreat Mood = "great"
	MoodGood  Mood = "good"
	MoodOkay  Mood = "okay"
	MoodLow   Mood = "low"
	MoodRough Mood = "rough"
)

func Moods() []Mood {
	return []Mood{MoodGreat, MoodGood, MoodOkay, MoodLow, MoodRough}
}

// Rank returns 0 for the best mood and 4 for the worst, or -1 when unknown.
func (mood Mood) Rank() int {
	for index, candidate := range Moods() {
		if candidate == mood {
			return index
		}
	}
	return -1
}

type JournalEntry struct {
	ID         string    `gorm:"primaryKey;size:36"`
	Date       time.Time `gorm:"type:date;not null;index"`
	Mood       Mood      `gorm:"not null"`
	Symptoms   []string  `gorm:"serializer:json"`
	Reflection string
	CreatedAt  time.Time `gorm:"not null"`
}

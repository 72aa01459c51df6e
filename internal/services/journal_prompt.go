package services

import (
	"strings"

	"github.com/terraincognita07/cyclewise/internal/models"
)

// RandomSource picks an index in [0, n). *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

const (
	MoodReflectionPrompt    = "You've been experiencing mood shifts lately — what's been on your mind?"
	FatigueReflectionPrompt = "You've logged fatigue recently. How is your body feeling today?"

	LowMoodJournalAlert = "You've been feeling low recently. Would you like some grounding suggestions? Check our Wellness toolkit. 💜"
	StressJournalAlert  = "You've logged stress-related symptoms several days — consider a breathing exercise or gentle walk today. 🌿"
)

const (
	promptLogWindow        = 3
	minPromptSignals       = 2
	journalAlertWindow     = 5
	minLowMoodEntries      = 3
	minStressTaggedEntries = 2
)

var genericJournalPrompts = []string{
	"What are you grateful for today?",
	"How did your body feel when you woke up this morning?",
	"What's one kind thing you did for yourself recently?",
	"Describe your energy in one word today.",
	"What would make today a good day?",
}

var stressJournalTags = []string{"Anxiety", "Insomnia"}

func GenericJournalPrompts() []string {
	result := make([]string, len(genericJournalPrompts))
	copy(result, genericJournalPrompts)
	return result
}

// JournalPrompt suggests a reflection prompt. Recent mood swings win over
// recent fatigue; otherwise one of the generic prompts is drawn from rng.
// Journal history is accepted so callers can pass everything they loaded,
// but only the symptom logs steer the choice today.
func JournalPrompt(logs []models.SymptomLog, entries []models.JournalEntry, rng RandomSource) string {
	recent := headLogs(sortLogsNewestFirst(logs), promptLogWindow)

	moodSignals := 0
	fatigueSignals := 0
	for _, entry := range recent {
		if entry.MoodSwings >= models.SeverityModerate {
			moodSignals++
		}
		if entry.Fatigue >= models.SeverityModerate {
			fatigueSignals++
		}
	}

	if moodSignals >= minPromptSignals {
		return MoodReflectionPrompt
	}
	if fatigueSignals >= minPromptSignals {
		return FatigueReflectionPrompt
	}
	return genericJournalPrompts[pickIndex(rng, len(genericJournalPrompts))]
}

func pickIndex(rng RandomSource, n int) int {
	if rng == nil || n <= 0 {
		return 0
	}
	index := rng.Intn(n)
	if index < 0 || index >= n {
		return 0
	}
	return index
}

// JournalPatternAlert flags a run of low moods or stress-related tags across
// the five most recent journal entries.
func JournalPatternAlert(entries []models.JournalEntry) (string, bool) {
	sorted := sortJournalNewestFirst(entries)
	if len(sorted) > journalAlertWindow {
		sorted = sorted[:journalAlertWindow]
	}

	lowMoods := 0
	stressTagged := 0
	for _, entry := range sorted {
		if entry.Mood == models.MoodLow || entry.Mood == models.MoodRough {
			lowMoods++
		}
		if hasAnyTag(entry.Symptoms, stressJournalTags) {
			stressTagged++
		}
	}

	if lowMoods >= minLowMoodEntries {
		return LowMoodJournalAlert, true
	}
	if stressTagged >= minStressTaggedEntries {
		return StressJournalAlert, true
	}
	return "", false
}

func hasAnyTag(tags []string, wanted []string) bool {
	for _, tag := range tags {
		for _, candidate := range wanted {
			if strings.EqualFold(strings.TrimSpace(tag), candidate) {
				return true
			}
		}
	}
	return false
}

package services

import (
	"time"

	"github.com/terraincognita07/cyclewise/internal/models"
)

type Phase string

const (
	PhaseMenstrual  Phase = "menstrual"
	PhaseFollicular Phase = "follicular"
	PhaseOvulatory  Phase = "ovulatory"
	PhaseLuteal     Phase = "luteal"
)

func Phases() []Phase {
	return []Phase{PhaseMenstrual, PhaseFollicular, PhaseOvulatory, PhaseLuteal}
}

type PhaseContent struct {
	Label             string   `json:"label"`
	Energy            string   `json:"energy"`
	EmotionalForecast string   `json:"emotional_forecast"`
	BodySensitivity   string   `json:"body_sensitivity"`
	FoodPriorities    []string `json:"food_priorities"`
	SelfCareFocus     string   `json:"self_care_focus"`
	Productivity      string   `json:"productivity"`
	Color             string   `json:"color"`
	Emoji             string   `json:"emoji"`
}

type PhaseInfo struct {
	Phase     Phase `json:"phase"`
	Day       int   `json:"day"`
	TotalDays int   `json:"total_days"`
	PhaseContent
}

var phaseContentTable = map[Phase]PhaseContent{
	PhaseMenstrual: {
		Label:             "Menstrual Phase",
		Energy:            "Low — honor your body's need for rest",
		EmotionalForecast: "Introspective & sensitive — be gentle with yourself",
		BodySensitivity:   "High — cramps, fatigue, and tenderness are common",
		FoodPriorities:    []string{"Iron-rich foods (spinach, lentils)", "Warm soups & stews", "Dark chocolate", "Hydrating fruits"},
		SelfCareFocus:     "Rest, warmth, and comfort. Hot water bottles, gentle stretching",
		Productivity:      "Focus on light tasks. This is your reflection & planning phase",
		Color:             "rose",
		Emoji:             "🌙",
	},
	PhaseFollicular: {
		Label:             "Follicular Phase",
		Energy:            "Rising — you'll feel increasingly energized",
		EmotionalForecast: "Optimistic & creative — great time for new ideas",
		BodySensitivity:   "Decreasing — your body is recovering and rebuilding",
		FoodPriorities:    []string{"Lean proteins", "Fermented foods", "Fresh vegetables", "Sprouted grains"},
		SelfCareFocus:     "Try new activities, socialize, and set intentions",
		Productivity:      "High creativity. Start new projects, brainstorm, learn new skills",
		Color:             "sage",
		Emoji:             "🌱",
	},
	PhaseOvulatory: {
		Label:             "Ovulatory Phase",
		Energy:            "Peak — your highest energy window",
		EmotionalForecast: "Confident & social — you'll feel most outgoing",
		BodySensitivity:   "Moderate — some may feel mild ovulation discomfort",
		FoodPriorities:    []string{"Light, fresh meals", "Raw fruits & vegetables", "Quinoa & whole grains", "Anti-inflammatory foods"},
		SelfCareFocus:     "Channel your energy — exercise, connect, and express yourself",
		Productivity:      "Peak performance. Schedule important meetings and challenging work",
		Color:             "gold",
		Emoji:             "✨",
	},
	PhaseLuteal: {
		Label:             "Luteal Phase",
		Energy:            "Gradually declining — pace yourself",
		EmotionalForecast: "Detail-oriented but may feel irritable. Practice patience",
		BodySensitivity:   "Increasing — PMS symptoms may appear (bloating, tenderness)",
		FoodPriorities:    []string{"Complex carbs (sweet potatoes, oats)", "Magnesium-rich foods", "Omega-3 fatty acids", "Calming teas (chamomile)"},
		SelfCareFocus:     "Nesting & completion. Finish tasks, organize, practice self-compassion",
		Productivity:      "Good for detail work and completing projects. Avoid overcommitting",
		Color:             "lavender",
		Emoji:             "🍂",
	},
}

// PhaseContentFor returns a copy of the static guidance for phase.
func PhaseContentFor(phase Phase) PhaseContent {
	content := phaseContentTable[phase]
	foods := make([]string, len(content.FoodPriorities))
	copy(foods, content.FoodPriorities)
	content.FoodPriorities = foods
	return content
}

// CycleDay returns the 1-indexed position of now within the cycle that
// started on profile.LastPeriodDate. Dates before the anchor wrap backwards,
// so the result stays in [1, CycleLength] for any now. A profile with a
// non-positive cycle length yields 0.
func CycleDay(profile models.CycleProfile, now time.Time) int {
	return cycleDayAt(profile.LastPeriodDate, profile.CycleLength, now)
}

func cycleDayAt(lastPeriodDate time.Time, cycleLength int, day time.Time) int {
	if cycleLength <= 0 {
		return 0
	}
	elapsedDays := DaysBetween(lastPeriodDate, day)
	return floorMod(elapsedDays, cycleLength) + 1
}

func floorMod(value int, modulus int) int {
	remainder := value % modulus
	if remainder < 0 {
		remainder += modulus
	}
	return remainder
}

// ClassifyPhase maps a cycle day onto the four phase bands. Bands are checked
// in order and the first match wins, so a period longer than the follicular
// boundary leaves the follicular band empty.
func ClassifyPhase(day int, cycleLength int, periodLength int) Phase {
	switch {
	case day <= periodLength:
		return PhaseMenstrual
	case day <= follicularBoundary(cycleLength):
		return PhaseFollicular
	case day <= ovulatoryBoundary(cycleLength):
		return PhaseOvulatory
	default:
		return PhaseLuteal
	}
}

// floor(0.45 * cycleLength)
func follicularBoundary(cycleLength int) int {
	return cycleLength * 45 / 100
}

// floor(0.55 * cycleLength)
func ovulatoryBoundary(cycleLength int) int {
	return cycleLength * 55 / 100
}

func CurrentPhase(profile models.CycleProfile, now time.Time) PhaseInfo {
	day := CycleDay(profile, now)
	phase := ClassifyPhase(day, profile.CycleLength, profile.PeriodLength)
	return PhaseInfo{
		Phase:        phase,
		Day:          day,
		TotalDays:    profile.CycleLength,
		PhaseContent: PhaseContentFor(phase),
	}
}

func PhaseProgress(profile models.CycleProfile, now time.Time) float64 {
	if profile.CycleLength <= 0 {
		return 0
	}
	return float64(CycleDay(profile, now)) / float64(profile.CycleLength) * 100
}

func DaysUntilNextPeriod(profile models.CycleProfile, now time.Time) int {
	return profile.CycleLength - CycleDay(profile, now)
}

// NextPeriodDate is the calendar date on which the next cycle starts.
func NextPeriodDate(profile models.CycleProfile, now time.Time) time.Time {
	return CalendarDay(now).AddDate(0, 0, DaysUntilNextPeriod(profile, now)+1)
}

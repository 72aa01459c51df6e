package api

type profilePayload struct {
	LastPeriodDate string `json:"last_period_date"`
	CycleLength    int    `json:"cycle_length"`
	PeriodLength   int    `json:"period_length"`
}

type symptomLogPayload struct {
	Cramps       int    `json:"cramps"`
	Fatigue      int    `json:"fatigue"`
	MoodSwings   int    `json:"mood_swings"`
	SleepQuality int    `json:"sleep_quality"`
	Bloating     bool   `json:"bloating"`
	Headache     bool   `json:"headache"`
	Notes        string `json:"notes"`
}

type cycleEntryPayload struct {
	Flow     string   `json:"flow"`
	Mood     string   `json:"mood"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

type journalEntryPayload struct {
	Date       string   `json:"date"`
	Mood       string   `json:"mood"`
	Symptoms   []string `json:"symptoms"`
	Reflection string   `json:"reflection"`
}

type passcodePayload struct {
	Passcode string `json:"passcode"`
}

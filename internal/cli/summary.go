package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/terraincognita07/cyclewise/internal/services"
)

type DashboardSource interface {
	Dashboard(now time.Time) (services.Dashboard, error)
}

// RunSummaryCommand prints today's phase, insights and journal prompt.
func RunSummaryCommand(source DashboardSource, now time.Time, out io.Writer) error {
	dashboard, err := source.Dashboard(now)
	if errors.Is(err, services.ErrProfileNotFound) {
		return errors.New("no cycle profile yet: complete onboarding first")
	}
	if err != nil {
		return fmt.Errorf("build summary: %w", err)
	}

	phase := dashboard.Cycle.Phase
	fmt.Fprintf(out, "%s  %s: day %d of %d\n", phase.Emoji, phase.Label, phase.Day, phase.TotalDays)
	fmt.Fprintf(out, "Energy: %s\n", phase.Energy)
	fmt.Fprintf(out, "Self-care: %s\n", phase.SelfCareFocus)
	fmt.Fprintf(out, "Next period in %d day(s), around %s\n", dashboard.Cycle.DaysUntilNextPeriod, dashboard.Cycle.NextPeriodDate)

	if len(dashboard.Insights) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Insights:")
		for _, insight := range dashboard.Insights {
			fmt.Fprintf(out, "  %s %s\n", insight.Icon, insight.Message)
		}
	}

	fmt.Fprintln(out)
	if dashboard.Blueprint == nil {
		fmt.Fprintln(out, "Blueprint: log at least 7 days to unlock your wellness blueprint.")
	} else {
		fmt.Fprintf(out, "Blueprint: %s\n", dashboard.Blueprint.EnergyTrend)
		for _, symptom := range dashboard.Blueprint.CommonSymptoms {
			fmt.Fprintf(out, "  %s %d%%\n", symptom.Name, symptom.Frequency)
		}
		fmt.Fprintf(out, "  Sensitive days: %s\n", dashboard.Blueprint.SensitiveDays)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Journal prompt: %s\n", dashboard.JournalPrompt)
	if dashboard.JournalAlert != "" {
		fmt.Fprintln(out, dashboard.JournalAlert)
	}
	return nil
}

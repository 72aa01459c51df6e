package cli

import (
	"errors"
	"fmt"
	"io"
)

var ErrResetNotConfirmed = errors.New("refusing to delete data without --yes")

type HealthDataEraser interface {
	DeleteHealthData() error
}

// RunResetDataCommand deletes the cycle profile and every log, period entry
// and journal entry.
// The passcode, if any, stays in place.
func RunResetDataCommand(eraser HealthDataEraser, confirmed bool, out io.Writer) error {
	if !confirmed {
		return ErrResetNotConfirmed
	}
	if err := eraser.DeleteHealthData(); err != nil {
		return fmt.Errorf("delete data: %w", err)
	}
	fmt.Fprintln(out, "✅ All cycle, symptom and journal data deleted.")
	return nil
}

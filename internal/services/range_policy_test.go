package services

import (
	"errors"
	"testing"
)

func TestParseDateRange(t *testing.T) {
	t.Run("empty range", func(t *testing.T) {
		from, to, err := ParseDateRange("", "")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if from != nil || to != nil {
			t.Fatalf("expected nil from/to, got from=%v to=%v", from, to)
		}
	})

	t.Run("valid from and to", func(t *testing.T) {
		from, to, err := ParseDateRange("2026-02-10", " 2026-02-20 ")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if from == nil || to == nil {
			t.Fatalf("expected non-nil range bounds")
		}
		if from.Format(DayLayout) != "2026-02-10" || to.Format(DayLayout) != "2026-02-20" {
			t.Fatalf("unexpected range: from=%s to=%s", from.Format(DayLayout), to.Format(DayLayout))
		}
	})

	t.Run("open ended", func(t *testing.T) {
		from, to, err := ParseDateRange("2026-02-10", "")
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if from == nil || to != nil {
			t.Fatalf("expected only from bound, got from=%v to=%v", from, to)
		}
	})

	t.Run("invalid from", func(t *testing.T) {
		_, _, err := ParseDateRange("not-a-date", "2026-02-20")
		if !errors.Is(err, ErrRangeFromDateInvalid) {
			t.Fatalf("expected ErrRangeFromDateInvalid, got %v", err)
		}
	})

	t.Run("invalid to", func(t *testing.T) {
		_, _, err := ParseDateRange("2026-02-10", "2026-02-31")
		if !errors.Is(err, ErrRangeToDateInvalid) {
			t.Fatalf("expected ErrRangeToDateInvalid, got %v", err)
		}
	})

	t.Run("invalid range order", func(t *testing.T) {
		_, _, err := ParseDateRange("2026-02-20", "2026-02-10")
		if !errors.Is(err, ErrRangeInvalid) {
			t.Fatalf("expected ErrRangeInvalid, got %v", err)
		}
	})
}

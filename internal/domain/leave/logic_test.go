package leave

import (
	"testing"
	"time"
)

func TestDurationDays(t *testing.T) {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)

	if days := DurationDays(start, end); days != 5 {
		t.Fatalf("expected 5 days, got %d", days)
	}
}

func TestDurationDaysSingleDay(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	if days := DurationDays(day, day); days != 1 {
		t.Fatalf("expected 1 day, got %d", days)
	}
}

func TestDurationDaysPure(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	first := DurationDays(start, end)
	for i := 0; i < 10; i++ {
		if got := DurationDays(start, end); got != first {
			t.Fatalf("expected stable result %d, got %d", first, got)
		}
	}
	if first != 5 {
		t.Fatalf("expected 5 days, got %d", first)
	}
}

func TestDurationDaysIgnoresTimeOfDayAndOffset(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	// Midnight on the 5th in UTC+2 is still the 5th, even though the
	// instant falls on the 4th in UTC.
	end := time.Date(2026, 3, 5, 0, 0, 0, 0, time.FixedZone("", 2*60*60))

	if days := DurationDays(start, end); days != 5 {
		t.Fatalf("expected 5 days, got %d", days)
	}

	late := time.Date(2026, 3, 5, 23, 59, 59, 0, time.UTC)
	if days := DurationDays(start, late); days != 5 {
		t.Fatalf("expected 5 days regardless of time of day, got %d", days)
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, 3, 5, 0, 0, 0, 0, time.FixedZone("", 2*60*60))
	want := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	if got := DateOnly(in); !got.Equal(want) {
		t.Fatalf("DateOnly = %v, want %v", got, want)
	}
}

func TestDurationDaysReversedRange(t *testing.T) {
	start := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)

	// Ordering is not enforced here; the service rejects reversed
	// ranges before ever calling this.
	if days := DurationDays(start, end); days > 0 {
		t.Fatalf("expected non-positive count for reversed range, got %d", days)
	}
}

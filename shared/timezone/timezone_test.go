package timezone_test

import (
	"testing"
	"time"

	"ehotels/shared/constant"
	"ehotels/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	if timezone.GetLocation() == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 || today.Nanosecond() != 0 {
		t.Errorf("Today() is not midnight: %v", today)
	}

	if today.After(timezone.Now()) {
		t.Error("Today() is after Now()")
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2025, 3, 14, 17, 45, 12, 99, timezone.GetLocation())
	got := timezone.StartOfDay(in)

	want := time.Date(2025, 3, 14, 0, 0, 0, 0, timezone.GetLocation())
	if !got.Equal(want) {
		t.Errorf("StartOfDay() = %v, want %v", got, want)
	}
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse(constant.DateOnly, "2025-03-14")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if parsed.Location().String() != timezone.GetLocation().String() {
		t.Errorf("Parse() location = %s, want %s", parsed.Location(), timezone.GetLocation())
	}

	if got := timezone.Format(parsed, constant.DateOnly); got != "2025-03-14" {
		t.Errorf("Format() = %s, want 2025-03-14", got)
	}

	if _, err := timezone.Parse(constant.DateOnly, "14/03/2025"); err == nil {
		t.Error("Parse() expected error for malformed date")
	}
}

package schedule

import (
	"reflect"
	"testing"
	"time"
)

func TestGenerateSlots(t *testing.T) {
	got, err := GenerateSlots("09:00", "12:00", 90*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:00 - 10:30", "10:30 - 12:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGenerateSlotsPartialIntervalDropped(t *testing.T) {
	// a third slot would end at 13:30, past the 13:00 close
	got, err := GenerateSlots("09:00", "13:00", 90*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"09:00 - 10:30", "10:30 - 12:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGenerateSlotsExactFit(t *testing.T) {
	got, err := GenerateSlots("18:00", "21:00", 90*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"18:00 - 19:30", "19:30 - 21:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGenerateSlotsBadRange(t *testing.T) {
	if _, err := GenerateSlots("12:00", "09:00", 90*time.Minute); err != ErrBadRange {
		t.Fatalf("expected ErrBadRange, got %v", err)
	}
	if _, err := GenerateSlots("09:00", "12:00", 0); err != ErrBadRange {
		t.Fatalf("expected ErrBadRange for zero interval, got %v", err)
	}
	if _, err := GenerateSlots("nope", "12:00", 90*time.Minute); err == nil {
		t.Fatal("expected error for malformed start time")
	}
}

func TestDroppedSlots(t *testing.T) {
	old := []string{"09:00 - 10:30", "10:30 - 12:00", "18:00 - 19:30"}
	updated := []string{"10:00 - 11:30", "10:30 - 12:00"}

	got := DroppedSlots(old, updated)
	want := []string{"09:00 - 10:30", "18:00 - 19:30"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if got := DroppedSlots(old, old); len(got) != 0 {
		t.Fatalf("expected nothing dropped, got %v", got)
	}
	if got := DroppedSlots(nil, updated); len(got) != 0 {
		t.Fatalf("expected nothing dropped from empty list, got %v", got)
	}
}

func TestFilterReserved(t *testing.T) {
	candidate := []string{"09:00 - 10:30", "10:30 - 12:00", "18:00 - 19:30"}
	reserved := map[string]bool{"10:30 - 12:00": true}

	got := FilterReserved(candidate, reserved)
	want := []string{"09:00 - 10:30", "18:00 - 19:30"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterReservedNothingReserved(t *testing.T) {
	candidate := []string{"09:00 - 10:30", "10:30 - 12:00"}
	got := FilterReserved(candidate, nil)
	if !reflect.DeepEqual(got, candidate) {
		t.Fatalf("expected %v, got %v", candidate, got)
	}
}

func TestFilterReservedAllReserved(t *testing.T) {
	candidate := []string{"09:00 - 10:30"}
	got := FilterReserved(candidate, map[string]bool{"09:00 - 10:30": true})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"09:00", 540, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"9:00", 540, true},
		{"24:00", 0, false},
		{"09:60", 0, false},
		{"0900", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := parseClock(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Fatalf("parseClock(%q): expected %d, got %d err %v", c.in, c.want, got, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("parseClock(%q): expected error", c.in)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := formatClock(540); got != "09:00" {
		t.Fatalf("expected 09:00, got %s", got)
	}
	if got := formatClock(1395); got != "23:15" {
		t.Fatalf("expected 23:15, got %s", got)
	}
}

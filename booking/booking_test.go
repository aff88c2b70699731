package booking

import (
	"testing"

	"cancha/models"
)

func TestSlotStartHour(t *testing.T) {
	cases := []struct {
		slot string
		want int
		ok   bool
	}{
		{"09:00 - 10:30", 9, true},
		{"18:00 - 19:30", 18, true},
		{"07:30 - 09:00", 7, true},
		{"23:59 - 01:00", 23, true},
		{"no slot", 0, false},
		{"", 0, false},
		{"25:00 - 26:30", 0, false},
	}
	for _, c := range cases {
		got, ok := SlotStartHour(c.slot)
		if ok != c.ok || got != c.want {
			t.Fatalf("SlotStartHour(%q): expected (%d, %v), got (%d, %v)", c.slot, c.want, c.ok, got, ok)
		}
	}
}

func TestIsNightSlot(t *testing.T) {
	night := []string{"18:00 - 19:30", "19:30 - 21:00", "23:00 - 00:30", "00:00 - 01:30", "07:30 - 09:00"}
	for _, slot := range night {
		if !IsNightSlot(slot) {
			t.Fatalf("expected %q to carry night rate", slot)
		}
	}

	day := []string{"08:00 - 09:30", "09:00 - 10:30", "12:00 - 13:30", "17:59 - 19:29", "16:30 - 18:00"}
	for _, slot := range day {
		if IsNightSlot(slot) {
			t.Fatalf("expected %q to carry day rate", slot)
		}
	}
}

func TestPriceFor(t *testing.T) {
	court := models.Court{Name: "Cancha 1", DayPrice: 8000, NightPrice: 10000}

	if got := PriceFor(court, "09:00 - 10:30"); got != 8000 {
		t.Fatalf("expected day price 8000, got %v", got)
	}
	if got := PriceFor(court, "18:00 - 19:30"); got != 10000 {
		t.Fatalf("expected night price 10000, got %v", got)
	}
	if got := PriceFor(court, "07:00 - 08:30"); got != 10000 {
		t.Fatalf("expected night price before 08:00, got %v", got)
	}
}

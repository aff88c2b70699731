package dateutil

import (
	"testing"
	"time"
)

func TestNormalizePinsNoon(t *testing.T) {
	// 2025-06-03 01:30 UTC is still June 2 in Argentina
	in := time.Date(2025, 6, 3, 1, 30, 0, 0, time.UTC)
	got := Normalize(in)

	if got.Year() != 2025 || got.Month() != time.June || got.Day() != 2 {
		t.Fatalf("expected 2025-06-02, got %v", got)
	}
	if got.Hour() != 12 || got.Minute() != 0 {
		t.Fatalf("expected noon, got %02d:%02d", got.Hour(), got.Minute())
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	in := time.Date(2025, 6, 2, 18, 45, 12, 0, time.UTC)
	once := Normalize(in)
	twice := Normalize(once)
	if !once.Equal(twice) {
		t.Fatalf("expected %v, got %v", once, twice)
	}
}

func TestParseISODate(t *testing.T) {
	got := Parse("2025-06-02")
	if got.Year() != 2025 || got.Month() != time.June || got.Day() != 2 {
		t.Fatalf("expected 2025-06-02, got %v", got)
	}
	if got.Hour() != 12 {
		t.Fatalf("expected noon, got hour %d", got.Hour())
	}
}

func TestParseRFC3339KeepsDatePart(t *testing.T) {
	// the leading yyyy-MM-dd of a timestamp wins over the instant
	got := Parse("2025-06-02T23:50:00Z")
	if ToISODate(got) != "2025-06-02" {
		t.Fatalf("expected 2025-06-02, got %s", ToISODate(got))
	}
}

func TestParseFallsBackToToday(t *testing.T) {
	for _, s := range []string{"", "  ", "not-a-date", "02/06/2025"} {
		got := Parse(s)
		if !Equal(got, Today()) {
			t.Fatalf("Parse(%q): expected today, got %v", s, got)
		}
	}
}

func TestToISODateRoundTrip(t *testing.T) {
	const iso = "2025-12-31"
	if got := ToISODate(Parse(iso)); got != iso {
		t.Fatalf("expected %s, got %s", iso, got)
	}
}

func TestEqualAcrossOffsets(t *testing.T) {
	a := time.Date(2025, 6, 2, 20, 0, 0, 0, Zone)
	b := time.Date(2025, 6, 2, 8, 0, 0, 0, Zone)
	if !Equal(a, b) {
		t.Fatalf("expected %v and %v on same day", a, b)
	}

	c := time.Date(2025, 6, 3, 1, 0, 0, 0, time.UTC) // June 2 in ART
	if !Equal(b, c) {
		t.Fatalf("expected %v and %v on same day", b, c)
	}

	d := time.Date(2025, 6, 3, 12, 0, 0, 0, Zone)
	if Equal(b, d) {
		t.Fatalf("expected %v and %v on different days", b, d)
	}
}

func TestFormatDefaultLayout(t *testing.T) {
	got := Format(Parse("2025-06-02"), "")
	if got != "02/06/2025" {
		t.Fatalf("expected 02/06/2025, got %s", got)
	}
}

func TestFormatLong(t *testing.T) {
	// 2025-06-02 is a Monday
	got := FormatLong(Parse("2025-06-02"))
	if got != "lunes, 2 de junio de 2025" {
		t.Fatalf("unexpected long format: %s", got)
	}
}

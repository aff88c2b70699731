package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// All reservation dates are interpreted on the Argentina calendar day
// (UTC-3), regardless of the server or client timezone.
var Zone = time.FixedZone("ART", -3*60*60)

const ISODate = "2006-01-02"

// DefaultLayout is the display format used across the UI and tickets.
const DefaultLayout = "02/01/2006"

var spanishDays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Normalize pins t to noon on its Argentina calendar day. Noon keeps the
// day stable when the value is later shifted through other offsets.
func Normalize(t time.Time) time.Time {
	in := t.In(Zone)
	return time.Date(in.Year(), in.Month(), in.Day(), 12, 0, 0, 0, Zone)
}

// Parse accepts "yyyy-MM-dd" or a full RFC 3339 instant and returns the
// normalized day. Unparseable or empty input falls back to today.
func Parse(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return Today()
	}

	if datePart, _, found := strings.Cut(s, "T"); found {
		if d, err := time.Parse(ISODate, datePart); err == nil {
			return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, Zone)
		}
		if ts, err := time.Parse(time.RFC3339, s); err == nil {
			return Normalize(ts)
		}
		return Today()
	}

	if d, err := time.Parse(ISODate, s); err == nil {
		return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, Zone)
	}
	return Today()
}

// Format renders the normalized date with the given Go layout,
// DefaultLayout when empty.
func Format(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultLayout
	}
	return Normalize(t).Format(layout)
}

// FormatLong renders e.g. "lunes, 2 de junio de 2025" for confirmations.
func FormatLong(t time.Time) string {
	n := Normalize(t)
	return fmt.Sprintf("%s, %d de %s de %d",
		spanishDays[int(n.Weekday())], n.Day(), spanishMonths[int(n.Month())-1], n.Year())
}

// ToISODate returns the normalized day as "yyyy-MM-dd".
func ToISODate(t time.Time) string {
	return Normalize(t).Format(ISODate)
}

// Equal reports whether a and b fall on the same Argentina calendar day.
func Equal(a, b time.Time) bool {
	na, nb := Normalize(a), Normalize(b)
	return na.Year() == nb.Year() && na.Month() == nb.Month() && na.Day() == nb.Day()
}

func Today() time.Time {
	return Normalize(time.Now())
}

func TodayISO() string {
	return ToISODate(time.Now())
}

package admin

import (
	"testing"

	"cancha/models"
)

func sampleReservations() []models.Reservation {
	return []models.Reservation{
		{ReservationID: "r001", Name: "Juan Pérez", Email: "juan@example.com", Court: "Cancha 1", Status: models.StatusPending},
		{ReservationID: "r002", Name: "María López", Email: "maria@example.com", Court: "Cancha 2", Status: models.StatusCompleted},
		{ReservationID: "r003", Name: "Carlos Díaz", Email: "carlos@example.com", Court: "Cancha 1", Status: models.StatusCancelled},
	}
}

func TestFilterReservationsByStatus(t *testing.T) {
	all := sampleReservations()

	got := FilterReservations(all, models.StatusPending, "")
	if len(got) != 1 || got[0].ReservationID != "r001" {
		t.Fatalf("expected only r001, got %v", got)
	}

	for _, status := range []string{"all", ""} {
		got = FilterReservations(all, status, "")
		if len(got) != 3 {
			t.Fatalf("status %q: expected all 3, got %d", status, len(got))
		}
	}
}

func TestFilterReservationsBySearch(t *testing.T) {
	all := sampleReservations()

	got := FilterReservations(all, "", "maria@")
	if len(got) != 1 || got[0].ReservationID != "r002" {
		t.Fatalf("expected only r002, got %v", got)
	}

	// court name matches two reservations
	got = FilterReservations(all, "", "cancha 1")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for court, got %d", len(got))
	}

	// search is case-insensitive and trimmed
	got = FilterReservations(all, "", "  JUAN ")
	if len(got) != 1 || got[0].ReservationID != "r001" {
		t.Fatalf("expected only r001, got %v", got)
	}
}

func TestFilterReservationsStatusAndSearch(t *testing.T) {
	all := sampleReservations()

	got := FilterReservations(all, models.StatusCancelled, "cancha 1")
	if len(got) != 1 || got[0].ReservationID != "r003" {
		t.Fatalf("expected only r003, got %v", got)
	}

	got = FilterReservations(all, models.StatusCompleted, "cancha 1")
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestMatchesSearchEmptyTerm(t *testing.T) {
	if !MatchesSearch(models.Reservation{}, "") {
		t.Fatal("empty term should match everything")
	}
}

func TestMatchesSearchByID(t *testing.T) {
	res := models.Reservation{ReservationID: "r12345678"}
	if !MatchesSearch(res, "r12345") {
		t.Fatal("expected id prefix to match")
	}
	if MatchesSearch(res, "r999") {
		t.Fatal("expected no match for foreign id")
	}
}

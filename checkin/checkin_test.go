package checkin

import (
	"testing"

	"cancha/models"
)

func TestQRPayloadRoundTrip(t *testing.T) {
	res := models.Reservation{
		ReservationID: "r12345678901234567890",
		Date:          "2025-06-02T15:00:00.000Z",
		Court:         "Cancha 1",
		Time:          "18:00 - 19:30",
		Name:          "Juan Pérez",
		Email:         "juan@example.com",
		Phone:         "1155551234",
		Price:         10000,
		Status:        models.StatusPending,
	}

	payload, err := QRPayload(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := ParsePayload(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != res.ReservationID {
		t.Fatalf("expected %s, got %s", res.ReservationID, id)
	}
}

func TestParsePayloadBareID(t *testing.T) {
	id, err := ParsePayload(`{"id":"r42"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "r42" {
		t.Fatalf("expected r42, got %s", id)
	}
}

func TestParsePayloadRejectsGarbage(t *testing.T) {
	for _, payload := range []string{"", "   ", "not json", `{"name":"sin id"}`, `{}`} {
		if _, err := ParsePayload(payload); err != ErrBadPayload {
			t.Fatalf("ParsePayload(%q): expected ErrBadPayload, got %v", payload, err)
		}
	}
}

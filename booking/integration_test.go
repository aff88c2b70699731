package booking

import (
	"context"
	"os"
	"testing"
	"time"

	"cancha/db"
	"cancha/models"
	"cancha/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// These tests need a live MongoDB; they are skipped unless MONGO_URI is
// set. Each test uses a throwaway court name so runs never collide.
func requireMongo(t *testing.T) {
	if os.Getenv("MONGO_URI") == "" {
		t.Skip("MONGO_URI not set")
	}
}

func cleanupReservation(ctx context.Context, id string) {
	db.ReservationsCollection.DeleteOne(ctx, bson.M{"reservationid": id})
	db.SlotClaimsCollection.DeleteOne(ctx, bson.M{"reservationid": id})
}

func testReservation(court string) models.Reservation {
	return models.Reservation{
		Date:  "2030-01-15",
		Court: court,
		Time:  "09:00 - 10:30",
		Name:  "Juan Pérez",
		Email: "juan@example.com",
		Phone: "1155550001",
		Price: 8000,
	}
}

func TestCreateRejectsDoubleBooking(t *testing.T) {
	requireMongo(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	court := "it-cancha-" + utils.GenerateRandomDigitString(8)

	first, err := Create(ctx, testReservation(court))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cleanupReservation(ctx, first.ReservationID)

	if _, err := Create(ctx, testReservation(court)); err != ErrSlotTaken {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
}

func TestCancelFreesSlot(t *testing.T) {
	requireMongo(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	court := "it-cancha-" + utils.GenerateRandomDigitString(8)

	first, err := Create(ctx, testReservation(court))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cleanupReservation(ctx, first.ReservationID)

	if _, err := SetStatus(ctx, first.ReservationID, models.StatusCancelled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := Create(ctx, testReservation(court))
	if err != nil {
		t.Fatalf("expected slot free after cancellation, got %v", err)
	}
	cleanupReservation(ctx, second.ReservationID)
}

func TestDeleteOnlyWhenCancelled(t *testing.T) {
	requireMongo(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	court := "it-cancha-" + utils.GenerateRandomDigitString(8)

	res, err := Create(ctx, testReservation(court))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cleanupReservation(ctx, res.ReservationID)

	if err := Delete(ctx, res.ReservationID); err != ErrInvalidState {
		t.Fatalf("expected ErrInvalidState for pending reservation, got %v", err)
	}

	if _, err := SetStatus(ctx, res.ReservationID, models.StatusCancelled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Delete(ctx, res.ReservationID); err != nil {
		t.Fatalf("expected delete of cancelled reservation, got %v", err)
	}
	if _, err := Get(ctx, res.ReservationID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

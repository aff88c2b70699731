package courts

import (
	"context"
	"os"
	"testing"
	"time"

	"cancha/db"
	"cancha/models"
	"cancha/schedule"
	"cancha/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// Needs a live MongoDB; skipped unless MONGO_URI is set.
func TestRemoveCascadesAvailability(t *testing.T) {
	if os.Getenv("MONGO_URI") == "" {
		t.Skip("MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	name := "it-cancha-" + utils.GenerateRandomDigitString(8)
	const dateISO = "2030-01-15"

	created, err := Add(ctx, models.Court{Name: name, DayPrice: 8000, NightPrice: 10000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.CourtsCollection.DeleteOne(ctx, bson.M{"courtid": created.CourtID})

	if err := schedule.SetOverride(ctx, dateISO, name, []string{"09:00 - 10:30"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.AvailabilityCollection.UpdateOne(ctx,
		bson.M{"date": dateISO},
		bson.M{"$unset": bson.M{"courts." + name: ""}},
	)

	if err := Remove(ctx, created.CourtID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := GetByName(ctx, name); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after removal, got %v", err)
	}

	_, exists, err := schedule.Override(ctx, dateISO, name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Fatal("expected availability entry gone after court removal")
	}
}

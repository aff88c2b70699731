package schedule

import (
	"context"
	"os"
	"testing"
	"time"

	"cancha/db"
	"cancha/dateutil"
	"cancha/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// Needs a live MongoDB; skipped unless MONGO_URI is set.
func TestRegenerateSlotsPrunesOverrides(t *testing.T) {
	if os.Getenv("MONGO_URI") == "" {
		t.Skip("MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	original, err := ListSlots(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer ReplaceSlots(ctx, original)

	court := "it-cancha-" + utils.GenerateRandomDigitString(8)
	const dateISO = "2030-02-20"
	const stale = "06:00 - 07:30"

	if err := ReplaceSlots(ctx, []string{stale, "10:00 - 11:30"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := SetOverride(ctx, dateISO, court, []string{stale}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.AvailabilityCollection.UpdateOne(ctx,
		bson.M{"date": dateISO},
		bson.M{"$unset": bson.M{"courts." + court: ""}},
	)

	if err := RegenerateSlots(ctx, []string{"10:00 - 11:30", "11:30 - 13:00"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	times, exists, err := Override(ctx, dateISO, court)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Fatal("override entry should survive regeneration")
	}
	if len(times) != 0 {
		t.Fatalf("expected replaced label pruned from override, got %v", times)
	}

	avail, err := AvailableTimes(ctx, dateutil.Parse(dateISO), court)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range avail {
		if s == stale {
			t.Fatalf("replaced slot still offered: %v", avail)
		}
	}
}

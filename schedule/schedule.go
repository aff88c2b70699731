package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cancha/db"
	"cancha/dateutil"
	"cancha/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrDuplicateSlot = errors.New("time slot already exists")
	ErrNotFound      = errors.New("time slot not found")
	ErrBadRange      = errors.New("start time must be before end time")
)

// DefaultInterval is the fixed slot width used by the bulk generator.
const DefaultInterval = 90 * time.Minute

// The global slot list lives in a single schedule document.
const slotsDocKey = "timeSlots"

type slotsDoc struct {
	Key   string   `bson:"key"`
	Slots []string `bson:"slots"`
}

// availabilityDoc holds the per-court overrides for one calendar day.
// A court key being present, even with an empty list, means "exactly
// these slots are bookable"; absence means all global slots are open.
type availabilityDoc struct {
	Date   string              `bson:"date"`
	Courts map[string][]string `bson:"courts"`
}

// ---------- Global time slots ----------

func ListSlots(ctx context.Context) ([]string, error) {
	var doc slotsDoc
	err := db.ScheduleCollection.FindOne(ctx, bson.M{"key": slotsDocKey}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	if doc.Slots == nil {
		doc.Slots = []string{}
	}
	return doc.Slots, nil
}

func AddSlot(ctx context.Context, slot string) error {
	slots, err := ListSlots(ctx)
	if err != nil {
		return err
	}
	for _, s := range slots {
		if s == slot {
			return ErrDuplicateSlot
		}
	}
	return ReplaceSlots(ctx, append(slots, slot))
}

// RemoveSlot drops a slot from the global list and from every date/court
// override. Existing reservations at that slot are left untouched.
func RemoveSlot(ctx context.Context, slot string) error {
	slots, err := ListSlots(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, s := range slots {
		if s == slot {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}

	if err := ReplaceSlots(ctx, append(slots[:idx:idx], slots[idx+1:]...)); err != nil {
		return err
	}

	return stripSlotsFromOverrides(ctx, []string{slot})
}

// ReplaceSlots overwrites the whole global list.
func ReplaceSlots(ctx context.Context, slots []string) error {
	if slots == nil {
		slots = []string{}
	}
	_, err := db.ScheduleCollection.UpdateOne(ctx,
		bson.M{"key": slotsDocKey},
		bson.M{"$set": bson.M{"slots": slots}},
		options.Update().SetUpsert(true),
	)
	return err
}

// RegenerateSlots replaces the whole global list and prunes every label
// that did not survive from all per-date overrides, so a defunct slot
// can never resurface through an old override.
func RegenerateSlots(ctx context.Context, slots []string) error {
	old, err := ListSlots(ctx)
	if err != nil {
		return err
	}
	if err := ReplaceSlots(ctx, slots); err != nil {
		return err
	}

	dropped := DroppedSlots(old, slots)
	if len(dropped) == 0 {
		return nil
	}
	return stripSlotsFromOverrides(ctx, dropped)
}

// DroppedSlots returns the labels in old that are absent from updated,
// in old's order.
func DroppedSlots(old, updated []string) []string {
	keep := make(map[string]bool, len(updated))
	for _, s := range updated {
		keep[s] = true
	}

	dropped := []string{}
	for _, s := range old {
		if !keep[s] {
			dropped = append(dropped, s)
		}
	}
	return dropped
}

func stripSlotsFromOverrides(ctx context.Context, slots []string) error {
	gone := make(map[string]bool, len(slots))
	for _, s := range slots {
		gone[s] = true
	}

	cur, err := db.AvailabilityCollection.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc availabilityDoc
		if err := cur.Decode(&doc); err != nil {
			continue
		}

		changed := false
		for court, times := range doc.Courts {
			kept := times[:0:0]
			for _, t := range times {
				if !gone[t] {
					kept = append(kept, t)
				}
			}
			if len(kept) != len(times) {
				if kept == nil {
					kept = []string{}
				}
				doc.Courts[court] = kept
				changed = true
			}
		}

		if changed {
			_, _ = db.AvailabilityCollection.UpdateOne(ctx,
				bson.M{"date": doc.Date},
				bson.M{"$set": bson.M{"courts": doc.Courts}},
			)
		}
	}
	return cur.Err()
}

// ---------- Per-date overrides ----------

// Override returns the configured slot list for a date/court, and whether
// one exists at all.
func Override(ctx context.Context, dateISO, court string) ([]string, bool, error) {
	var doc availabilityDoc
	err := db.AvailabilityCollection.FindOne(ctx, bson.M{"date": dateISO}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	times, ok := doc.Courts[court]
	if !ok {
		return nil, false, nil
	}
	if times == nil {
		times = []string{}
	}
	return times, true, nil
}

// SetOverride replaces the override entry for a date/court. It replaces,
// never merges; an empty list blocks the whole day.
func SetOverride(ctx context.Context, dateISO, court string, times []string) error {
	if times == nil {
		times = []string{}
	}
	_, err := db.AvailabilityCollection.UpdateOne(ctx,
		bson.M{"date": dateISO},
		bson.M{"$set": bson.M{"courts." + court: times}},
		options.Update().SetUpsert(true),
	)
	return err
}

// ---------- Availability ----------

// AvailableTimes computes the bookable slots for a date and court:
// the override list when one exists, otherwise every global slot, minus
// slots already held by a non-cancelled reservation. Candidate order is
// preserved.
func AvailableTimes(ctx context.Context, date time.Time, court string) ([]string, error) {
	dateISO := dateutil.ToISODate(date)

	candidate, hasOverride, err := Override(ctx, dateISO, court)
	if err != nil {
		return nil, err
	}
	if !hasOverride {
		candidate, err = ListSlots(ctx)
		if err != nil {
			return nil, err
		}
	}

	reserved, err := reservedTimes(ctx, dateISO, court)
	if err != nil {
		return nil, err
	}

	return FilterReserved(candidate, reserved), nil
}

func reservedTimes(ctx context.Context, dateISO, court string) (map[string]bool, error) {
	cur, err := db.ReservationsCollection.Find(ctx, bson.M{
		"court":  court,
		"status": bson.M{"$ne": models.StatusCancelled},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reserved := map[string]bool{}
	for cur.Next(ctx) {
		var res models.Reservation
		if err := cur.Decode(&res); err != nil {
			continue
		}
		if dateutil.ToISODate(dateutil.Parse(res.Date)) == dateISO {
			reserved[res.Time] = true
		}
	}
	return reserved, cur.Err()
}

// FilterReserved removes reserved slots from the candidate list, keeping
// candidate order.
func FilterReserved(candidate []string, reserved map[string]bool) []string {
	available := []string{}
	for _, slot := range candidate {
		if !reserved[slot] {
			available = append(available, slot)
		}
	}
	return available
}

// ---------- Bulk generator ----------

// GenerateSlots produces fixed-width "HH:MM - HH:MM" labels from start up
// to end; a trailing window shorter than the interval is dropped.
func GenerateSlots(start, end string, interval time.Duration) ([]string, error) {
	startMin, err := parseClock(start)
	if err != nil {
		return nil, err
	}
	endMin, err := parseClock(end)
	if err != nil {
		return nil, err
	}
	if startMin >= endMin || interval <= 0 {
		return nil, ErrBadRange
	}

	step := int(interval.Minutes())
	slots := []string{}
	for cur := startMin; cur+step <= endMin; cur += step {
		slots = append(slots, fmt.Sprintf("%s - %s", formatClock(cur), formatClock(cur+step)))
	}
	return slots, nil
}

func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return h*60 + m, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

package booking

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"cancha/db"
	"cancha/dateutil"
	"cancha/models"
	"cancha/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound     = errors.New("reservation not found")
	ErrSlotTaken    = errors.New("slot already reserved")
	ErrInvalidState = errors.New("only cancelled reservations can be deleted")
)

// Night rates apply from 18:00 up to 08:00.
const (
	nightStartHour = 18
	nightEndHour   = 8
)

func genID() string {
	return "r" + utils.GenerateRandomDigitString(20)
}

// SlotStartHour extracts the starting hour from a "HH:MM - HH:MM" label.
func SlotStartHour(slot string) (int, bool) {
	start, _, _ := strings.Cut(slot, " - ")
	hh, _, found := strings.Cut(strings.TrimSpace(start), ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}

// IsNightSlot reports whether a slot starts in the night tariff window.
func IsNightSlot(slot string) bool {
	h, ok := SlotStartHour(slot)
	if !ok {
		return false
	}
	return h >= nightStartHour || h < nightEndHour
}

// PriceFor picks the court's day or night rate for a slot.
func PriceFor(court models.Court, slot string) float64 {
	if IsNightSlot(slot) {
		return court.NightPrice
	}
	return court.DayPrice
}

// claimSlot atomically takes the (date, court, time) slot. The upsert
// with $setOnInsert either inserts a fresh claim or leaves the existing
// one untouched; UpsertedCount tells us which happened. This closes the
// read-check-then-write race two concurrent bookers would otherwise hit.
func claimSlot(ctx context.Context, dateISO, court, slot, reservationID string) error {
	filter := bson.M{"date": dateISO, "court": court, "time": slot}
	update := bson.M{
		"$setOnInsert": models.SlotClaim{
			Date:          dateISO,
			Court:         court,
			Time:          slot,
			ReservationID: reservationID,
			CreatedAt:     time.Now().Unix(),
		},
	}

	res, err := db.SlotClaimsCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return err
	}
	if res.UpsertedCount == 0 {
		return ErrSlotTaken
	}
	return nil
}

func releaseClaim(ctx context.Context, reservationID string) {
	_, _ = db.SlotClaimsCollection.DeleteOne(ctx, bson.M{"reservationid": reservationID})
}

// Create persists a new pending reservation after claiming its slot.
func Create(ctx context.Context, res models.Reservation) (models.Reservation, error) {
	dateISO := dateutil.ToISODate(dateutil.Parse(res.Date))

	res.ReservationID = genID()
	res.Status = models.StatusPending
	res.CreatedAt = time.Now().Unix()

	if err := claimSlot(ctx, dateISO, res.Court, res.Time, res.ReservationID); err != nil {
		return res, err
	}

	if _, err := db.ReservationsCollection.InsertOne(ctx, res); err != nil {
		releaseClaim(ctx, res.ReservationID)
		return res, err
	}
	return res, nil
}

func Get(ctx context.Context, id string) (models.Reservation, error) {
	var res models.Reservation
	err := db.ReservationsCollection.FindOne(ctx, bson.M{"reservationid": id}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return res, ErrNotFound
	}
	return res, err
}

func List(ctx context.Context) ([]models.Reservation, error) {
	cur, err := db.ReservationsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Reservation{}
	for cur.Next(ctx) {
		var res models.Reservation
		if err := cur.Decode(&res); err != nil {
			continue
		}
		out = append(out, res)
	}
	return out, cur.Err()
}

// SetStatus overwrites the status without validating the transition; the
// admin UI decides which transitions to offer. Moving to cancelled frees
// the slot claim; moving back out of cancelled re-takes it best-effort,
// so a reactivated reservation never silently blocks new bookings it no
// longer owns.
func SetStatus(ctx context.Context, id, status string) (models.Reservation, error) {
	var current models.Reservation
	err := db.ReservationsCollection.FindOne(ctx, bson.M{"reservationid": id}).Decode(&current)
	if err == mongo.ErrNoDocuments {
		return current, ErrNotFound
	}
	if err != nil {
		return current, err
	}

	if _, err := db.ReservationsCollection.UpdateOne(ctx,
		bson.M{"reservationid": id},
		bson.M{"$set": bson.M{"status": status}},
	); err != nil {
		return current, err
	}

	dateISO := dateutil.ToISODate(dateutil.Parse(current.Date))
	switch {
	case status == models.StatusCancelled && current.Status != models.StatusCancelled:
		releaseClaim(ctx, id)
	case status != models.StatusCancelled && current.Status == models.StatusCancelled:
		_ = claimSlot(ctx, dateISO, current.Court, current.Time, id)
	}

	current.Status = status
	return current, nil
}

// Delete removes a reservation, which is only allowed once it has been
// cancelled.
func Delete(ctx context.Context, id string) error {
	res, err := Get(ctx, id)
	if err != nil {
		return err
	}
	if res.Status != models.StatusCancelled {
		return ErrInvalidState
	}

	if _, err := db.ReservationsCollection.DeleteOne(ctx, bson.M{"reservationid": id}); err != nil {
		return err
	}
	releaseClaim(ctx, id)
	return nil
}

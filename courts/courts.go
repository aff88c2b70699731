package courts

import (
	"context"
	"errors"
	"time"

	"cancha/db"
	"cancha/models"
	"cancha/rdx"
	"cancha/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound      = errors.New("court not found")
	ErrDuplicateName = errors.New("court name already exists")
)

const cacheKey = "courts:list"

func genID() string {
	return "c" + utils.GenerateRandomDigitString(14)
}

// FillDefaults replaces missing record fields the way the store would
// have defaulted them at write time.
func FillDefaults(c models.Court) models.Court {
	if c.DayPrice < 0 {
		c.DayPrice = 0
	}
	if c.NightPrice < 0 {
		c.NightPrice = 0
	}
	return c
}

// List returns every court, oldest first.
func List(ctx context.Context) ([]models.Court, error) {
	cur, err := db.CourtsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	courts := []models.Court{}
	for cur.Next(ctx) {
		var c models.Court
		if err := cur.Decode(&c); err != nil {
			continue
		}
		courts = append(courts, FillDefaults(c))
	}
	return courts, cur.Err()
}

// GetByName resolves a court by its display name.
func GetByName(ctx context.Context, name string) (models.Court, error) {
	var c models.Court
	err := db.CourtsCollection.FindOne(ctx, bson.M{"name": name}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return c, ErrNotFound
	}
	if err != nil {
		return c, err
	}
	return FillDefaults(c), nil
}

// Add stores a new court. The name must be unique among live courts; the
// store itself does not enforce this, so it is checked here first.
func Add(ctx context.Context, c models.Court) (models.Court, error) {
	count, err := db.CourtsCollection.CountDocuments(ctx, bson.M{"name": c.Name})
	if err != nil {
		return c, err
	}
	if count > 0 {
		return c, ErrDuplicateName
	}

	c.CourtID = genID()
	c.CreatedAt = time.Now().Unix()
	if _, err := db.CourtsCollection.InsertOne(ctx, c); err != nil {
		return c, err
	}

	// No availability entries are initialized for a new court: absence
	// means every global slot is open until an admin sets an override.
	invalidateCache()
	return c, nil
}

// Update merges the given fields onto an existing court.
func Update(ctx context.Context, id string, c models.Court) error {
	res, err := db.CourtsCollection.UpdateOne(ctx,
		bson.M{"courtid": id},
		bson.M{"$set": bson.M{
			"name":        c.Name,
			"description": c.Description,
			"dayPrice":    c.DayPrice,
			"nightPrice":  c.NightPrice,
			"imageUrl":    c.ImageURL,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	invalidateCache()
	return nil
}

// Remove deletes a court and strips its key from every date's
// availability map. The cascade is best-effort, not atomic with the
// court deletion.
func Remove(ctx context.Context, id string) error {
	var c models.Court
	err := db.CourtsCollection.FindOne(ctx, bson.M{"courtid": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := db.CourtsCollection.DeleteOne(ctx, bson.M{"courtid": id}); err != nil {
		return err
	}

	_, _ = db.AvailabilityCollection.UpdateMany(ctx,
		bson.M{},
		bson.M{"$unset": bson.M{"courts." + c.Name: ""}},
	)

	invalidateCache()
	return nil
}

func invalidateCache() {
	_ = rdx.RdxDel(cacheKey)
}

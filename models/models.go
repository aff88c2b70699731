package models

import "time"

// Reservation status values.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted || s == StatusCancelled
}

type Court struct {
	CourtID     string  `json:"id" bson:"courtid"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	DayPrice    float64 `json:"dayPrice" bson:"dayPrice"`
	NightPrice  float64 `json:"nightPrice" bson:"nightPrice"`
	ImageURL    string  `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedAt   int64   `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// Reservations reference courts by name, matching the availability map.
type Reservation struct {
	ReservationID    string  `json:"id" bson:"reservationid"`
	Date             string  `json:"date" bson:"date"` // RFC 3339 instant
	Court            string  `json:"court" bson:"court"`
	Time             string  `json:"time" bson:"time"` // slot label, e.g. "09:00 - 10:30"
	Name             string  `json:"name" bson:"name"`
	Email            string  `json:"email" bson:"email"`
	Phone            string  `json:"phone" bson:"phone"`
	Price            float64 `json:"price" bson:"price"`
	CourtDescription string  `json:"courtDescription,omitempty" bson:"courtDescription,omitempty"`
	Status           string  `json:"status" bson:"status"`
	CreatedAt        int64   `json:"createdAt" bson:"createdAt"`
}

// BookingDraft is the in-progress booking carried between the select,
// details and confirmation steps.
type BookingDraft struct {
	Date             string  `json:"date"`
	Court            string  `json:"court"`
	Time             string  `json:"time"`
	Price            float64 `json:"price"`
	CourtDescription string  `json:"courtDescription,omitempty"`
}

// SlotClaim is the serialized-write record that makes the reservation
// conflict check atomic: one live claim per (date, court, time).
type SlotClaim struct {
	Date          string `bson:"date"` // yyyy-MM-dd
	Court         string `bson:"court"`
	Time          string `bson:"time"`
	ReservationID string `bson:"reservationid"`
	CreatedAt     int64  `bson:"createdAt"`
}

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Email         string    `json:"email" bson:"email"`
	Password      string    `json:"password,omitempty" bson:"password"`
	Role          []string  `json:"role" bson:"role"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
	LastLogin     time.Time `json:"-" bson:"last_login,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

// Activity is an audit record written by the event worker.
type Activity struct {
	EntityType string `json:"entity_type" bson:"entityType"`
	EntityID   string `json:"entity_id" bson:"entityId"`
	Action     string `json:"action" bson:"action"`
	Detail     string `json:"detail,omitempty" bson:"detail,omitempty"`
	Timestamp  int64  `json:"timestamp" bson:"timestamp"`
}

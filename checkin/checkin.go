package checkin

import (
	"encoding/json"
	"errors"
	"strings"

	"cancha/models"
)

var ErrBadPayload = errors.New("invalid QR payload")

// QRPayload serializes the reservation for the confirmation QR. The
// whole record goes in, matching what the scanner station displays
// offline; only the id is required to check in.
func QRPayload(res models.Reservation) (string, error) {
	data, err := json.Marshal(res)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ParsePayload extracts the reservation id from a scanned QR payload.
func ParsePayload(payload string) (string, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return "", ErrBadPayload
	}

	var decoded struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return "", ErrBadPayload
	}
	if decoded.ID == "" {
		return "", ErrBadPayload
	}
	return decoded.ID, nil
}

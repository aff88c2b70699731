package booking

import (
	"encoding/json"
	"time"

	"cancha/models"
	"cancha/rdx"
	"cancha/utils"
)

// Drafts hold the in-progress booking between the select and details
// screens. They live in Redis under a caller-held token.
const draftTTL = 24 * time.Hour

func draftKey(token string) string {
	return "draft:" + token
}

func SaveDraft(draft models.BookingDraft) (string, error) {
	data, err := json.Marshal(draft)
	if err != nil {
		return "", err
	}

	token := utils.GenerateID(24)
	if err := rdx.SetWithExpiry(draftKey(token), string(data), draftTTL); err != nil {
		return "", err
	}
	return token, nil
}

func LoadDraft(token string) (models.BookingDraft, error) {
	var draft models.BookingDraft

	data, err := rdx.RdxGet(draftKey(token))
	if err != nil {
		return draft, err
	}
	err = json.Unmarshal([]byte(data), &draft)
	return draft, err
}

func DeleteDraft(token string) {
	_ = rdx.RdxDel(draftKey(token))
}

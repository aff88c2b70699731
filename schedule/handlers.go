package schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"cancha/dateutil"
	"cancha/mq"
	"cancha/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /api/timeslots
func ListTimeSlots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	slots, err := ListSlots(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch time slots")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"timeSlots": slots})
}

// POST /api/timeslots
func AddTimeSlot(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Slot string `json:"slot"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Slot == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing slot")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := AddSlot(ctx, body.Slot)
	if err == ErrDuplicateSlot {
		utils.RespondWithError(w, http.StatusConflict, "Este horario ya existe")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add time slot")
		return
	}

	mq.Emit(ctx, "timeslot-added", "schedule", body.Slot, "")
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"ok": true})
}

// DELETE /api/timeslots?slot=...
// Slot labels carry spaces and colons, so the label travels as a query
// parameter rather than a path segment.
func RemoveTimeSlot(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	slot := r.URL.Query().Get("slot")
	if slot == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing slot")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := RemoveSlot(ctx, slot)
	if err == ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Este horario no existe")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove time slot")
		return
	}

	mq.Emit(ctx, "timeslot-removed", "schedule", slot, "")
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/timeslots/generate
// Replaces the whole slot list with fixed-width slots between start and
// end, 90 minutes wide unless intervalMinutes says otherwise. Labels
// that did not survive are pruned from every per-date override.
func GenerateTimeSlots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Start           string `json:"start"`
		End             string `json:"end"`
		IntervalMinutes int    `json:"intervalMinutes,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if body.Start == "" || body.End == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing start or end time")
		return
	}

	interval := DefaultInterval
	if body.IntervalMinutes > 0 {
		interval = time.Duration(body.IntervalMinutes) * time.Minute
	}

	slots, err := GenerateSlots(body.Start, body.End, interval)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := RegenerateSlots(ctx, slots); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store generated slots")
		return
	}

	mq.Emit(ctx, "timeslots-generated", "schedule", "", body.Start+"-"+body.End)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "timeSlots": slots})
}

// GET /api/availability/:date/:court
func GetAvailability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	date := dateutil.Parse(ps.ByName("date"))
	court := ps.ByName("court")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	times, err := AvailableTimes(ctx, date, court)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute availability")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"times": times})
}

// GET /api/availability/:date/:court/override
func GetOverride(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	dateISO := dateutil.ToISODate(dateutil.Parse(ps.ByName("date")))
	court := ps.ByName("court")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	times, exists, err := Override(ctx, dateISO, court)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch override")
		return
	}
	if times == nil {
		times = []string{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"times": times, "exists": exists})
}

// PUT /api/availability/:date/:court
func SetAvailability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	dateISO := dateutil.ToISODate(dateutil.Parse(ps.ByName("date")))
	court := ps.ByName("court")

	var body struct {
		Times []string `json:"times"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := SetOverride(ctx, dateISO, court, body.Times); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save availability")
		return
	}

	mq.Emit(ctx, "availability-set", "availability", dateISO+"/"+court, "")
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
}

package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"cancha/booking"
	"cancha/models"
	"cancha/mq"
	"cancha/utils"

	"github.com/julienschmidt/httprouter"
)

// MatchesSearch is the dashboard's free-text filter over name, email,
// id and court.
func MatchesSearch(res models.Reservation, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(res.Name), term) ||
		strings.Contains(strings.ToLower(res.Email), term) ||
		strings.Contains(strings.ToLower(res.ReservationID), term) ||
		strings.Contains(strings.ToLower(res.Court), term)
}

// FilterReservations applies the status filter and search term the way
// the dashboard list does.
func FilterReservations(all []models.Reservation, status, term string) []models.Reservation {
	term = utils.NormalizeSearchTerm(term)
	out := []models.Reservation{}
	for _, res := range all {
		if status != "" && status != "all" && res.Status != status {
			continue
		}
		if !MatchesSearch(res, term) {
			continue
		}
		out = append(out, res)
	}
	return out
}

// GET /api/admin/reservations?status=&q=
func ListReservations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	all, err := booking.List(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reservations")
		return
	}

	filtered := FilterReservations(all, r.URL.Query().Get("status"), r.URL.Query().Get("q"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"reservations": filtered})
}

// PUT /api/admin/reservations/:id/status
func UpdateReservationStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if !models.ValidStatus(body.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := booking.SetStatus(ctx, id, body.Status)
	if err == booking.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Reserva no encontrada")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	mq.Emit(ctx, "reservation-status", "reservation", id, body.Status)
	booking.BroadcastChange(updated.Court)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true, "reservation": updated})
}

// DELETE /api/admin/reservations/:id
func DeleteReservation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := booking.Get(ctx, id)
	if err == booking.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Reserva no encontrada")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reservation")
		return
	}

	if err := booking.Delete(ctx, id); err == booking.ErrInvalidState {
		utils.RespondWithError(w, http.StatusConflict, "Solo se pueden eliminar reservas canceladas")
		return
	} else if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete reservation")
		return
	}

	mq.Emit(ctx, "reservation-deleted", "reservation", id, res.Court)
	booking.BroadcastChange(res.Court)
	w.WriteHeader(http.StatusNoContent)
}

package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"cancha/courts"
	"cancha/dateutil"
	"cancha/models"
	"cancha/mq"
	"cancha/utils"

	"github.com/julienschmidt/httprouter"
)

// POST /api/booking/draft
// Screen 1 hands off here: the price is computed server-side from the
// court's day/night rates and the chosen slot.
func SaveDraftHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Date  string `json:"date"`
		Court string `json:"court"`
		Time  string `json:"time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if body.Date == "" || body.Court == "" || body.Time == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Date, court and time are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	court, err := courts.GetByName(ctx, body.Court)
	if err == courts.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Esta cancha no existe")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch court")
		return
	}

	draft := models.BookingDraft{
		Date:             dateutil.Parse(body.Date).Format(time.RFC3339),
		Court:            court.Name,
		Time:             body.Time,
		Price:            PriceFor(court, body.Time),
		CourtDescription: court.Description,
	}

	token, err := SaveDraft(draft)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store draft")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"token": token, "draft": draft})
}

// GET /api/booking/draft/:token
func GetDraftHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	draft, err := LoadDraft(ps.ByName("token"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Draft not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"draft": draft})
}

// POST /api/reservations
// Screen 2 submits contact details plus either a draft token or the full
// selection inline.
func CreateReservation(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		DraftToken string `json:"draftToken,omitempty"`
		Date       string `json:"date,omitempty"`
		Court      string `json:"court,omitempty"`
		Time       string `json:"time,omitempty"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if body.Name == "" || body.Email == "" || body.Phone == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name, email and phone are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var draft models.BookingDraft
	if body.DraftToken != "" {
		var err error
		draft, err = LoadDraft(body.DraftToken)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Draft not found or expired")
			return
		}
	} else {
		if body.Date == "" || body.Court == "" || body.Time == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Date, court and time are required")
			return
		}
		court, err := courts.GetByName(ctx, body.Court)
		if err == courts.ErrNotFound {
			utils.RespondWithError(w, http.StatusNotFound, "Esta cancha no existe")
			return
		}
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch court")
			return
		}
		draft = models.BookingDraft{
			Date:             dateutil.Parse(body.Date).Format(time.RFC3339),
			Court:            court.Name,
			Time:             body.Time,
			Price:            PriceFor(court, body.Time),
			CourtDescription: court.Description,
		}
	}

	res, err := Create(ctx, models.Reservation{
		Date:             draft.Date,
		Court:            draft.Court,
		Time:             draft.Time,
		Price:            draft.Price,
		CourtDescription: draft.CourtDescription,
		Name:             body.Name,
		Email:            body.Email,
		Phone:            body.Phone,
	})
	if err == ErrSlotTaken {
		utils.RespondWithError(w, http.StatusConflict, "Este horario ya está reservado")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create reservation")
		return
	}

	if body.DraftToken != "" {
		DeleteDraft(body.DraftToken)
	}

	mq.Emit(ctx, "reservation-created", "reservation", res.ReservationID, res.Court)
	BroadcastChange(res.Court)
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"id": res.ReservationID, "reservation": res})
}

// GET /api/reservations/:id
// Screen 3 loads the confirmed reservation for display.
func GetReservation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := Get(ctx, ps.ByName("id"))
	if err == ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Reserva no encontrada")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reservation")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"reservation": res})
}

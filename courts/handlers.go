package courts

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"cancha/models"
	"cancha/mq"
	"cancha/rdx"
	"cancha/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /api/courts
func ListCourts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	courts, err := List(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch courts")
		return
	}

	payload := utils.M{"courts": courts}
	if data, err := json.Marshal(payload); err == nil {
		if err := rdx.SetWithExpiry(cacheKey, string(data), 5*time.Minute); err != nil {
			log.Printf("Failed to cache court list: %v", err)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, payload)
}

// POST /api/courts
func AddCourt(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var c models.Court
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if c.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Court name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	created, err := Add(ctx, c)
	if err == ErrDuplicateName {
		utils.RespondWithError(w, http.StatusConflict, "Esta cancha ya existe")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add court")
		return
	}

	mq.Emit(ctx, "court-created", "court", created.CourtID, created.Name)
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"court": created})
}

// PUT /api/courts/:id
func UpdateCourt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	var c models.Court
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := Update(ctx, id, c)
	if err == ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Esta cancha no existe")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update court")
		return
	}

	mq.Emit(ctx, "court-updated", "court", id, c.Name)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
}

// DELETE /api/courts/:id
func RemoveCourt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err := Remove(ctx, id)
	if err == ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Esta cancha no existe")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove court")
		return
	}

	mq.Emit(ctx, "court-deleted", "court", id, "")
	w.WriteHeader(http.StatusNoContent)
}

package checkin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cancha/booking"
	"cancha/dateutil"
	"cancha/models"
	"cancha/mq"
	"cancha/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// POST /api/checkin
// The scanner posts the decoded QR text. A pending reservation is
// completed; anything else is reported back so the station keeps
// scanning.
func Scan(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Payload string `json:"payload"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	id, err := ParsePayload(body.Payload)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "QR inválido. No contiene datos de reserva.")
		return
	}

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

	switch res.Status {
	case models.StatusPending:
		updated, err := booking.SetStatus(ctx, id, models.StatusCompleted)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to complete reservation")
			return
		}
		mq.Emit(ctx, "reservation-checkin", "reservation", id, updated.Court)
		booking.BroadcastChange(updated.Court)
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"checkedIn":   true,
			"reservation": updated,
			"message":     fmt.Sprintf("Reserva %s completada con éxito", shortID(id)),
		})
	case models.StatusCompleted:
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"checkedIn":   false,
			"reservation": res,
			"message":     fmt.Sprintf("Reserva %s ya estaba completada", shortID(id)),
		})
	default:
		utils.RespondWithJSON(w, http.StatusConflict, utils.M{
			"checkedIn":   false,
			"reservation": res,
			"message":     "La reserva está cancelada",
		})
	}
}

// GET /api/reservations/:id/qr
func QRImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := booking.Get(ctx, ps.ByName("id"))
	if err == booking.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Reserva no encontrada")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reservation")
		return
	}

	payload, err := QRPayload(res)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to build QR payload")
		return
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// GET /api/reservations/:id/ticket
// Printable confirmation with the same QR the scanner reads.
func PrintTicket(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := booking.Get(ctx, ps.ByName("id"))
	if err == booking.ErrNotFound {
		utils.RespondWithError(w, http.StatusNotFound, "Reserva no encontrada")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reservation")
		return
	}

	payload, err := QRPayload(res)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to build QR payload")
		return
	}

	qrPNG, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Reserva de Cancha")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("ID: %s", res.ReservationID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Nombre: %s", res.Name))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Cancha: %s", res.Court))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Fecha: %s", dateutil.Format(dateutil.Parse(res.Date), "")))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Hora: %s", res.Time))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Precio: $%.2f", res.Price))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=reserva-"+res.ReservationID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8] + "..."
	}
	return id
}

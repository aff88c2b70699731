package filemgr

import (
	"context"
	"net/http"
	"time"

	"cancha/db"
	"cancha/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// POST /api/upload
// Accepts a multipart form with one "file" image field and responds with
// the public URL of the stored file.
func UploadCourtImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(MaxImageSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "No se ha proporcionado ningún archivo")
		return
	}

	filename, err := SaveCourtImage(file, header)
	if err == ErrNotImage {
		utils.RespondWithError(w, http.StatusBadRequest, "El archivo debe ser una imagen")
		return
	}
	if err == ErrFileTooLarge {
		utils.RespondWithError(w, http.StatusBadRequest, "El archivo es demasiado grande")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error al procesar la solicitud")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	_, _ = db.FilesCollection.InsertOne(ctx, bson.M{
		"filename":   filename,
		"original":   utils.SanitizeFilename(header.Filename),
		"size":       header.Size,
		"uploadedAt": time.Now().Unix(),
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"url": "/static/courtpic/" + filename})
}

package handler

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/Yhabib05/movie-recommender/internal/logging"
	"github.com/Yhabib05/movie-recommender/internal/models"
)

// Utilidad pequeña para respuestas JSON.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warn().Err(err).Msg("error escribiendo respuesta JSON")
	}
}

// writeDetail responde {"detail": msg}.
func writeDetail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Detail: msg})
}

// internalError no expone el error al cliente; solo queda en el log.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

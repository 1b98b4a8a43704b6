package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Yhabib05/movie-recommender/internal/logging"
	"github.com/Yhabib05/movie-recommender/internal/service"
)

// IndexHandler expone el estado del catálogo/índice para mantenimiento.
type IndexHandler struct {
	svc *service.IndexService
}

func NewIndexHandler(svc *service.IndexService) *IndexHandler {
	return &IndexHandler{svc: svc}
}

// @Summary Resumen del índice KNN
// @Description Filas del catálogo e índice, ancho del vector, métrica y modelo cargado.
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.IndexSummary
// @Router /admin/index/summary [get]
func (h *IndexHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Summary())
}

// @Summary Historial de recomendaciones de un título
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param title query string true "título exacto"
// @Param limit query int false "límite (default 20)"
// @Success 200 {array} models.Recommendation
// @Failure 501 {object} models.ErrorResponse
// @Router /admin/recommendations/history [get]
func (h *IndexHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		writeDetail(w, http.StatusBadRequest, "title is required")
		return
	}
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	logging.Debug().Str("operator", OperatorFromContext(r.Context())).Str("title", title).Msg("consulta de historial")

	recs, err := h.svc.History(r.Context(), title, limit)
	if err != nil {
		if errors.Is(err, service.ErrHistoryDisabled) {
			writeDetail(w, http.StatusNotImplemented, err.Error())
			return
		}
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

// Helper para montar rutas en el router
func MountAdminRoutes(r chi.Router, h *IndexHandler) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/index/summary", h.GetSummary)
		r.Get("/recommendations/history", h.GetHistory)
	})
}

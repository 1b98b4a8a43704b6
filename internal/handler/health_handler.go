package handler

import "net/http"

type healthResponse struct {
	Status    string `json:"status"`
	Movies    int    `json:"movies"`
	IndexRows int    `json:"indexRows"`
}

// @Summary Healthcheck
// @Description Catálogo e índice cargados (el proceso no arranca sin ellos).
// @Tags health
// @Produce json
// @Success 200 {object} handler.healthResponse
// @Router /health [get]
func (h *IndexHandler) Health(w http.ResponseWriter, r *http.Request) {
	sum := h.svc.Summary()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Movies:    sum.CatalogRows,
		IndexRows: sum.IndexRows,
	})
}

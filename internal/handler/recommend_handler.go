package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/Yhabib05/movie-recommender/internal/logging"
	"github.com/Yhabib05/movie-recommender/internal/models"
	"github.com/Yhabib05/movie-recommender/internal/service"
)

const maxBodyBytes = 1 << 20

type RecommendHandler struct {
	svc      *service.RecommendService
	validate *validator.Validate
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s, validate: validator.New()}
}

// decodeRequest devuelve un mensaje para el 422 si el body no sirve.
func (h *RecommendHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (string, string) {
	var req models.RecommendRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		return "", "request body must be a JSON object with a movie_name field"
	}
	if err := h.validate.Struct(req); err != nil {
		return "", "movie_name is required"
	}
	return *req.MovieName, ""
}

// @Summary Recomendaciones por similitud de géneros
// @Description Devuelve hasta 5 películas cercanas a la pedida (la propia película suele ser la primera).
// @Tags recommend
// @Accept json
// @Produce json
// @Param body body models.RecommendRequest true "título exacto"
// @Success 200 {array} models.RecItem
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /getRecommendations [post]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	title, invalid := h.decodeRequest(w, r)
	if invalid != "" {
		writeDetail(w, http.StatusUnprocessableEntity, invalid)
		return
	}

	items, err := h.svc.GetRecommendations(r.Context(), title)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			writeDetail(w, http.StatusNotFound, err.Error())
			return
		}
		internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsMessage es lo que el servidor manda por el websocket.
type wsMessage struct {
	Type   string             `json:"type"`
	Movie  string             `json:"movie,omitempty"`
	Items  []models.ScoredRec `json:"items,omitempty"`
	Status int                `json:"status,omitempty"`
	Detail string             `json:"detail,omitempty"`
}

// @Summary Recomendaciones por WebSocket
// @Description El cliente manda {"movie_name": "..."} y recibe un mensaje "recommendations" o "error" por cada pedido.
// @Tags recommend
// @Success 101
// @Router /ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade ya respondió con el error HTTP
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxBodyBytes)
	if err := conn.WriteJSON(wsMessage{Type: "ready"}); err != nil {
		return
	}

	for {
		var req models.RecommendRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Debug().Err(err).Msg("ws cerrado")
			}
			return
		}

		msg := h.wsAnswer(r, req)
		_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func (h *RecommendHandler) wsAnswer(r *http.Request, req models.RecommendRequest) wsMessage {
	if err := h.validate.Struct(req); err != nil {
		return wsMessage{Type: "error", Status: http.StatusUnprocessableEntity, Detail: "movie_name is required"}
	}

	title := *req.MovieName
	items, err := h.svc.Neighbors(r.Context(), title)
	switch {
	case errors.Is(err, service.ErrMovieNotFound):
		return wsMessage{Type: "error", Movie: title, Status: http.StatusNotFound, Detail: err.Error()}
	case err != nil:
		logging.Error().Err(err).Str("movie", title).Msg("ws recommendation failed")
		return wsMessage{Type: "error", Movie: title, Status: http.StatusInternalServerError,
			Detail: http.StatusText(http.StatusInternalServerError)}
	}
	return wsMessage{Type: "recommendations", Movie: title, Items: items}
}

// internal/handler/movie_handler.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Yhabib05/movie-recommender/internal/service"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler { return &MovieHandler{svc: s} }

// @Summary Get movie
// @Tags movies
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} models.Movie
// @Failure 404 {object} models.ErrorResponse
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "movieId must be an integer")
		return
	}
	m := h.svc.GetMovie(id)
	if m == nil {
		writeDetail(w, http.StatusNotFound, "Movie "+strconv.Itoa(id)+" not found in the dataset.")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// @Summary Buscar películas del catálogo (paginado)
// @Description Útil para encontrar el título exacto que pide /getRecommendations.
// @Tags movies
// @Produce json
// @Param q query string false "substring del título (sin distinguir mayúsculas)"
// @Param genre query string false "filtrar por género"
// @Param limit query int false "límite (default 20, máx 100)"
// @Param offset query int false "offset"
// @Success 200 {array} models.Movie
// @Router /movies/search [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	genre := r.URL.Query().Get("genre")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	writeJSON(w, http.StatusOK, h.svc.Search(q, genre, limit, offset))
}

// @Summary Géneros (dimensiones del vector de features)
// @Tags movies
// @Produce json
// @Success 200 {array} service.GenreCount
// @Router /genres [get]
func (h *MovieHandler) Genres(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Genres())
}

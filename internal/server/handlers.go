package server

import (
	"context"
	"encoding/csv"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vanshika/costars/internal/domain"
	"github.com/vanshika/costars/internal/report"
	"github.com/vanshika/costars/internal/service"
)

// APIHandlers exposes HTTP handlers for the REST API.
type APIHandlers struct {
	logger  *slog.Logger
	service *service.ConnectionService
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, svc *service.ConnectionService) *APIHandlers {
	return &APIHandlers{
		logger:  logger,
		service: svc,
	}
}

func (h *APIHandlers) handleConnection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	query := r.URL.Query()
	from := strings.TrimSpace(query.Get("from"))
	to := strings.TrimSpace(query.Get("to"))
	if from == "" || to == "" {
		writeError(w, http.StatusBadRequest, "from and to are required")
		return
	}

	res, err := h.service.FindConnection(r.Context(), from, to)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to find connection")
		return
	}

	status := http.StatusOK
	if res.Status == domain.PathNotFound {
		status = http.StatusNotFound
	}

	if strings.EqualFold(query.Get("format"), "text") {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		_ = report.WriteText(w, res)
		return
	}
	respondJSON(w, status, report.View(res))
}

func (h *APIHandlers) handleActorMovies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	movies, err := h.service.MoviesOf(name)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to fetch movies")
		return
	}
	respondJSON(w, http.StatusOK, actorMoviesResponse{Actor: name, Movies: movies})
}

func (h *APIHandlers) handleMovieActors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	actors, err := h.service.ActorsOf(title)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to fetch cast")
		return
	}
	respondJSON(w, http.StatusOK, movieActorsResponse{Movie: title, Actors: actors})
}

func (h *APIHandlers) handleCoStars(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	query := r.URL.Query()
	name := strings.TrimSpace(query.Get("name"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	costars, err := h.service.CoStars(name)
	if err != nil {
		h.writeServiceError(w, r, err, "failed to fetch co-stars")
		return
	}

	if strings.EqualFold(query.Get("format"), "csv") {
		writeCoStarsCSV(w, costars)
		return
	}

	response := coStarsResponse{Actor: name, CoStars: make([]coStar, 0, len(costars))}
	for _, c := range costars {
		response.CoStars = append(response.CoStars, coStar{Actor: c.Actor, Movies: c.Movies})
	}
	respondJSON(w, http.StatusOK, response)
}

func (h *APIHandlers) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	stats, err := h.service.Stats()
	if err != nil {
		h.writeServiceError(w, r, err, "failed to fetch stats")
		return
	}
	respondJSON(w, http.StatusOK, newStatsResponse(stats))
}

func (h *APIHandlers) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	snap, err := h.service.Load(r.Context())
	if err != nil {
		h.logger.Error("dataset reload failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "failed to reload dataset")
		return
	}
	respondJSON(w, http.StatusOK, newStatsResponse(snap.Stats()))
}

// writeServiceError maps service errors onto HTTP statuses.
func (h *APIHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidQuery):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnknownActor):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotLoaded):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusGatewayTimeout, "request timed out")
	case errors.Is(err, context.Canceled):
		// Client went away; nobody is left to read a body.
		w.WriteHeader(http.StatusRequestTimeout)
	default:
		h.logger.Error(fallback, "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

func writeCoStarsCSV(w http.ResponseWriter, costars []domain.CoStar) {
	w.Header().Set("Content-Type", "text/csv")
	w.WriteHeader(http.StatusOK)
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"actor", "shared_movies", "movies"})
	for _, c := range costars {
		_ = cw.Write([]string{c.Actor, strconv.Itoa(len(c.Movies)), strings.Join(c.Movies, "; ")})
	}
	cw.Flush()
}

type actorMoviesResponse struct {
	Actor  string   `json:"actor"`
	Movies []string `json:"movies"`
}

type movieActorsResponse struct {
	Movie  string   `json:"movie"`
	Actors []string `json:"actors"`
}

type coStar struct {
	Actor  string   `json:"actor"`
	Movies []string `json:"movies"`
}

type coStarsResponse struct {
	Actor   string   `json:"actor"`
	CoStars []coStar `json:"costars"`
}

type statsResponse struct {
	Actors   int    `json:"actors"`
	Movies   int    `json:"movies"`
	Edges    int    `json:"edges"`
	LoadedAt string `json:"loadedAt"`
}

func newStatsResponse(stats domain.GraphStats) statsResponse {
	return statsResponse{
		Actors:   stats.Actors,
		Movies:   stats.Movies,
		Edges:    stats.Edges,
		LoadedAt: stats.LoadedAt.UTC().Format(time.RFC3339),
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{
		"error": msg,
	})
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// Package web exposes a small read-only HTTP API next to the SSH server:
// a health check and the round ledger as JSON.
package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/ufo-blaster/internal/config"
	"github.com/vovakirdan/ufo-blaster/internal/storage"
)

// Limits for /api/scores.
const (
	defaultLimit = 10
	maxLimit     = 100
)

var errNoStore = errors.New("round ledger unavailable")

// StatusHandler serves the health check and the ledger endpoints.
type StatusHandler struct {
	store   *storage.Store
	started time.Time
}

func NewStatusHandler(store *storage.Store) *StatusHandler {
	return &StatusHandler{store: store, started: time.Now()}
}

func (h *StatusHandler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/scores", h.scores)
		r.Get("/stats", h.stats)
	})
}

type roundJSON struct {
	Player     string    `json:"player"`
	Score      int       `json:"score"`
	Outcome    string    `json:"outcome"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

type scoresResponse struct {
	Level  string      `json:"level"`
	Best   int         `json:"best"` // Over every round of the level, not only the listed ones
	Rounds []roundJSON `json:"rounds"`
}

type levelStatsJSON struct {
	Level     int     `json:"level"`
	Name      string  `json:"name"`
	Rounds    int     `json:"rounds"`
	Wins      int     `json:"wins"`
	BestScore int     `json:"best_score"`
	AvgScore  float64 `json:"avg_score"`
}

type statsResponse struct {
	Levels []levelStatsJSON `json:"levels"`
}

func (h *StatusHandler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"uptime": time.Since(h.started).Truncate(time.Second).String(),
	})
}

func (h *StatusHandler) scores(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, errNoStore)
		return
	}

	level, err := config.ParseDifficulty(r.URL.Query().Get("level"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rounds, err := h.store.TopRounds(r.Context(), int(level), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	best, err := h.store.BestScore(r.Context(), int(level))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := scoresResponse{Level: level.String(), Best: best, Rounds: make([]roundJSON, 0, len(rounds))}
	for _, rr := range rounds {
		resp.Rounds = append(resp.Rounds, roundJSON{
			Player:     rr.Player,
			Score:      rr.Score,
			Outcome:    rr.Outcome,
			DurationMs: rr.Duration.Milliseconds(),
			CreatedAt:  rr.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *StatusHandler) stats(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, errNoStore)
		return
	}

	stats, err := h.store.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := statsResponse{Levels: make([]levelStatsJSON, 0, len(stats))}
	for _, s := range stats {
		resp.Levels = append(resp.Levels, levelStatsJSON{
			Level:     s.Difficulty,
			Name:      config.Difficulty(s.Difficulty).String(),
			Rounds:    s.Rounds,
			Wins:      s.Wins,
			BestScore: s.BestScore,
			AvgScore:  s.AvgScore,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseLimit reads the optional limit parameter, clamped to [1, maxLimit].
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("limit must be a number")
	}
	return min(max(n, 1), maxLimit), nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ufo-blaster/internal/storage"
)

func newTestServer(t *testing.T, seed bool) *httptest.Server {
	t.Helper()
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if seed {
		ctx := context.Background()
		for _, r := range []storage.RoundResult{
			{Player: "ann", Difficulty: 1, Score: 40, Outcome: "lost", Duration: 20 * time.Second},
			{Player: "bob", Difficulty: 1, Score: 99, Outcome: "won", Duration: 70 * time.Second},
			{Player: "cat", Difficulty: 3, Score: 15, Outcome: "lost", Duration: 12 * time.Second},
		} {
			if _, err := store.SaveRound(ctx, r); err != nil {
				t.Fatalf("SaveRound() failed: %v", err)
			}
		}
	}

	srv := httptest.NewServer(NewRouter(store, log.New(io.Discard)))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, expected application/json", ct)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, false)

	var body map[string]string
	if code := getJSON(t, srv.URL+"/healthz", &body); code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", code)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, expected ok", body["status"])
	}
}

func TestScores(t *testing.T) {
	srv := newTestServer(t, true)

	var body scoresResponse
	if code := getJSON(t, srv.URL+"/api/scores?level=novice", &body); code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", code)
	}

	if body.Level != "Novice" {
		t.Errorf("level = %q, expected Novice", body.Level)
	}
	if len(body.Rounds) != 2 {
		t.Fatalf("expected 2 novice rounds, got %d", len(body.Rounds))
	}
	if body.Rounds[0].Player != "bob" || body.Rounds[0].Score != 99 {
		t.Errorf("unexpected top round: %+v", body.Rounds[0])
	}
	if body.Rounds[0].DurationMs != 70000 {
		t.Errorf("duration_ms = %d, expected 70000", body.Rounds[0].DurationMs)
	}
	if body.Best != 99 {
		t.Errorf("best = %d, expected 99", body.Best)
	}
}

func TestScoresBestCoversUnlistedRounds(t *testing.T) {
	srv := newTestServer(t, true)

	tests := []struct {
		query string
		best  int
	}{
		{"?level=1&limit=1", 99},
		{"?level=2", 0},
		{"?level=master", 15},
	}
	for _, tc := range tests {
		var body scoresResponse
		if code := getJSON(t, srv.URL+"/api/scores"+tc.query, &body); code != http.StatusOK {
			t.Fatalf("%s: status = %d, expected 200", tc.query, code)
		}
		if body.Best != tc.best {
			t.Errorf("%s: best = %d, expected %d", tc.query, body.Best, tc.best)
		}
	}
}

func TestScoresParams(t *testing.T) {
	srv := newTestServer(t, true)

	tests := []struct {
		name   string
		query  string
		status int
		rounds int
	}{
		{"default level", "", http.StatusOK, 2},
		{"numeric level", "?level=3", http.StatusOK, 1},
		{"limit clamps low", "?level=1&limit=0", http.StatusOK, 1},
		{"limit", "?level=1&limit=1", http.StatusOK, 1},
		{"unknown level", "?level=9", http.StatusBadRequest, 0},
		{"bad limit", "?limit=lots", http.StatusBadRequest, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var body scoresResponse
			code := getJSON(t, srv.URL+"/api/scores"+tc.query, &body)
			if code != tc.status {
				t.Fatalf("status = %d, expected %d", code, tc.status)
			}
			if len(body.Rounds) != tc.rounds {
				t.Errorf("got %d rounds, expected %d", len(body.Rounds), tc.rounds)
			}
		})
	}
}

func TestStats(t *testing.T) {
	srv := newTestServer(t, true)

	var body statsResponse
	if code := getJSON(t, srv.URL+"/api/stats", &body); code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", code)
	}

	if len(body.Levels) != 2 {
		t.Fatalf("expected 2 levels with rounds, got %d", len(body.Levels))
	}
	novice := body.Levels[0]
	if novice.Name != "Novice" || novice.Rounds != 2 || novice.Wins != 1 || novice.BestScore != 99 {
		t.Errorf("unexpected novice stats: %+v", novice)
	}
}

func TestNilStore(t *testing.T) {
	srv := httptest.NewServer(NewRouter(nil, log.New(io.Discard)))
	defer srv.Close()

	if code := getJSON(t, srv.URL+"/api/stats", nil); code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, expected 503", code)
	}
	if code := getJSON(t, srv.URL+"/healthz", nil); code != http.StatusOK {
		t.Errorf("health should not need the ledger, got %d", code)
	}
}

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/npratt/voyage/internal/trips"
)

// TripsBackend is a fake catalog backend serving GET /api/trips.
type TripsBackend struct {
	*httptest.Server

	mu         sync.Mutex
	trips      []trips.Trip
	status     int
	categories []string
}

// NewTripsBackend starts a backend serving list. It is closed when the test ends.
func NewTripsBackend(t *testing.T, list []trips.Trip) *TripsBackend {
	t.Helper()
	b := &TripsBackend{trips: list, status: http.StatusOK}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Close)
	return b
}

// SetStatus makes every following request fail with status.
func (b *TripsBackend) SetStatus(status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = status
}

// Categories returns the category query of every request so far.
func (b *TripsBackend) Categories() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.categories))
	copy(out, b.categories)
	return out
}

func (b *TripsBackend) serve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/api/trips" {
		http.NotFound(w, r)
		return
	}

	category := r.URL.Query().Get("category")

	b.mu.Lock()
	b.categories = append(b.categories, category)
	status := b.status
	list := make([]trips.Trip, 0, len(b.trips))
	for _, t := range b.trips {
		if category == "" || t.Category == category {
			list = append(list, t)
		}
	}
	b.mu.Unlock()

	if status != http.StatusOK {
		http.Error(w, http.StatusText(status), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

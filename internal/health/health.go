package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/clambin/froeling-monitor/internal/poller"
)

// Health serves the outcome of the last polls. It reports 503 until the poller publishes its first update.
type Health struct {
	poller.Poller
	logger  *slog.Logger
	update  poller.Update
	updated bool
	lock    sync.RWMutex
}

// Report is the body of a health response.
type Report struct {
	Status     poller.Status `json:"status"`
	LastUpdate time.Time     `json:"last_update"`
	Facilities int           `json:"facilities"`
	Components int           `json:"components"`
	Parameters int           `json:"parameters"`
}

func New(p poller.Poller, logger *slog.Logger) *Health {
	return &Health{
		Poller: p,
		logger: logger,
	}
}

func (h *Health) Run(ctx context.Context) error {
	h.logger.Debug("started")
	defer h.logger.Debug("stopped")

	ch := h.Poller.Subscribe()
	defer h.Poller.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			h.lock.Lock()
			h.update = update
			h.updated = true
			h.lock.Unlock()
		}
	}
}

func (h *Health) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	h.lock.RLock()
	defer h.lock.RUnlock()
	if !h.updated {
		http.Error(w, "no update yet", http.StatusServiceUnavailable)
		h.Poller.Refresh()
		return
	}

	report := Report{
		Status:     h.Poller.Status(),
		LastUpdate: h.update.Timestamp,
		Facilities: len(h.update.Index.Facilities),
		Components: len(h.update.Index.Components),
		Parameters: len(h.update.Parameters),
	}

	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

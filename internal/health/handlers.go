package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"
)

// draining is set during graceful shutdown so load balancers stop routing
// new requests while in-flight ones finish. Zero value means ready.
var draining atomic.Bool

// SetReady flips the readiness gate. Pass false when shutdown begins.
func SetReady(ready bool) {
	draining.Store(!ready)
}

// Checker represents optional dependencies that can be probed for readiness.
type Checker interface {
	PingCache(ctx context.Context, timeout time.Duration) error
}

// Handler exposes HTTP handlers for health endpoints. The core itself is
// in-memory and always ready; only the optional cache is probed.
type Handler struct {
	Checker      Checker
	CacheTimeout time.Duration
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on the shutdown gate and dependency probes.
func (h Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if draining.Load() {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}
	cacheStatus := "disabled"
	if h.Checker != nil {
		cacheStatus = "ok"
		if err := h.Checker.PingCache(r.Context(), h.cacheTimeout()); err != nil {
			cacheStatus = err.Error()
		}
	}
	status := map[string]string{
		"store": "ok",
		"cache": cacheStatus,
	}
	w.Header().Set("Content-Type", "application/json")
	if cacheStatus != "ok" && cacheStatus != "disabled" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(status)
}

func (h Handler) cacheTimeout() time.Duration {
	if h.CacheTimeout <= 0 {
		return 300 * time.Millisecond
	}
	return h.CacheTimeout
}

package metrics

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/aristath/trade-journal/internal/modules/journal"
)

// TradeLister provides the trade list the engine works on
type TradeLister interface {
	List() ([]journal.Trade, error)
}

// ConfigSource resolves the configured calculation inputs
type ConfigSource interface {
	Config() Config
}

// Handlers contains HTTP handlers for derived metrics
type Handlers struct {
	trades TradeLister
	source ConfigSource
	log    zerolog.Logger
}

// NewHandlers creates a new metrics handlers instance
func NewHandlers(trades TradeLister, source ConfigSource, log zerolog.Logger) *Handlers {
	return &Handlers{
		trades: trades,
		source: source,
		log:    log.With().Str("handler", "metrics").Logger(),
	}
}

// HandleSummary returns aggregate performance statistics
// GET /api/metrics/summary
func (h *Handlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	trades, err := h.trades.List()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list trades")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	cfg := h.resolveConfig(r)
	writeJSON(w, http.StatusOK, Summarize(trades, cfg))
}

// HandleEquity returns the cumulative equity series
// GET /api/metrics/equity
func (h *Handlers) HandleEquity(w http.ResponseWriter, r *http.Request) {
	trades, err := h.trades.List()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list trades")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	cfg := h.resolveConfig(r)
	writeJSON(w, http.StatusOK, EquitySeries(trades, cfg))
}

// resolveConfig starts from the stored settings and applies any query
// overrides. Unparseable overrides are ignored.
func (h *Handlers) resolveConfig(r *http.Request) Config {
	cfg := h.source.Config()

	if v := r.URL.Query().Get("capital"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.StartingCapital = f
		}
	}
	if v := r.URL.Query().Get("risk_percent"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RiskPercent = f
		}
	}
	if v := r.URL.Query().Get("value_per_lot"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.ValuePerLot = f
		}
	}

	return cfg
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

package journal

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// Handlers contains HTTP handlers for the trade journal API
type Handlers struct {
	repo *TradeRepository
	log  zerolog.Logger
}

// NewHandlers creates a new journal handlers instance
func NewHandlers(repo *TradeRepository, log zerolog.Logger) *Handlers {
	return &Handlers{
		repo: repo,
		log:  log.With().Str("handler", "journal").Logger(),
	}
}

// HandleListTrades returns all trades, oldest first
// GET /api/trades
func (h *Handlers) HandleListTrades(w http.ResponseWriter, r *http.Request) {
	trades, err := h.repo.List()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list trades")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Encode an empty collection as [], not null
	if trades == nil {
		trades = make([]Trade, 0)
	}

	writeJSON(w, http.StatusOK, trades)
}

// HandleCreateTrade stores whatever field set arrives, stamped with a
// server-side id and creation time
// POST /api/trades
func (h *Handlers) HandleCreateTrade(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to read request body")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	trade, err := ParsePayload(body)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to decode trade payload")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	stored, err := h.repo.Create(trade)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create trade")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, stored)
}

// HandleDeleteTrade removes a trade by identity. Responds with success even
// when the identity matched nothing.
// DELETE /api/trades
func (h *Handlers) HandleDeleteTrade(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode delete request")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.repo.Delete(req.ID); err != nil {
		h.log.Error().Err(err).Str("id", req.ID).Msg("Failed to delete trade")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data) // Ignore encode error - already committed response
}

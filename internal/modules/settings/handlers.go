package settings

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// Handlers contains HTTP handlers for journal settings
type Handlers struct {
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new settings handlers instance
func NewHandlers(service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("handler", "settings").Logger(),
	}
}

// HandleGetSettings returns the effective journal configuration
// GET /api/settings
func (h *Handlers) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Config())
}

// HandleUpdateSettings stores any subset of the three configuration values
// PUT /api/settings
func (h *Handlers) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Capital     *float64 `json:"capital"`
		RiskPercent *float64 `json:"riskPercent"`
		ValuePerLot *float64 `json:"valuePerLot"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid settings payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Update(req.Capital, req.RiskPercent, req.ValuePerLot); err != nil {
		h.log.Error().Err(err).Msg("Failed to update settings")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Config())
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

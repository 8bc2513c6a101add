package server

import (
	_ "embed"
	"net/http"
)

//go:embed ui/index.html
var dashboardHTML []byte

// handleDashboard serves the embedded single-page journal UI
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(dashboardHTML)
}

package metrics

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/trade-journal/internal/modules/journal"
)

// stubLister serves a fixed trade list for testing
type stubLister struct {
	trades []journal.Trade
	err    error
}

func (s *stubLister) List() ([]journal.Trade, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.trades, nil
}

// stubConfig returns a fixed configuration
type stubConfig struct {
	cfg Config
}

func (s *stubConfig) Config() Config {
	return s.cfg
}

func newTestHandlers(lister *stubLister) *Handlers {
	return NewHandlers(lister, &stubConfig{cfg: DefaultConfig()}, zerolog.Nop())
}

func TestHandleSummary(t *testing.T) {
	lister := &stubLister{trades: []journal.Trade{
		{Position: journal.PositionBuy, Lot: 1, Entry: 2000, Exit: 2010},
	}}
	handler := newTestHandlers(lister)

	req := httptest.NewRequest("GET", "/metrics/summary", nil)
	w := httptest.NewRecorder()
	handler.HandleSummary(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var summary Summary
	require.NoError(t, json.NewDecoder(w.Body).Decode(&summary))
	assert.Equal(t, 1, summary.TradeCount)
	assert.Equal(t, 100.0, summary.WinRate)
	assert.Equal(t, 1000.0, summary.NetProfit)
}

func TestHandleSummary_QueryOverrides(t *testing.T) {
	lister := &stubLister{trades: []journal.Trade{
		{Position: journal.PositionBuy, Lot: 1, Entry: 2000, Exit: 2010},
	}}
	handler := newTestHandlers(lister)

	// Double the per-lot value, profit doubles
	req := httptest.NewRequest("GET", "/metrics/summary?value_per_lot=200", nil)
	w := httptest.NewRecorder()
	handler.HandleSummary(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var summary Summary
	require.NoError(t, json.NewDecoder(w.Body).Decode(&summary))
	assert.Equal(t, 2000.0, summary.NetProfit)
}

func TestHandleSummary_InvalidOverrideIgnored(t *testing.T) {
	lister := &stubLister{trades: []journal.Trade{
		{Position: journal.PositionBuy, Lot: 1, Entry: 2000, Exit: 2010},
	}}
	handler := newTestHandlers(lister)

	req := httptest.NewRequest("GET", "/metrics/summary?capital=abc", nil)
	w := httptest.NewRecorder()
	handler.HandleSummary(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var summary Summary
	require.NoError(t, json.NewDecoder(w.Body).Decode(&summary))
	assert.Equal(t, 1000.0, summary.NetProfit)
}

func TestHandleSummary_ListError(t *testing.T) {
	handler := newTestHandlers(&stubLister{err: fmt.Errorf("database locked")})

	req := httptest.NewRequest("GET", "/metrics/summary", nil)
	w := httptest.NewRecorder()
	handler.HandleSummary(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "database locked")
}

func TestHandleEquity(t *testing.T) {
	lister := &stubLister{trades: []journal.Trade{
		{Position: journal.PositionBuy, Lot: 1, Entry: 2000, Exit: 2010, DateEntry: "2024-03-01"},
	}}
	handler := newTestHandlers(lister)

	req := httptest.NewRequest("GET", "/metrics/equity", nil)
	w := httptest.NewRecorder()
	handler.HandleEquity(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var series []EquityPoint
	require.NoError(t, json.NewDecoder(w.Body).Decode(&series))
	require.Len(t, series, 2)
	assert.Equal(t, "Start", series[0].Label)
	assert.Equal(t, 500.0, series[0].Equity)
	assert.Equal(t, "2024-03-01", series[1].Label)
	assert.Equal(t, 1500.0, series[1].Equity)
}

func TestHandleEquity_NoTrades(t *testing.T) {
	handler := newTestHandlers(&stubLister{})

	req := httptest.NewRequest("GET", "/metrics/equity", nil)
	w := httptest.NewRecorder()
	handler.HandleEquity(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var series []EquityPoint
	require.NoError(t, json.NewDecoder(w.Body).Decode(&series))
	require.Len(t, series, 1)
	assert.Equal(t, 500.0, series[0].Equity)
}

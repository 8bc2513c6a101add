package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/trade-journal/internal/modules/journal"
)

func TestPriceDelta(t *testing.T) {
	buy := journal.Trade{Position: journal.PositionBuy, Entry: 2000, Exit: 2010}
	sell := journal.Trade{Position: journal.PositionSell, Entry: 100, Exit: 90}

	assert.Equal(t, 10.0, PriceDelta(buy))
	assert.Equal(t, 10.0, PriceDelta(sell))

	// Sign flips with direction
	assert.Equal(t, -10.0, PriceDelta(journal.Trade{Position: journal.PositionBuy, Entry: 2010, Exit: 2000}))
	assert.Equal(t, -10.0, PriceDelta(journal.Trade{Position: journal.PositionSell, Entry: 90, Exit: 100}))

	// Unknown directions count as BUY
	assert.Equal(t, 10.0, PriceDelta(journal.Trade{Position: "long", Entry: 2000, Exit: 2010}))

	// Missing prices coerce to zero
	assert.Equal(t, 0.0, PriceDelta(journal.Trade{}))
}

func TestProfitUSD(t *testing.T) {
	cfg := DefaultConfig()

	buy := journal.Trade{Position: journal.PositionBuy, Lot: 1, Entry: 2000, Exit: 2010}
	assert.Equal(t, 1000.0, cfg.ProfitUSD(buy))

	sell := journal.Trade{Position: journal.PositionSell, Lot: 0.5, Entry: 100, Exit: 90}
	assert.Equal(t, 500.0, cfg.ProfitUSD(sell))
}

func TestRR(t *testing.T) {
	cfg := DefaultConfig() // risk = 3% of 500 = $15
	trade := journal.Trade{Position: journal.PositionBuy, Lot: 1, Entry: 2000, Exit: 2010}

	assert.InDelta(t, 66.67, cfg.RR(trade), 0.01)
}

func TestRR_ZeroRiskGuards(t *testing.T) {
	trade := journal.Trade{Position: journal.PositionBuy, Lot: 1, Entry: 2000, Exit: 2010}

	zeroRisk := Config{StartingCapital: 500, RiskPercent: 0, ValuePerLot: 100}
	assert.Equal(t, 0.0, zeroRisk.RR(trade))

	zeroCapital := Config{StartingCapital: 0, RiskPercent: 3, ValuePerLot: 100}
	assert.Equal(t, 0.0, zeroCapital.RR(trade))
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, DefaultConfig())

	assert.Equal(t, 0, summary.TradeCount)
	assert.Equal(t, 0.0, summary.WinRate)
	assert.Equal(t, 0.0, summary.AverageRR)
	assert.Equal(t, 0.0, summary.NetProfit)
	assert.Equal(t, 0.0, summary.MaxDrawdown)
}

func TestSummarize_SingleWinner(t *testing.T) {
	trades := []journal.Trade{
		{Position: journal.PositionBuy, Lot: 1, Entry: 2000, Exit: 2010},
	}

	summary := Summarize(trades, DefaultConfig())

	assert.Equal(t, 1, summary.TradeCount)
	assert.Equal(t, 1, summary.Wins)
	assert.Equal(t, 100.0, summary.WinRate)
	assert.InDelta(t, 66.67, summary.AverageRR, 0.01)
	assert.Equal(t, 1000.0, summary.NetProfit)
}

func TestSummarize_MixedResults(t *testing.T) {
	trades := []journal.Trade{
		{Position: journal.PositionBuy, Lot: 1, Entry: 2000, Exit: 2010},  // +1000
		{Position: journal.PositionBuy, Lot: 1, Entry: 2000, Exit: 1995},  // -500
		{Position: journal.PositionSell, Lot: 0.5, Entry: 100, Exit: 90},  // +500
		{Position: journal.PositionSell, Lot: 0.5, Entry: 100, Exit: 110}, // -500
	}

	summary := Summarize(trades, DefaultConfig())

	assert.Equal(t, 4, summary.TradeCount)
	assert.Equal(t, 2, summary.Wins)
	assert.Equal(t, 50.0, summary.WinRate)
	assert.Equal(t, 500.0, summary.NetProfit)
	// Peak 1500 after trade one, trough 1000 after trade two
	assert.InDelta(t, 1.0/3.0, summary.MaxDrawdown, 0.001)
}

func TestEquitySeries_Empty(t *testing.T) {
	series := EquitySeries(nil, DefaultConfig())

	require.Len(t, series, 1)
	assert.Equal(t, "Start", series[0].Label)
	assert.Equal(t, 500.0, series[0].Equity)
}

func TestEquitySeries_RunningBalance(t *testing.T) {
	trades := []journal.Trade{
		{Position: journal.PositionBuy, Lot: 1, Entry: 2000, Exit: 2010},
		{Position: journal.PositionBuy, Lot: 1, Entry: 2000, Exit: 1995},
	}

	cfg := DefaultConfig()
	series := EquitySeries(trades, cfg)

	require.Len(t, series, len(trades)+1)
	assert.Equal(t, cfg.StartingCapital, series[0].Equity)
	assert.Equal(t, 1500.0, series[1].Equity)
	assert.Equal(t, 1000.0, series[2].Equity)

	// Last point is starting capital plus net profit
	summary := Summarize(trades, cfg)
	assert.InDelta(t, cfg.StartingCapital+summary.NetProfit, series[len(series)-1].Equity, 0.01)
}

func TestEquitySeries_RoundsToCents(t *testing.T) {
	trades := []journal.Trade{
		{Position: journal.PositionBuy, Lot: 0.333, Entry: 1, Exit: 2},
	}

	series := EquitySeries(trades, Config{StartingCapital: 500, RiskPercent: 3, ValuePerLot: 1})
	assert.Equal(t, 500.33, series[1].Equity)
}

func TestEquitySeries_Labels(t *testing.T) {
	tests := []struct {
		name  string
		trade journal.Trade
		want  string
	}{
		{
			"exit date and time",
			journal.Trade{DateExit: "2024-03-02", TimeExit: "15:00", DateEntry: "2024-03-01", TimeEntry: "09:00"},
			"2024-03-02 15:00",
		},
		{
			"entry date and time when exit incomplete",
			journal.Trade{DateExit: "2024-03-02", DateEntry: "2024-03-01", TimeEntry: "09:00"},
			"2024-03-01 09:00",
		},
		{
			"entry date alone",
			journal.Trade{DateEntry: "2024-03-01"},
			"2024-03-01",
		},
		{
			"index fallback",
			journal.Trade{},
			"#1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := EquitySeries([]journal.Trade{tt.trade}, DefaultConfig())
			require.Len(t, series, 2)
			assert.Equal(t, tt.want, series[1].Label)
		})
	}
}

func TestEquitySeries_IndexLabelIsOneBased(t *testing.T) {
	trades := []journal.Trade{{}, {}, {}}

	series := EquitySeries(trades, DefaultConfig())
	require.Len(t, series, 4)
	assert.Equal(t, "#1", series[1].Label)
	assert.Equal(t, "#3", series[3].Label)
}

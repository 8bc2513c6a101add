// Package metrics derives performance statistics and the equity curve from
// a journal's trade list. All functions are pure and total: bad or missing
// numeric data coerces to zero, divisions by zero yield zero.
package metrics

import (
	"fmt"

	"github.com/aristath/trade-journal/internal/modules/journal"
	"github.com/aristath/trade-journal/pkg/formulas"
)

// Config holds the three scalar inputs every calculation depends on.
type Config struct {
	StartingCapital float64 `json:"capital"`
	RiskPercent     float64 `json:"riskPercent"`
	ValuePerLot     float64 `json:"valuePerLot"`
}

// DefaultConfig returns the stock configuration of the journal.
func DefaultConfig() Config {
	return Config{
		StartingCapital: 500,
		RiskPercent:     3,
		ValuePerLot:     100,
	}
}

// RiskUSD is the capital placed at risk per trade.
func (c Config) RiskUSD() float64 {
	return c.RiskPercent / 100 * c.StartingCapital
}

// PriceDelta is the favorable price movement of a trade: exit minus entry
// for a BUY, entry minus exit for a SELL.
func PriceDelta(t journal.Trade) float64 {
	if t.Position.IsSell() {
		return t.Entry - t.Exit
	}
	return t.Exit - t.Entry
}

// ProfitUSD converts a trade's price delta into dollars via lot size and
// per-lot value.
func (c Config) ProfitUSD(t journal.Trade) float64 {
	return PriceDelta(t) * t.Lot * c.ValuePerLot
}

// RR is realized profit over capital at risk. Zero risk means zero RR.
func (c Config) RR(t journal.Trade) float64 {
	risk := c.RiskUSD()
	if risk == 0 {
		return 0
	}
	return c.ProfitUSD(t) / risk
}

// Summary aggregates per-trade results over the whole journal.
type Summary struct {
	TradeCount  int     `json:"tradeCount"`
	Wins        int     `json:"wins"`
	WinRate     float64 `json:"winRate"`
	AverageRR   float64 `json:"averageRR"`
	NetProfit   float64 `json:"netProfit"`
	MaxDrawdown float64 `json:"maxDrawdown"`
}

// Summarize computes win rate, average risk-reward, net profit and maximum
// drawdown for a trade list. An empty list yields all zeros.
func Summarize(trades []journal.Trade, cfg Config) Summary {
	summary := Summary{TradeCount: len(trades)}
	if len(trades) == 0 {
		return summary
	}

	pnls := make([]float64, len(trades))
	rrs := make([]float64, len(trades))
	for i, t := range trades {
		pnls[i] = cfg.ProfitUSD(t)
		rrs[i] = cfg.RR(t)

		if pnls[i] > 0 {
			summary.Wins++
		}
		summary.NetProfit += pnls[i]
	}

	summary.WinRate = formulas.WinRate(pnls)
	summary.AverageRR = formulas.Mean(rrs)

	equity := make([]float64, 0, len(trades)+1)
	for _, p := range EquitySeries(trades, cfg) {
		equity = append(equity, p.Equity)
	}
	summary.MaxDrawdown = formulas.MaxDrawdown(equity)

	return summary
}

// EquityPoint is one point of the cumulative capital trajectory.
type EquityPoint struct {
	Label  string  `json:"label"`
	Equity float64 `json:"equity"`
}

// EquitySeries builds the equity curve: the starting capital, then one
// point per trade with the running balance rounded to cents. Points are
// labelled with the trade's exit date/time when both are present, falling
// back to entry date/time, entry date, and finally a 1-based index.
func EquitySeries(trades []journal.Trade, cfg Config) []EquityPoint {
	series := make([]EquityPoint, 0, len(trades)+1)
	equity := cfg.StartingCapital
	series = append(series, EquityPoint{Label: "Start", Equity: equity})

	for i, t := range trades {
		equity += cfg.ProfitUSD(t)
		series = append(series, EquityPoint{
			Label:  pointLabel(t, i),
			Equity: formulas.Round2(equity),
		})
	}

	return series
}

func pointLabel(t journal.Trade, idx int) string {
	switch {
	case t.DateExit != "" && t.TimeExit != "":
		return t.DateExit + " " + t.TimeExit
	case t.DateEntry != "" && t.TimeEntry != "":
		return t.DateEntry + " " + t.TimeEntry
	case t.DateEntry != "":
		return t.DateEntry
	default:
		return fmt.Sprintf("#%d", idx+1)
	}
}

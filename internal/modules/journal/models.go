package journal

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Position represents the trade direction (BUY or SELL)
type Position string

const (
	PositionBuy  Position = "BUY"
	PositionSell Position = "SELL"
)

// IsSell returns true for SELL positions (case-insensitive).
// Anything else counts as a BUY for P/L purposes.
func (p Position) IsSell() bool {
	return strings.EqualFold(string(p), "SELL")
}

// Trade represents one recorded position in the journal.
//
// The intake contract is deliberately permissive: clients may send any
// field set, known fields are coerced, unknown fields survive in Extra.
// Only ID and CreatedAt are server-assigned.
type Trade struct {
	ID         string    `json:"id"`
	Position   Position  `json:"position"`
	Symbol     string    `json:"symbol"`
	Lot        float64   `json:"lot"`
	DateEntry  string    `json:"dateEntry"`
	TimeEntry  string    `json:"timeEntry"`
	DateExit   string    `json:"dateExit"`
	TimeExit   string    `json:"timeExit"`
	Entry      float64   `json:"entry"`
	SL         float64   `json:"sl"`
	TP         float64   `json:"tp"`
	Exit       float64   `json:"exit"`
	ExitReason string    `json:"exitReason"`
	CreatedAt  time.Time `json:"createdAt"`

	// Extra holds client-supplied fields outside the known set.
	Extra map[string]interface{} `json:"-"`
}

// MarshalJSON merges Extra back into the trade object so responses contain
// exactly what the client stored, plus the server-assigned fields.
func (t Trade) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, 15+len(t.Extra))
	for k, v := range t.Extra {
		out[k] = v
	}

	out["id"] = t.ID
	out["position"] = t.Position
	out["symbol"] = t.Symbol
	out["lot"] = t.Lot
	out["dateEntry"] = t.DateEntry
	out["timeEntry"] = t.TimeEntry
	out["dateExit"] = t.DateExit
	out["timeExit"] = t.TimeExit
	out["entry"] = t.Entry
	out["sl"] = t.SL
	out["tp"] = t.TP
	out["exit"] = t.Exit
	out["exitReason"] = t.ExitReason
	out["createdAt"] = t.CreatedAt.Format(time.RFC3339Nano)

	return json.Marshal(out)
}

// ParsePayload decodes an arbitrary JSON object into a Trade. Known fields
// are merged with fallback coercion (non-numeric values become 0, non-string
// values become ""), leftovers land in Extra. No validation is performed:
// a payload without a symbol is stored without a symbol.
func ParsePayload(body []byte) (Trade, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return Trade{}, err
	}

	var t Trade
	t.Position = Position(takeString(raw, "position"))
	t.Symbol = takeString(raw, "symbol")
	t.Lot = takeFloat(raw, "lot")
	t.DateEntry = takeString(raw, "dateEntry")
	t.TimeEntry = takeString(raw, "timeEntry")
	t.DateExit = takeString(raw, "dateExit")
	t.TimeExit = takeString(raw, "timeExit")
	t.Entry = takeFloat(raw, "entry")
	t.SL = takeFloat(raw, "sl")
	t.TP = takeFloat(raw, "tp")
	t.Exit = takeFloat(raw, "exit")
	t.ExitReason = takeString(raw, "exitReason")

	// Server-assigned fields are never client-supplied
	delete(raw, "id")
	delete(raw, "createdAt")

	if len(raw) > 0 {
		t.Extra = raw
	}

	return t, nil
}

// takeString removes key from raw and returns its string value, or "" when
// absent or not a string.
func takeString(raw map[string]interface{}, key string) string {
	v, ok := raw[key]
	if !ok {
		return ""
	}
	delete(raw, key)

	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// takeFloat removes key from raw and coerces it to a float64 with the same
// fallback semantics as JavaScript's Number(x) || 0.
func takeFloat(raw map[string]interface{}, key string) float64 {
	v, ok := raw[key]
	if !ok {
		return 0
	}
	delete(raw, key)

	return CoerceFloat(v)
}

// CoerceFloat converts a decoded JSON value to a float64, falling back to 0
// for anything that does not parse as a number.
func CoerceFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if val {
			return 1
		}
		return 0
	default:
		return 0
	}
}

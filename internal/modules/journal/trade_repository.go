package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TradeRepository handles trade persistence
type TradeRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewTradeRepository creates a new trade repository
func NewTradeRepository(db *sql.DB, log zerolog.Logger) *TradeRepository {
	return &TradeRepository{
		db:  db,
		log: log.With().Str("repo", "trades").Logger(),
	}
}

const tradeColumns = `id, position, symbol, lot, date_entry, time_entry,
	date_exit, time_exit, entry, sl, tp, exit, exit_reason, extra_json, created_at`

// Fixed-width timestamp layout so lexicographic order in SQLite matches
// chronological order down to the nanosecond.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// List retrieves all trades ordered by creation time, oldest first.
// Display order of the journal is creation order.
func (r *TradeRepository) List() ([]Trade, error) {
	rows, err := r.db.Query(`SELECT ` + tradeColumns + ` FROM trades ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	defer rows.Close()

	var trades []Trade
	for rows.Next() {
		trade, err := r.scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		trades = append(trades, trade)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trades: %w", err)
	}

	return trades, nil
}

// Create assigns an identity and creation timestamp to the trade, inserts
// it, and returns the stored record. The payload is persisted as-is; the
// only server-side additions are id and created_at.
func (r *TradeRepository) Create(trade Trade) (Trade, error) {
	trade.ID = uuid.NewString()
	trade.CreatedAt = time.Now().UTC()

	var extraJSON sql.NullString
	if len(trade.Extra) > 0 {
		data, err := json.Marshal(trade.Extra)
		if err != nil {
			return Trade{}, fmt.Errorf("failed to encode extra fields: %w", err)
		}
		extraJSON = sql.NullString{String: string(data), Valid: true}
	}

	query := `
		INSERT INTO trades
		(id, position, symbol, lot, date_entry, time_entry, date_exit, time_exit,
		 entry, sl, tp, exit, exit_reason, extra_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		trade.ID,
		string(trade.Position),
		trade.Symbol,
		trade.Lot,
		trade.DateEntry,
		trade.TimeEntry,
		trade.DateExit,
		trade.TimeExit,
		trade.Entry,
		trade.SL,
		trade.TP,
		trade.Exit,
		trade.ExitReason,
		extraJSON,
		trade.CreatedAt.Format(createdAtLayout),
	)
	if err != nil {
		return Trade{}, fmt.Errorf("failed to create trade: %w", err)
	}

	r.log.Info().
		Str("id", trade.ID).
		Str("symbol", trade.Symbol).
		Str("position", string(trade.Position)).
		Msg("Trade created")

	return trade, nil
}

// Delete removes at most one trade by identity. Deleting an id that does
// not exist is not an error; an id that is not a valid UUID is, mirroring
// the store's native id format check.
func (r *TradeRepository) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid trade id %q: %w", id, err)
	}

	result, err := r.db.Exec(`DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}

	affected, _ := result.RowsAffected()
	r.log.Info().Str("id", id).Int64("removed", affected).Msg("Trade deleted")

	return nil
}

func (r *TradeRepository) scanTrade(rows *sql.Rows) (Trade, error) {
	var trade Trade
	var position, symbol, dateEntry, timeEntry, dateExit, timeExit, exitReason sql.NullString
	var lot, entry, sl, tp, exit sql.NullFloat64
	var extraJSON sql.NullString
	var createdAt string

	err := rows.Scan(
		&trade.ID,
		&position,
		&symbol,
		&lot,
		&dateEntry,
		&timeEntry,
		&dateExit,
		&timeExit,
		&entry,
		&sl,
		&tp,
		&exit,
		&exitReason,
		&extraJSON,
		&createdAt,
	)
	if err != nil {
		return trade, err
	}

	trade.Position = Position(position.String)
	trade.Symbol = symbol.String
	trade.Lot = lot.Float64
	trade.DateEntry = dateEntry.String
	trade.TimeEntry = timeEntry.String
	trade.DateExit = dateExit.String
	trade.TimeExit = timeExit.String
	trade.Entry = entry.Float64
	trade.SL = sl.Float64
	trade.TP = tp.Float64
	trade.Exit = exit.Float64
	trade.ExitReason = exitReason.String

	if t, err := time.Parse(createdAtLayout, createdAt); err == nil {
		trade.CreatedAt = t
	}

	if extraJSON.Valid && extraJSON.String != "" {
		var extra map[string]interface{}
		if err := json.Unmarshal([]byte(extraJSON.String), &extra); err == nil {
			trade.Extra = extra
		}
	}

	return trade, nil
}

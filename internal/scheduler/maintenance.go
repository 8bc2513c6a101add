package scheduler

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/trade-journal/internal/database"
)

// MaintenanceJob keeps the journal database healthy: checkpoints the WAL,
// lets SQLite re-plan its indexes, and reports the journal size.
type MaintenanceJob struct {
	db  *database.DB
	log zerolog.Logger
}

// NewMaintenanceJob creates a new database maintenance job
func NewMaintenanceJob(db *database.DB, log zerolog.Logger) *MaintenanceJob {
	return &MaintenanceJob{
		db:  db,
		log: log.With().Str("job", "db-maintenance").Logger(),
	}
}

// Name returns the job name
func (j *MaintenanceJob) Name() string {
	return "db-maintenance"
}

// Run performs one maintenance pass
func (j *MaintenanceJob) Run() error {
	if _, err := j.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("wal checkpoint failed: %w", err)
	}

	if _, err := j.db.Exec("PRAGMA optimize"); err != nil {
		return fmt.Errorf("optimize failed: %w", err)
	}

	var trades int
	if err := j.db.QueryRow("SELECT COUNT(*) FROM trades").Scan(&trades); err != nil {
		return fmt.Errorf("failed to count trades: %w", err)
	}

	j.log.Info().Int("trades", trades).Msg("Database maintenance completed")
	return nil
}

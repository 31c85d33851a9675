package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list re-runs safely on each startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id           TEXT PRIMARY KEY,
		job_id       TEXT NOT NULL DEFAULT '',
		name         TEXT NOT NULL,
		client       TEXT NOT NULL DEFAULT '',
		site_address TEXT NOT NULL DEFAULT '',
		start_date   TEXT NOT NULL,
		target_date  TEXT,
		progress     INTEGER NOT NULL DEFAULT 0 CHECK(progress BETWEEN 0 AND 100),
		status       TEXT NOT NULL DEFAULT 'active'
		             CHECK(status IN ('active','on_hold','done','archived')),
		archived_at  TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_job_id ON projects(job_id) WHERE job_id != ''`,

	`CREATE TABLE IF NOT EXISTS schedule_phases (
		id              TEXT PRIMARY KEY,
		project_id      TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name            TEXT NOT NULL,
		phase           TEXT NOT NULL
		                CHECK(phase IN ('demo','prep','acclimation','install','cure','punch','closeout')),
		status          TEXT NOT NULL DEFAULT 'pending'
		                CHECK(status IN ('completed','in_progress','pending','blocked','delayed')),
		progress        INTEGER NOT NULL DEFAULT 0 CHECK(progress BETWEEN 0 AND 100),
		start_date      TEXT NOT NULL,
		end_date        TEXT NOT NULL,
		baseline_start  TEXT,
		baseline_end    TEXT,
		actual_start    TEXT,
		actual_end      TEXT,
		blocking_reason TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_phases_project ON schedule_phases(project_id)`,

	`CREATE TABLE IF NOT EXISTS phase_dependencies (
		phase_id      TEXT NOT NULL REFERENCES schedule_phases(id) ON DELETE CASCADE,
		depends_on_id TEXT NOT NULL,
		position      INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (phase_id, depends_on_id)
	)`,

	`CREATE TABLE IF NOT EXISTS blockers (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		phases      TEXT NOT NULL DEFAULT '',
		reason      TEXT NOT NULL,
		source      TEXT NOT NULL DEFAULT 'manual'
		            CHECK(source IN ('delivery','acclimation','punch','manual')),
		source_ref  TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		resolved_at TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_blockers_project ON blockers(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_blockers_source ON blockers(source, source_ref)`,

	`CREATE TABLE IF NOT EXISTS acclimation_sessions (
		id               TEXT PRIMARY KEY,
		project_id       TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		material_name    TEXT NOT NULL,
		required_hours   INTEGER NOT NULL CHECK(required_hours >= 0),
		start_time       TEXT NOT NULL,
		status           TEXT NOT NULL DEFAULT 'in_progress'
		                 CHECK(status IN ('in_progress','complete','cancelled')),
		min_temp_f       REAL NOT NULL DEFAULT 0,
		max_temp_f       REAL NOT NULL DEFAULT 0,
		min_humidity_pct REAL NOT NULL DEFAULT 0,
		max_humidity_pct REAL NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_acclimation_project ON acclimation_sessions(project_id)`,

	`CREATE TABLE IF NOT EXISTS acclimation_readings (
		session_id   TEXT NOT NULL REFERENCES acclimation_sessions(id) ON DELETE CASCADE,
		taken_at     TEXT NOT NULL,
		temp_f       REAL NOT NULL,
		humidity_pct REAL NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_acclimation_readings_session ON acclimation_readings(session_id)`,

	`CREATE TABLE IF NOT EXISTS punch_items (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		room        TEXT NOT NULL DEFAULT '',
		severity    TEXT NOT NULL DEFAULT 'minor'
		            CHECK(severity IN ('minor','major','critical')),
		status      TEXT NOT NULL DEFAULT 'open'
		            CHECK(status IN ('open','in_progress','completed')),
		assigned_to TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		closed_at   TEXT,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_punch_items_project ON punch_items(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_punch_items_status ON punch_items(status)`,

	`CREATE TABLE IF NOT EXISTS deliveries (
		id                   TEXT PRIMARY KEY,
		project_id           TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		material_name        TEXT NOT NULL,
		quantity             REAL NOT NULL DEFAULT 0,
		unit                 TEXT NOT NULL DEFAULT '',
		status               TEXT NOT NULL DEFAULT 'ordered'
		                     CHECK(status IN ('ordered','in_transit','delivered','delayed')),
		expected_date        TEXT NOT NULL,
		delivered_at         TEXT,
		requires_acclimation INTEGER NOT NULL DEFAULT 0,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_deliveries_project ON deliveries(project_id)`,

	`CREATE TABLE IF NOT EXISTS daily_logs (
		id             TEXT PRIMARY KEY,
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		log_date       TEXT NOT NULL,
		phase          TEXT NOT NULL
		               CHECK(phase IN ('demo','prep','acclimation','install','cure','punch','closeout')),
		crew           TEXT NOT NULL DEFAULT '',
		hours_worked   REAL NOT NULL DEFAULT 0,
		work_completed TEXT NOT NULL DEFAULT '',
		notes          TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_daily_logs_project ON daily_logs(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_daily_logs_date ON daily_logs(log_date)`,
}

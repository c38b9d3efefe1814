package database

import (
	"time"

	"gorm.io/gorm"
)

// DiagnosticsReport is the one-shot connectivity and schema check. It
// replaces ad-hoc "can I reach the database" probing with a single
// report the dbcheck command can print.
type DiagnosticsReport struct {
	Timestamp     time.Time `json:"timestamp"`
	Driver        string    `json:"driver"`
	Connected     bool      `json:"connected"`
	ConnectionErr string    `json:"connectionError,omitempty"`
	ServerVersion string    `json:"serverVersion,omitempty"`
	TablesFound   []string  `json:"tablesFound"`
	TablesMissing []string  `json:"tablesMissing"`
}

// RunDiagnostics connects with the configured URL and checks that
// every entity table exists. The connection is read-only in spirit: no
// migration runs, so a missing table stays missing in the report.
// Connection failures are reported, not returned, so the caller always
// gets a printable report.
func RunDiagnostics(dbURL string) DiagnosticsReport {
	_, driver := dialectorFor(dbURL)
	report := DiagnosticsReport{
		Timestamp:     time.Now().UTC(),
		Driver:        driver,
		TablesFound:   []string{},
		TablesMissing: []string{},
	}

	db, err := Open(dbURL)
	if err != nil {
		report.ConnectionErr = err.Error()
		return report
	}
	report.Connected = true
	report.ServerVersion = serverVersion(db, driver)

	for _, model := range Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			continue
		}
		table := stmt.Schema.Table
		if db.Migrator().HasTable(model) {
			report.TablesFound = append(report.TablesFound, table)
		} else {
			report.TablesMissing = append(report.TablesMissing, table)
		}
	}
	return report
}

func serverVersion(db *gorm.DB, driver string) string {
	query := "SELECT version()"
	if driver == "sqlite" {
		query = "SELECT sqlite_version()"
	}
	var version string
	if err := db.Raw(query).Scan(&version).Error; err != nil {
		return ""
	}
	return version
}

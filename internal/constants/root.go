package constants

import "time"

const (
	AppName            = "littleday"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/littleday/littleday.db"
	DefaultConfigFile  = "~/.config/littleday/config.json"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ClockFormat is the human-facing 12-hour time format (H:MM AM/PM)
	ClockFormat = "3:04 PM"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "littleday-"
	BackupFileSuffix = ".db"

	// Environment variables
	EnvDBConnection   = "LITTLEDAY_DB_CONNECTION"
	EnvTestPostgresDB = "LITTLEDAY_TEST_POSTGRES"

	// PlanTimestampFormat is used for created/updated columns
	PlanTimestampFormat = time.RFC3339
)

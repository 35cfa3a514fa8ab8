package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/littleday/internal/backup"
	"github.com/julianstephens/littleday/internal/keyring"
	"github.com/julianstephens/littleday/internal/logger"
	"github.com/julianstephens/littleday/internal/models"
	"github.com/julianstephens/littleday/internal/scheduler"
	"github.com/julianstephens/littleday/internal/storage"
	"github.com/julianstephens/littleday/internal/storage/postgres"
	"github.com/julianstephens/littleday/internal/storage/sqlite"
	"github.com/julianstephens/littleday/internal/utils"
)

type Context struct {
	Store     storage.Provider
	Generator *scheduler.Generator
}

// IsSQLite reports whether the store is file backed.
func (c *Context) IsSQLite() bool {
	return c.Store.GetConfigPath() != postgres.ConfigPath
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if !c.IsSQLite() {
		logger.Debug("Skipping automatic backup for PostgreSQL store")
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Preferences loads the stored preferences with defaults applied.
func (c *Context) Preferences() (models.UserPreferences, error) {
	prefs, err := c.Store.GetPreferences()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.DefaultPreferences(), nil
		}
		return models.UserPreferences{}, fmt.Errorf("failed to get preferences: %w", err)
	}
	models.ApplyDefaultPreferences(&prefs)
	return prefs, nil
}

// ResolveDate resolves a date argument in the configured timezone.
func (c *Context) ResolveDate(date string) (string, error) {
	prefs, err := c.Preferences()
	if err != nil {
		return "", err
	}
	return utils.ResolveDate(date, prefs.Timezone)
}

// OpenStore picks the storage provider for the --config value. PostgreSQL
// strings must not carry a password; the full string comes from the
// environment or the OS keyring when one is stored.
func OpenStore(config string) (storage.Provider, error) {
	if postgres.IsConnString(config) {
		if ok, err := postgres.ValidateConnString(config); !ok {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("PostgreSQL connection strings passed to --config must not embed credentials; use 'littleday keyring set' or the LITTLEDAY_DB_CONNECTION environment variable: %w", err)
			}
			return nil, err
		}
		connStr, source := keyring.ResolveConnectionString(config)
		logger.Debug("Using PostgreSQL store", "source", source)
		return postgres.New(connStr), nil
	}

	path, err := ExpandPath(config)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

package cmd

import (
	"log/slog"
	"strings"

	"warehouse/internal/adapters/out/storage"
	"warehouse/internal/adapters/out/wix"

	"github.com/spf13/viper"
)

// Config keys. Each key is read from the environment variable of the same
// name, optionally loaded from a .env file first.
const (
	KeyHTTPPort     = "HTTP_PORT"
	KeyDBDriver     = "DB_DRIVER"
	KeyDBHost       = "DB_HOST"
	KeyDBPort       = "DB_PORT"
	KeyDBUser       = "DB_USER"
	KeyDBPassword   = "DB_PASSWORD"
	KeyDBName       = "DB_NAME"
	KeyDBSslMode    = "DB_SSLMODE"
	KeyDBSQLitePath = "DB_SQLITE_PATH"
	KeyDBDebug      = "DB_DEBUG"
	KeyWixAPIKey    = "WIX_API_KEY"
	KeyWixSiteID    = "WIX_SITE_ID"
	KeyWixBaseURL   = "WIX_BASE_URL"
	KeySyncSchedule = "SYNC_SCHEDULE"
	KeyLogLevel     = "LOG_LEVEL"
)

type Config struct {
	HTTPPort     string
	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	DBSQLitePath string
	DBDebug      bool
	WixAPIKey    string
	WixSiteID    string
	WixBaseURL   string
	SyncSchedule string
	LogLevel     string
}

// SetDefaults registers the default of every key and binds the keys to
// the environment.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyHTTPPort, "8080")
	v.SetDefault(KeyDBDriver, storage.DriverPostgres)
	v.SetDefault(KeyDBHost, "localhost")
	v.SetDefault(KeyDBPort, "5432")
	v.SetDefault(KeyDBUser, "postgres")
	v.SetDefault(KeyDBPassword, "")
	v.SetDefault(KeyDBName, "warehouse")
	v.SetDefault(KeyDBSslMode, "disable")
	v.SetDefault(KeyDBSQLitePath, "wms.db")
	v.SetDefault(KeyDBDebug, false)
	v.SetDefault(KeyWixAPIKey, "")
	v.SetDefault(KeyWixSiteID, "")
	v.SetDefault(KeyWixBaseURL, wix.DefaultBaseURL)
	v.SetDefault(KeySyncSchedule, "")
	v.SetDefault(KeyLogLevel, "info")
	v.AutomaticEnv()
}

// LoadConfig reads the configuration from v.
func LoadConfig(v *viper.Viper) Config {
	return Config{
		HTTPPort:     v.GetString(KeyHTTPPort),
		DBDriver:     strings.ToLower(v.GetString(KeyDBDriver)),
		DBHost:       v.GetString(KeyDBHost),
		DBPort:       v.GetString(KeyDBPort),
		DBUser:       v.GetString(KeyDBUser),
		DBPassword:   v.GetString(KeyDBPassword),
		DBName:       v.GetString(KeyDBName),
		DBSslMode:    v.GetString(KeyDBSslMode),
		DBSQLitePath: v.GetString(KeyDBSQLitePath),
		DBDebug:      v.GetBool(KeyDBDebug),
		WixAPIKey:    v.GetString(KeyWixAPIKey),
		WixSiteID:    v.GetString(KeyWixSiteID),
		WixBaseURL:   v.GetString(KeyWixBaseURL),
		SyncSchedule: strings.TrimSpace(v.GetString(KeySyncSchedule)),
		LogLevel:     v.GetString(KeyLogLevel),
	}
}

func (c Config) StorageOptions() storage.Options {
	return storage.Options{
		Driver:     c.DBDriver,
		Host:       c.DBHost,
		Port:       c.DBPort,
		User:       c.DBUser,
		Password:   c.DBPassword,
		Name:       c.DBName,
		SSLMode:    c.DBSslMode,
		SQLitePath: c.DBSQLitePath,
		Debug:      c.DBDebug,
	}
}

func (c Config) WixConfig() wix.Config {
	return wix.Config{
		BaseURL: c.WixBaseURL,
		APIKey:  c.WixAPIKey,
		SiteID:  c.WixSiteID,
	}
}

// SlogLevel parses LogLevel; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"warehouse/cmd"
	"warehouse/internal/adapters/out/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// app holds what every subcommand needs once flags and environment are read.
type app struct {
	viper   *viper.Viper
	envFile string
	config  cmd.Config
	logger  *slog.Logger
}

// NewRootCommand creates the warehouse CLI.
func NewRootCommand() *cobra.Command {
	a := &app{viper: viper.New()}
	cmd.SetDefaults(a.viper)

	root := &cobra.Command{
		Use:           "warehouse",
		Short:         "Warehouse pick and scan service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.load()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.String("db-driver", a.viper.GetString(cmd.KeyDBDriver), "database driver (postgres|sqlite)")
	flags.String("sqlite-path", a.viper.GetString(cmd.KeyDBSQLitePath), "SQLite database path")
	flags.String("log-level", a.viper.GetString(cmd.KeyLogLevel), "log level (debug|info|warn|error)")
	_ = a.viper.BindPFlag(cmd.KeyDBDriver, flags.Lookup("db-driver"))
	_ = a.viper.BindPFlag(cmd.KeyDBSQLitePath, flags.Lookup("sqlite-path"))
	_ = a.viper.BindPFlag(cmd.KeyLogLevel, flags.Lookup("log-level"))

	root.AddCommand(newServeCommand(a))
	root.AddCommand(newMigrateCommand(a))
	root.AddCommand(newSyncCommand(a))

	return root
}

func (a *app) load() error {
	if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", a.envFile, err)
	}

	a.config = cmd.LoadConfig(a.viper)
	a.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: a.config.SlogLevel()}))
	slog.SetDefault(a.logger)
	return nil
}

// openDatabase connects and brings the schema up to date.
func (a *app) openDatabase(ctx context.Context) (*gorm.DB, error) {
	db, err := storage.Open(a.config.StorageOptions())
	if err != nil {
		return nil, err
	}
	if err = storage.Migrate(ctx, db); err != nil {
		_ = storage.Close(db)
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

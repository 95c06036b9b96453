package main

import (
	"encoding/json"

	"warehouse/cmd"
	"warehouse/internal/adapters/out/storage"
	"warehouse/internal/core/application/usecases/commands"

	"github.com/spf13/cobra"
)

func newSyncCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "sync products|orders|all",
		Short:     "Import the catalog and orders from Wix once",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(commands.SyncScopeProducts), string(commands.SyncScopeOrders), string(commands.SyncScopeAll)},
		RunE: func(c *cobra.Command, args []string) error {
			syncCmd, err := commands.NewSyncCommand(args[0])
			if err != nil {
				return err
			}

			db, err := a.openDatabase(c.Context())
			if err != nil {
				return err
			}
			defer func() { _ = storage.Close(db) }()

			root := cmd.NewCompositionRoot(a.config, db, a.logger, nil)
			handler := root.SyncCommandHandler()
			report, err := handler.Handle(c.Context(), syncCmd)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
}

package main

import (
	"fmt"

	"github.com/ridloal/inventory-management/internal/inventory/repository"
	"github.com/ridloal/inventory-management/internal/inventory/service"
	"github.com/ridloal/inventory-management/internal/platform/config"
	"github.com/ridloal/inventory-management/internal/platform/database"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

type rootOptions struct {
	driver string
	dsn    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "inventory_service",
		Short:         "Inventory and order management service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.driver, "db-driver", "", "database backend: sqlite, postgres or mysql (overrides INVENTORY_DB_DRIVER)")
	root.PersistentFlags().StringVar(&opts.dsn, "db-dsn", "", "database DSN or sqlite file path (overrides INVENTORY_DB_DSN)")

	serve := newServeCmd(opts)
	root.AddCommand(serve, newSeedCmd(opts), newListCmd(opts))
	// Running the binary without a subcommand starts the server.
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())
	return root
}

// loadConfig reads the environment and applies command-line overrides.
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if o.driver != "" {
		cfg.DB.Driver = o.driver
	}
	if o.dsn != "" {
		cfg.DB.DSN = o.dsn
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openCatalog connects to the database and brings the schema up to date.
// The caller owns the returned handle.
func openCatalog(cfg config.DBConfig) (*gorm.DB, *service.Catalog, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := repository.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return db, service.NewCatalog(db), nil
}

package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ridloal/inventory-management/internal/inventory/domain"
	"github.com/ridloal/inventory-management/internal/inventory/service"
	"github.com/ridloal/inventory-management/internal/platform/database"
	"github.com/spf13/cobra"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample rows into empty tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			db, catalog, err := openCatalog(cfg.DB)
			if err != nil {
				return err
			}
			defer database.Close(db)

			result, err := catalog.Seed(cmd.Context())
			if err != nil {
				return err
			}
			renderSeedResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func renderSeedResult(w io.Writer, result service.SeedResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Table", "Inserted"})
	for _, k := range domain.Kinds {
		t.AppendRow(table.Row{k.Plural(), result[k]})
	}
	t.AppendFooter(table.Row{"Total", fmt.Sprint(result.Total())})
	t.Render()
}

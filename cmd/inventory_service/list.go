package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ridloal/inventory-management/internal/inventory/domain"
	"github.com/ridloal/inventory-management/internal/inventory/service"
	"github.com/ridloal/inventory-management/internal/platform/database"
	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "list <kind>",
		Short:     "Print every record of one kind",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := domain.ParseKind(strings.ToLower(args[0]))
			if !ok {
				return fmt.Errorf("unknown kind %q, expected one of %s", args[0], strings.Join(kindNames(), ", "))
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			db, catalog, err := openCatalog(cfg.DB)
			if err != nil {
				return err
			}
			defer database.Close(db)

			return renderKind(cmd.Context(), cmd.OutOrStdout(), catalog, kind)
		},
	}
}

func kindNames() []string {
	names := make([]string, 0, len(domain.Kinds))
	for _, k := range domain.Kinds {
		names = append(names, k.Plural())
	}
	return names
}

func renderKind(ctx context.Context, w io.Writer, catalog *service.Catalog, kind domain.Kind) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(kind.Plural())

	switch kind {
	case domain.KindCustomer:
		rows, err := catalog.Customers.List(ctx)
		if err != nil {
			return err
		}
		t.AppendHeader(table.Row{"ID", "Name", "Email", "Address"})
		for _, r := range rows {
			t.AppendRow(table.Row{r.ID, r.Name, r.Email, r.Address})
		}
	case domain.KindEmployee:
		rows, err := catalog.Employees.List(ctx)
		if err != nil {
			return err
		}
		t.AppendHeader(table.Row{"ID", "Name", "Position", "Department"})
		for _, r := range rows {
			t.AppendRow(table.Row{r.ID, r.Name, r.Position, r.Department})
		}
	case domain.KindStock:
		rows, err := catalog.Stocks.List(ctx)
		if err != nil {
			return err
		}
		t.AppendHeader(table.Row{"ID", "Product ID", "Quantity"})
		for _, r := range rows {
			t.AppendRow(table.Row{r.ID, r.ProductID, r.Quantity})
		}
	case domain.KindSupplier:
		rows, err := catalog.Suppliers.List(ctx)
		if err != nil {
			return err
		}
		t.AppendHeader(table.Row{"ID", "Name", "Email", "Address"})
		for _, r := range rows {
			t.AppendRow(table.Row{r.ID, r.Name, r.Email, r.Address})
		}
	case domain.KindOrder:
		rows, err := catalog.Orders.List(ctx)
		if err != nil {
			return err
		}
		t.AppendHeader(table.Row{"ID", "Customer ID", "Product ID", "Quantity", "Order Date"})
		for _, r := range rows {
			t.AppendRow(table.Row{r.ID, r.CustomerID, r.ProductID, r.Quantity, r.OrderDate.UTC().Format("2006-01-02 15:04:05")})
		}
	case domain.KindProduct:
		rows, err := catalog.Products.List(ctx)
		if err != nil {
			return err
		}
		t.AppendHeader(table.Row{"ID", "Name", "Price", "Description"})
		for _, r := range rows {
			t.AppendRow(table.Row{r.ID, r.Name, fmt.Sprintf("%.2f", r.Price), r.Description})
		}
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}

	t.Render()
	return nil
}

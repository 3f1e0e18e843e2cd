package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ridloal/inventory-management/internal/inventory/domain"
	"github.com/ridloal/inventory-management/internal/platform/logger"
)

var seedOrderDate = time.Date(2024, 3, 22, 0, 0, 0, 0, time.UTC)

// SeedResult is the number of rows inserted per kind.
type SeedResult map[domain.Kind]int

func (r SeedResult) Total() int {
	total := 0
	for _, n := range r {
		total += n
	}
	return total
}

// Seed inserts two sample rows into every empty table. Tables that already
// hold rows are left alone, so running it again is a no-op.
func (c *Catalog) Seed(ctx context.Context) (SeedResult, error) {
	result := SeedResult{}
	steps := []func() error{
		func() error {
			return seedKind(ctx, result, c.Customers, []domain.Customer{
				{Name: "John Doe", Email: "john@example.com", Address: "123 Main St, Anytown"},
				{Name: "Jane Smith", Email: "jane@example.com", Address: "456 Elm St, Othertown"},
			})
		},
		func() error {
			return seedKind(ctx, result, c.Employees, []domain.Employee{
				{Name: "Alice Johnson", Position: "Manager", Department: "Sales"},
				{Name: "Bob Williams", Position: "Clerk", Department: "Inventory"},
			})
		},
		func() error {
			return seedKind(ctx, result, c.Stocks, []domain.Stock{
				{ProductID: 1, Quantity: 100},
				{ProductID: 2, Quantity: 50},
			})
		},
		func() error {
			return seedKind(ctx, result, c.Suppliers, []domain.Supplier{
				{Name: "ABC Supplies", Email: "info@abc.com", Address: "789 Oak St, Yetanothertown"},
				{Name: "XYZ Distributors", Email: "info@xyz.com", Address: "321 Maple St, Somewhere"},
			})
		},
		func() error {
			return seedKind(ctx, result, c.Orders, []domain.Order{
				{CustomerID: 1, ProductID: 1, Quantity: 5, OrderDate: seedOrderDate},
				{CustomerID: 2, ProductID: 2, Quantity: 10, OrderDate: seedOrderDate},
			})
		},
		func() error {
			return seedKind(ctx, result, c.Products, []domain.Product{
				{Name: "Widget", Description: "A simple widget", Price: 10.99},
				{Name: "Gadget", Description: "An advanced gadget", Price: 24.99},
			})
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return result, err
		}
	}
	return result, nil
}

func seedKind[T any](ctx context.Context, result SeedResult, svc EntityService[T], rows []T) error {
	n, err := svc.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed %s: %w", svc.Kind().Plural(), err)
	}
	if n > 0 {
		result[svc.Kind()] = 0
		return nil
	}
	for i := range rows {
		if err := svc.Create(ctx, &rows[i]); err != nil {
			return fmt.Errorf("seed %s: %w", svc.Kind().Plural(), err)
		}
		result[svc.Kind()]++
	}
	logger.Info("Seeded %d %s", len(rows), svc.Kind().Plural())
	return nil
}

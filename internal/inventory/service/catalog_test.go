package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ridloal/inventory-management/internal/inventory/domain"
	"github.com/ridloal/inventory-management/internal/inventory/repository"
	"github.com/ridloal/inventory-management/internal/platform/config"
	"github.com/ridloal/inventory-management/internal/platform/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T, path string) *Catalog {
	t.Helper()
	db, err := database.Connect(config.DBConfig{
		Driver:          config.DriverSQLite,
		DSN:             path,
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
		LogLevel:        "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, repository.Migrate(db))
	return NewCatalog(db)
}

func TestCatalog_SeedOnEmptyStore(t *testing.T) {
	catalog := newTestCatalog(t, filepath.Join(t.TempDir(), "inventory.db"))
	ctx := context.Background()

	result, err := catalog.Seed(ctx)
	require.NoError(t, err)

	for _, k := range domain.Kinds {
		assert.Equal(t, 2, result[k], k)
	}
	assert.Equal(t, 12, result.Total())

	overview, err := catalog.Overview(ctx)
	require.NoError(t, err)
	assert.Len(t, overview.Customers, 2)
	assert.Len(t, overview.Employees, 2)
	assert.Len(t, overview.Stocks, 2)
	assert.Len(t, overview.Suppliers, 2)
	assert.Len(t, overview.Orders, 2)
	assert.Len(t, overview.Products, 2)

	assert.Equal(t, "John Doe", overview.Customers[0].Name)
	assert.Equal(t, "Inventory", overview.Employees[1].Department)
	assert.Equal(t, 100, overview.Stocks[0].Quantity)
	assert.Equal(t, "info@xyz.com", overview.Suppliers[1].Email)
	assert.True(t, overview.Orders[0].OrderDate.Equal(seedOrderDate))
	assert.Equal(t, 24.99, overview.Products[1].Price)
}

func TestCatalog_SeedSecondStartupInsertsNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.db")
	ctx := context.Background()

	first, err := newTestCatalog(t, path).Seed(ctx)
	require.NoError(t, err)
	require.Equal(t, 12, first.Total())

	// A fresh handle on the same file stands in for a process restart.
	catalog := newTestCatalog(t, path)
	second, err := catalog.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.Total())

	n, err := catalog.Products.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestCatalog_SeedOnlyFillsEmptyTables(t *testing.T) {
	catalog := newTestCatalog(t, filepath.Join(t.TempDir(), "inventory.db"))
	ctx := context.Background()

	require.NoError(t, catalog.Customers.Create(ctx, &domain.Customer{Name: "Solo", Email: "solo@example.com", Address: "1 Lone Rd"}))

	result, err := catalog.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result[domain.KindCustomer])
	assert.Equal(t, 2, result[domain.KindProduct])

	customers, err := catalog.Customers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestCatalog_ModifyCustomerOverwritesAllFields(t *testing.T) {
	catalog := newTestCatalog(t, filepath.Join(t.TempDir(), "inventory.db"))
	ctx := context.Background()
	_, err := catalog.Seed(ctx)
	require.NoError(t, err)

	updated, err := catalog.Customers.Update(ctx, 1, &domain.Customer{
		Name:    "Jane Doe",
		Email:   "john@example.com",
		Address: "123 Main St, Anytown",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, updated.ID)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "john@example.com", updated.Email)
	assert.Equal(t, "123 Main St, Anytown", updated.Address)
}

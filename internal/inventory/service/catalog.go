package service

import (
	"context"

	"github.com/ridloal/inventory-management/internal/inventory/domain"
	"github.com/ridloal/inventory-management/internal/inventory/repository"
	"gorm.io/gorm"
)

// Catalog groups the services of all six record kinds. It is built once at
// startup around an explicitly opened database handle.
type Catalog struct {
	Customers EntityService[domain.Customer]
	Employees EntityService[domain.Employee]
	Stocks    EntityService[domain.Stock]
	Suppliers EntityService[domain.Supplier]
	Orders    EntityService[domain.Order]
	Products  EntityService[domain.Product]
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{
		Customers: NewEntityService(domain.KindCustomer, repository.NewGormRepository[domain.Customer](db)),
		Employees: NewEntityService(domain.KindEmployee, repository.NewGormRepository[domain.Employee](db)),
		Stocks:    NewEntityService(domain.KindStock, repository.NewGormRepository[domain.Stock](db)),
		Suppliers: NewEntityService(domain.KindSupplier, repository.NewGormRepository[domain.Supplier](db)),
		Orders:    NewEntityService(domain.KindOrder, repository.NewGormRepository[domain.Order](db)),
		Products:  NewEntityService(domain.KindProduct, repository.NewGormRepository[domain.Product](db)),
	}
}

// Overview is every list at once, as served on the landing route.
type Overview struct {
	Customers []domain.Customer `json:"customers"`
	Employees []domain.Employee `json:"employees"`
	Stocks    []domain.Stock    `json:"stocks"`
	Suppliers []domain.Supplier `json:"suppliers"`
	Orders    []domain.Order    `json:"orders"`
	Products  []domain.Product  `json:"products"`
}

func (c *Catalog) Overview(ctx context.Context) (*Overview, error) {
	var (
		o   Overview
		err error
	)
	if o.Customers, err = c.Customers.List(ctx); err != nil {
		return nil, err
	}
	if o.Employees, err = c.Employees.List(ctx); err != nil {
		return nil, err
	}
	if o.Stocks, err = c.Stocks.List(ctx); err != nil {
		return nil, err
	}
	if o.Suppliers, err = c.Suppliers.List(ctx); err != nil {
		return nil, err
	}
	if o.Orders, err = c.Orders.List(ctx); err != nil {
		return nil, err
	}
	if o.Products, err = c.Products.List(ctx); err != nil {
		return nil, err
	}
	return &o, nil
}

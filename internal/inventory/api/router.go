package api

import (
	"github.com/gin-gonic/gin"
	"github.com/ridloal/inventory-management/internal/inventory/domain"
	"github.com/ridloal/inventory-management/internal/inventory/service"
	"github.com/ridloal/inventory-management/internal/platform/middleware"
)

// NewRouter wires every route of the service onto a fresh gin engine.
// There is no authentication: anyone who can reach the listener can edit data.
func NewRouter(catalog *service.Catalog, db Pinger, metrics *middleware.Metrics) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(), metrics.Middleware())

	NewIndexHandler(catalog).RegisterRoutes(router)
	NewResourceHandler[domain.Customer, domain.CustomerForm](catalog.Customers).RegisterRoutes(router)
	NewResourceHandler[domain.Employee, domain.EmployeeForm](catalog.Employees).RegisterRoutes(router)
	NewResourceHandler[domain.Stock, domain.StockForm](catalog.Stocks).RegisterRoutes(router)
	NewResourceHandler[domain.Supplier, domain.SupplierForm](catalog.Suppliers).RegisterRoutes(router)
	NewResourceHandler[domain.Order, domain.OrderForm](catalog.Orders).RegisterRoutes(router)
	NewResourceHandler[domain.Product, domain.ProductForm](catalog.Products).RegisterRoutes(router)

	NewHealthHandler(db).RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	return router
}

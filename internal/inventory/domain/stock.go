package domain

import "time"

// Stock is the on-hand quantity of a product. ProductID is not checked
// against the products table.
type Stock struct {
	Model
	ProductID int `json:"product_id" gorm:"not null"`
	Quantity  int `json:"quantity" gorm:"not null"`
}

type StockForm struct {
	ProductID *int `form:"product_id" binding:"required"`
	Quantity  *int `form:"quantity" binding:"required"`
}

func (f StockForm) Apply(s *Stock, _ time.Time) {
	s.ProductID = *f.ProductID
	s.Quantity = *f.Quantity
}

package domain

import (
	"time"
)

// Order records a purchase. CustomerID and ProductID are plain integers;
// nothing checks that they reference existing rows, and creating an order
// does not touch stock.
type Order struct {
	Model
	CustomerID int       `json:"customer_id" gorm:"not null"`
	ProductID  int       `json:"product_id" gorm:"not null"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	OrderDate  time.Time `json:"order_date" gorm:"not null"`
}

type OrderForm struct {
	CustomerID *int `form:"customer_id" binding:"required"`
	ProductID  *int `form:"product_id" binding:"required"`
	Quantity   *int `form:"quantity" binding:"required"`
	// OrderDate is optional; when omitted the order is stamped with now.
	OrderDate time.Time `form:"order_date" time_format:"2006-01-02" time_utc:"1"`
}

func (f OrderForm) Apply(o *Order, now time.Time) {
	o.CustomerID = *f.CustomerID
	o.ProductID = *f.ProductID
	o.Quantity = *f.Quantity
	o.OrderDate = f.OrderDate
	if o.OrderDate.IsZero() {
		o.OrderDate = now.UTC()
	}
}

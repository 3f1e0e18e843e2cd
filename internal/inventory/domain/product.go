package domain

import "time"

type Product struct {
	Model
	Name        string  `json:"name" gorm:"size:100;not null"`
	Price       float64 `json:"price" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
}

type ProductForm struct {
	Name        *string  `form:"name" binding:"required"`
	Price       *float64 `form:"price" binding:"required"`
	Description string   `form:"description"`
}

func (f ProductForm) Apply(p *Product, _ time.Time) {
	p.Name = *f.Name
	p.Price = *f.Price
	p.Description = f.Description
}

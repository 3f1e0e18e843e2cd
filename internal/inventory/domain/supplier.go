package domain

import "time"

type Supplier struct {
	Model
	Name    string `json:"name" gorm:"size:50;not null"`
	Email   string `json:"email" gorm:"size:50;not null"`
	Address string `json:"address" gorm:"size:100;not null"`
}

type SupplierForm struct {
	Name    *string `form:"name" binding:"required"`
	Email   *string `form:"email" binding:"required"`
	Address *string `form:"address" binding:"required"`
}

func (f SupplierForm) Apply(s *Supplier, _ time.Time) {
	s.Name = *f.Name
	s.Email = *f.Email
	s.Address = *f.Address
}

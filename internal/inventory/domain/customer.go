package domain

import "time"

type Customer struct {
	Model
	Name    string `json:"name" gorm:"size:50;not null"`
	Email   string `json:"email" gorm:"size:50;not null"`
	Address string `json:"address" gorm:"size:100;not null"`
}

type CustomerForm struct {
	Name    *string `form:"name" binding:"required"`
	Email   *string `form:"email" binding:"required"`
	Address *string `form:"address" binding:"required"`
}

func (f CustomerForm) Apply(c *Customer, _ time.Time) {
	c.Name = *f.Name
	c.Email = *f.Email
	c.Address = *f.Address
}

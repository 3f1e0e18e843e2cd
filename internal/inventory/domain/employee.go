package domain

import "time"

type Employee struct {
	Model
	Name       string `json:"name" gorm:"size:50;not null"`
	Position   string `json:"position" gorm:"size:50;not null"`
	Department string `json:"department" gorm:"size:50;not null"`
}

type EmployeeForm struct {
	Name       *string `form:"name" binding:"required"`
	Position   *string `form:"position" binding:"required"`
	Department *string `form:"department" binding:"required"`
}

func (f EmployeeForm) Apply(e *Employee, _ time.Time) {
	e.Name = *f.Name
	e.Position = *f.Position
	e.Department = *f.Department
}

package models

import (
	"github.com/oapi-codegen/nullable"
	"github.com/shopspring/decimal"
)

type Laborer struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name          string          `json:"name" gorm:"not null"`
	Phone         string          `json:"phone" gorm:"not null"`
	Address       *string         `json:"address"`
	MonthlySalary decimal.Decimal `json:"monthlySalary" gorm:"type:decimal(10,2);not null"`
	Status        string          `json:"status" gorm:"not null;default:'active'"` // active, inactive, on_leave
}

type LaborerStatus string

const (
	LaborerActive   LaborerStatus = "active"
	LaborerInactive LaborerStatus = "inactive"
	LaborerOnLeave  LaborerStatus = "on_leave"
)

type LaborerInput struct {
	Name          string           `json:"name" binding:"required"`
	Phone         string           `json:"phone" binding:"required"`
	Address       *string          `json:"address"`
	MonthlySalary *decimal.Decimal `json:"monthlySalary" binding:"required"`
	Status        string           `json:"status" binding:"omitempty,oneof=active inactive on_leave"`
}

func (in LaborerInput) ToLaborer() Laborer {
	status := in.Status
	if status == "" {
		status = string(LaborerActive)
	}
	laborer := Laborer{
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
		Status:  status,
	}
	if in.MonthlySalary != nil {
		laborer.MonthlySalary = *in.MonthlySalary
	}
	return laborer
}

type LaborerPatch struct {
	Name          *string                   `json:"name" binding:"omitempty,min=1"`
	Phone         *string                   `json:"phone" binding:"omitempty,min=1"`
	Address       nullable.Nullable[string] `json:"address"`
	MonthlySalary *decimal.Decimal          `json:"monthlySalary"`
	Status        *string                   `json:"status" binding:"omitempty,oneof=active inactive on_leave"`
}

func (p LaborerPatch) Apply(l *Laborer) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Phone != nil {
		l.Phone = *p.Phone
	}
	applyNullable(&l.Address, p.Address)
	if p.MonthlySalary != nil {
		l.MonthlySalary = *p.MonthlySalary
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
}

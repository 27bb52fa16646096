package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultMinStock = 1000

type Brick struct {
	ID           string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Type         string          `json:"type" gorm:"not null"`
	Description  string          `json:"description" gorm:"not null"`
	CurrentStock int             `json:"currentStock" gorm:"not null;default:0"`
	MinStock     int             `json:"minStock" gorm:"not null"`
	UnitPrice    decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2);not null"`
	LastUpdated  time.Time       `json:"lastUpdated"`
}

// IsLowStock reports whether the brick has fallen to its reorder threshold.
func (b Brick) IsLowStock() bool {
	return b.CurrentStock <= b.MinStock
}

type BrickInput struct {
	Type         string           `json:"type" binding:"required"`
	Description  string           `json:"description" binding:"required"`
	CurrentStock *int             `json:"currentStock" binding:"omitempty,min=0"`
	MinStock     *int             `json:"minStock" binding:"omitempty,min=0"`
	UnitPrice    *decimal.Decimal `json:"unitPrice" binding:"required"`
}

func (in BrickInput) ToBrick() Brick {
	brick := Brick{
		Type:        in.Type,
		Description: in.Description,
		MinStock:    DefaultMinStock,
	}
	if in.CurrentStock != nil {
		brick.CurrentStock = *in.CurrentStock
	}
	if in.MinStock != nil {
		brick.MinStock = *in.MinStock
	}
	if in.UnitPrice != nil {
		brick.UnitPrice = *in.UnitPrice
	}
	return brick
}

type BrickPatch struct {
	Type         *string          `json:"type" binding:"omitempty,min=1"`
	Description  *string          `json:"description" binding:"omitempty,min=1"`
	CurrentStock *int             `json:"currentStock" binding:"omitempty,min=0"`
	MinStock     *int             `json:"minStock" binding:"omitempty,min=0"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
}

func (p BrickPatch) Apply(b *Brick) {
	if p.Type != nil {
		b.Type = *p.Type
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.CurrentStock != nil {
		b.CurrentStock = *p.CurrentStock
	}
	if p.MinStock != nil {
		b.MinStock = *p.MinStock
	}
	if p.UnitPrice != nil {
		b.UnitPrice = *p.UnitPrice
	}
}

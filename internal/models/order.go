package models

import (
	"time"

	"github.com/oapi-codegen/nullable"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Order struct {
	ID                 string                      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderNumber        string                      `json:"orderNumber" gorm:"uniqueIndex;not null"`
	CustomerName       string                      `json:"customerName" gorm:"not null"`
	CustomerPhone      *string                     `json:"customerPhone"`
	CustomerAddress    string                      `json:"customerAddress" gorm:"not null"`
	DeliveryAddress    string                      `json:"deliveryAddress" gorm:"not null"`
	BrickType          string                      `json:"brickType" gorm:"not null"` // brick id
	Quantity           int                         `json:"quantity" gorm:"not null"`
	UnitPrice          decimal.Decimal             `json:"unitPrice" gorm:"type:decimal(10,2);not null"`
	TotalAmount        decimal.Decimal             `json:"totalAmount" gorm:"type:decimal(12,2);not null"`
	AssignedTractorID  *string                     `json:"assignedTractorId"`
	AssignedLaborerIDs datatypes.JSONSlice[string] `json:"assignedLaborerIds"`
	Status             string                      `json:"status" gorm:"not null;default:'pending'"` // pending, in_transit, delivered, cancelled
	OrderDate          time.Time                   `json:"orderDate" gorm:"not null;index"`
	DeliveryDate       *time.Time                  `json:"deliveryDate"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderInTransit OrderStatus = "in_transit"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type OrderInput struct {
	CustomerName       string           `json:"customerName" binding:"required"`
	CustomerPhone      *string          `json:"customerPhone"`
	CustomerAddress    string           `json:"customerAddress" binding:"required"`
	DeliveryAddress    string           `json:"deliveryAddress" binding:"required"`
	BrickType          string           `json:"brickType" binding:"required"`
	Quantity           int              `json:"quantity" binding:"required,min=1"`
	UnitPrice          *decimal.Decimal `json:"unitPrice" binding:"required"`
	TotalAmount        *decimal.Decimal `json:"totalAmount" binding:"required"`
	AssignedTractorID  *string          `json:"assignedTractorId"`
	AssignedLaborerIDs []string         `json:"assignedLaborerIds"`
	Status             string           `json:"status" binding:"omitempty,oneof=pending in_transit delivered cancelled"`
	DeliveryDate       *time.Time       `json:"deliveryDate"`
}

func (in OrderInput) ToOrder() Order {
	status := in.Status
	if status == "" {
		status = string(OrderPending)
	}
	order := Order{
		CustomerName:       in.CustomerName,
		CustomerPhone:      in.CustomerPhone,
		CustomerAddress:    in.CustomerAddress,
		DeliveryAddress:    in.DeliveryAddress,
		BrickType:          in.BrickType,
		Quantity:           in.Quantity,
		AssignedLaborerIDs: datatypes.JSONSlice[string](append([]string{}, in.AssignedLaborerIDs...)),
		Status:             status,
		DeliveryDate:       in.DeliveryDate,
	}
	if in.AssignedTractorID != nil && *in.AssignedTractorID != "" {
		order.AssignedTractorID = in.AssignedTractorID
	}
	if in.UnitPrice != nil {
		order.UnitPrice = *in.UnitPrice
	}
	if in.TotalAmount != nil {
		order.TotalAmount = *in.TotalAmount
	}
	return order
}

// OrderPatch holds the fields of a partial update. Nullable fields are
// cleared by an explicit null and left alone when absent.
type OrderPatch struct {
	CustomerName       *string                      `json:"customerName" binding:"omitempty,min=1"`
	CustomerPhone      nullable.Nullable[string]    `json:"customerPhone"`
	CustomerAddress    *string                      `json:"customerAddress" binding:"omitempty,min=1"`
	DeliveryAddress    *string                      `json:"deliveryAddress" binding:"omitempty,min=1"`
	BrickType          *string                      `json:"brickType" binding:"omitempty,min=1"`
	Quantity           *int                         `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice          *decimal.Decimal             `json:"unitPrice"`
	TotalAmount        *decimal.Decimal             `json:"totalAmount"`
	AssignedTractorID  nullable.Nullable[string]    `json:"assignedTractorId"`
	AssignedLaborerIDs *[]string                    `json:"assignedLaborerIds"`
	Status             *string                      `json:"status" binding:"omitempty,oneof=pending in_transit delivered cancelled"`
	DeliveryDate       nullable.Nullable[time.Time] `json:"deliveryDate"`
}

func (p OrderPatch) Apply(o *Order) {
	if p.CustomerName != nil {
		o.CustomerName = *p.CustomerName
	}
	applyNullable(&o.CustomerPhone, p.CustomerPhone)
	if p.CustomerAddress != nil {
		o.CustomerAddress = *p.CustomerAddress
	}
	if p.DeliveryAddress != nil {
		o.DeliveryAddress = *p.DeliveryAddress
	}
	if p.BrickType != nil {
		o.BrickType = *p.BrickType
	}
	if p.Quantity != nil {
		o.Quantity = *p.Quantity
	}
	if p.UnitPrice != nil {
		o.UnitPrice = *p.UnitPrice
	}
	if p.TotalAmount != nil {
		o.TotalAmount = *p.TotalAmount
	}
	applyNullable(&o.AssignedTractorID, p.AssignedTractorID)
	if p.AssignedLaborerIDs != nil {
		o.AssignedLaborerIDs = datatypes.JSONSlice[string](append([]string{}, (*p.AssignedLaborerIDs)...))
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	applyNullable(&o.DeliveryDate, p.DeliveryDate)
}

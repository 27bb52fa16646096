package models

import (
	"time"

	"github.com/oapi-codegen/nullable"
)

type Tractor struct {
	ID                 string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	RegistrationNumber string     `json:"registrationNumber" gorm:"uniqueIndex;not null"`
	Model              string     `json:"model" gorm:"not null"`
	DriverName         *string    `json:"driverName"`
	DriverPhone        *string    `json:"driverPhone"`
	Status             string     `json:"status" gorm:"not null;default:'available'"` // available, assigned, maintenance
	LastMaintenance    *time.Time `json:"lastMaintenance"`
	NextMaintenance    *time.Time `json:"nextMaintenance"`
}

type TractorStatus string

const (
	TractorAvailable   TractorStatus = "available"
	TractorAssigned    TractorStatus = "assigned"
	TractorMaintenance TractorStatus = "maintenance"
)

type TractorInput struct {
	RegistrationNumber string     `json:"registrationNumber" binding:"required"`
	Model              string     `json:"model" binding:"required"`
	DriverName         *string    `json:"driverName"`
	DriverPhone        *string    `json:"driverPhone"`
	Status             string     `json:"status" binding:"omitempty,oneof=available assigned maintenance"`
	LastMaintenance    *time.Time `json:"lastMaintenance"`
	NextMaintenance    *time.Time `json:"nextMaintenance"`
}

func (in TractorInput) ToTractor() Tractor {
	status := in.Status
	if status == "" {
		status = string(TractorAvailable)
	}
	return Tractor{
		RegistrationNumber: in.RegistrationNumber,
		Model:              in.Model,
		DriverName:         in.DriverName,
		DriverPhone:        in.DriverPhone,
		Status:             status,
		LastMaintenance:    in.LastMaintenance,
		NextMaintenance:    in.NextMaintenance,
	}
}

type TractorPatch struct {
	RegistrationNumber *string                      `json:"registrationNumber" binding:"omitempty,min=1"`
	Model              *string                      `json:"model" binding:"omitempty,min=1"`
	DriverName         nullable.Nullable[string]    `json:"driverName"`
	DriverPhone        nullable.Nullable[string]    `json:"driverPhone"`
	Status             *string                      `json:"status" binding:"omitempty,oneof=available assigned maintenance"`
	LastMaintenance    nullable.Nullable[time.Time] `json:"lastMaintenance"`
	NextMaintenance    nullable.Nullable[time.Time] `json:"nextMaintenance"`
}

func (p TractorPatch) Apply(t *Tractor) {
	if p.RegistrationNumber != nil {
		t.RegistrationNumber = *p.RegistrationNumber
	}
	if p.Model != nil {
		t.Model = *p.Model
	}
	applyNullable(&t.DriverName, p.DriverName)
	applyNullable(&t.DriverPhone, p.DriverPhone)
	if p.Status != nil {
		t.Status = *p.Status
	}
	applyNullable(&t.LastMaintenance, p.LastMaintenance)
	applyNullable(&t.NextMaintenance, p.NextMaintenance)
}

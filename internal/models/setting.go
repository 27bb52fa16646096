package models

type Setting struct {
	Key   string `json:"key" gorm:"primaryKey;type:varchar(64)"`
	Value string `json:"value" gorm:"type:text;not null"`
}

const (
	SettingDeliveryCharge = "deliveryCharge"
	SettingLaborCharge    = "laborCharge"
	SettingTaxRate        = "taxRate"
)

type SettingInput struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// Sequence backs the order and invoice numbering in the database.
type Sequence struct {
	Name  string `gorm:"primaryKey;type:varchar(32)"`
	Value int64  `gorm:"not null;default:0"`
}

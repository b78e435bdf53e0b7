package models

import "time"

// Beverage adalah data referensi dari katalog supplier. Tidak pernah
// dimutasi oleh engine.
// Price and strength come in as raw catalog text ("13.90", "5.2%") and are
// parsed only where a number is actually needed.
type Beverage struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Number          string    `gorm:"type:varchar(20);unique;not null" json:"nr"`
	Name            string    `gorm:"type:varchar(255); not null" json:"name"`
	Category        string    `gorm:"type:varchar(100)" json:"category"`
	PriceInclVat    string    `gorm:"type:varchar(20)" json:"price_incl_vat"`
	AlcoholStrength string    `gorm:"type:varchar(10)" json:"alcohol_strength"`
	Producer        string    `gorm:"type:varchar(255)" json:"producer"`
	Packaging       string    `gorm:"type:varchar(100)" json:"packaging"`
	Origin          string    `gorm:"type:varchar(100)" json:"origin"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

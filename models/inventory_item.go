package models

import "time"

// Nama partisi inventory yang dikenal
const (
	InventoryBar = "bar"
	InventoryVip = "vip"
)

// KnownInventory reports whether name is one of the recognized partitions.
func KnownInventory(name string) bool {
	return name == InventoryBar || name == InventoryVip
}

// InventoryItem tracks the stock of one beverage inside one inventory
// partition. Quantity is never allowed to go below zero.
type InventoryItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	InventoryName string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_inventory_beverage" json:"inventory_name"`
	BeverageNr    string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_inventory_beverage" json:"beverage_nr"`
	Quantity      int       `gorm:"not null;default:0" json:"quantity"`
	Active        bool      `gorm:"not null;default:true" json:"active"`
	VisibleInMenu bool      `gorm:"not null;default:true" json:"visible_in_menu"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

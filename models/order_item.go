package models

import "time"

// OrderItem is one line of an order. ItemID is unique within its order,
// assigned sequentially from 1, and never reused after removal (the next
// id is always last existing + 1).
type OrderItem struct {
	OrderID           uint      `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	ItemID            int       `gorm:"primaryKey;autoIncrement:false" json:"item_id"`
	BeverageNr        string    `gorm:"type:varchar(20);not null" json:"beverage_nr"`
	ProductOnTheHouse bool      `gorm:"not null;default:false" json:"product_on_the_house"`
	CreatedAt         time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null" json:"updated_at"`
}

package models

import "time"

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	TableNumber string      `gorm:"type:varchar(50);not null" json:"table"`
	Inventory   string      `gorm:"type:varchar(20);not null" json:"inventory"`
	Notes       string      `gorm:"type:text" json:"notes"`
	Done        bool        `gorm:"not null;default:false" json:"done"`
	BillID      *uint       `gorm:"index" json:"bill_id,omitempty"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}

// LastItemID mengembalikan item id terbesar, 0 jika order kosong.
func (o *Order) LastItemID() int {
	last := 0
	for _, it := range o.Items {
		if it.ItemID > last {
			last = it.ItemID
		}
	}
	return last
}

// FindItem returns the item with the given id, or nil.
func (o *Order) FindItem(itemID int) *OrderItem {
	for i := range o.Items {
		if o.Items[i].ItemID == itemID {
			return &o.Items[i]
		}
	}
	return nil
}

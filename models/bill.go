package models

import "time"

// SplitShare adalah satu bagian pembayaran dari sebuah bill.
type SplitShare struct {
	AmountSEK float64 `json:"amountSEK"`
	Paid      bool    `json:"paid"`
}

// BillSplit maps split-slot ids ("1".."N") to their shares.
type BillSplit map[string]SplitShare

// Bill represents the amount owed for one order. Amount is fixed at
// creation time and never recomputed afterwards.
type Bill struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Amount       float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Split        BillSplit `gorm:"serializer:json" json:"split,omitempty"`
	VipAccountID *uint     `json:"vip_account_id,omitempty"`
	ReferenceID  string    `gorm:"type:varchar(64)" json:"reference_id"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// Settled reports whether every share of the split has been paid.
// A bill without a split is considered settled.
func (b *Bill) Settled() bool {
	for _, share := range b.Split {
		if !share.Paid {
			return false
		}
	}
	return true
}

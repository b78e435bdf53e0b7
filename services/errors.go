package services

import "errors"

// Kegagalan bisnis yang bisa dipulihkan. Caller memperlakukan nil result
// sebagai "tidak ada yang berubah"; tidak ada yang boleh bikin proses crash.
var (
	ErrInvalidDraft      = errors.New("invalid order draft")
	ErrInvalidItem       = errors.New("invalid order item")
	ErrUnknownBeverage   = errors.New("unknown beverage number")
	ErrUnknownInventory  = errors.New("unknown inventory name")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderNotFound     = errors.New("order not found")
	ErrItemNotFound      = errors.New("order item not found")
	ErrBillNotFound      = errors.New("bill not found")
	ErrInventoryMismatch = errors.New("order inventory cannot change")
	ErrUnpaidShares      = errors.New("bill has unpaid shares")
)

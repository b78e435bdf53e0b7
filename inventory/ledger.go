package inventory

import (
	"github.com/yeremiapane/bar-pos/models"
	"github.com/yeremiapane/bar-pos/store"
	"github.com/yeremiapane/bar-pos/utils"
)

// Ledger adalah lapisan domain tipis di atas store untuk satu concern:
// jumlah stok per (partisi, nomor beverage).
type Ledger struct {
	store *store.Store
}

func NewLedger(s *store.Store) *Ledger {
	return &Ledger{store: s}
}

// QuantityOf returns the current quantity for the pair, or ok=false when
// the (inventoryName, beverageNr) pair is unknown.
func (l *Ledger) QuantityOf(inventoryName, beverageNr string) (int, bool) {
	item, err := l.store.FindInventoryItem(inventoryName, beverageNr)
	if err != nil {
		return 0, false
	}
	return item.Quantity, true
}

// SetQuantity menulis jumlah baru. Menolak (return nil, tanpa mutasi) jika
// qty negatif atau pasangan tidak dikenal.
func (l *Ledger) SetQuantity(inventoryName, beverageNr string, qty int) *models.InventoryItem {
	if qty < 0 {
		utils.ErrorLogger.Printf("inventory %s: refusing negative quantity %d for beverage %s",
			inventoryName, qty, beverageNr)
		return nil
	}

	item, err := l.store.FindInventoryItem(inventoryName, beverageNr)
	if err != nil {
		utils.ErrorLogger.Printf("inventory %s: unknown beverage %s: %v", inventoryName, beverageNr, err)
		return nil
	}

	item.Quantity = qty
	if err := l.store.SaveInventoryItem(item); err != nil {
		utils.ErrorLogger.Printf("inventory %s: failed to save beverage %s: %v", inventoryName, beverageNr, err)
		return nil
	}
	return item
}

// ItemsBelowThreshold -> semua item dengan quantity < threshold, linear scan.
func (l *Ledger) ItemsBelowThreshold(inventoryName string, threshold int) []models.InventoryItem {
	all, err := l.store.AllInventoryItems(inventoryName)
	if err != nil {
		utils.ErrorLogger.Printf("inventory %s: failed to list items: %v", inventoryName, err)
		return nil
	}

	var low []models.InventoryItem
	for _, item := range all {
		if item.Quantity < threshold {
			low = append(low, item)
		}
	}
	return low
}

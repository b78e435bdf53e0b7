package services

import (
	"fmt"

	"github.com/yeremiapane/bar-pos/models"
	"github.com/yeremiapane/bar-pos/store"
)

// ItemDraft is the boundary shape of one order line before it gets an id.
type ItemDraft struct {
	BeverageNr        string `json:"beverage_nr"`
	ProductOnTheHouse bool   `json:"product_on_the_house"`
}

// OrderDraft is the boundary shape of a new order. Validation happens once
// here; the engine internals never re-check basic shape.
type OrderDraft struct {
	ID          uint        `json:"id,omitempty"` // must stay zero; a set id means "use EditOrder"
	TableNumber string      `json:"table"`
	Inventory   string      `json:"inventory"`
	Items       []ItemDraft `json:"items"`
	Notes       string      `json:"notes"`
}

// validateItemDraft memastikan nomor beverage ada dan dikenal di katalog.
func validateItemDraft(st *store.Store, item ItemDraft) error {
	if item.BeverageNr == "" {
		return fmt.Errorf("%w: missing beverage number", ErrInvalidItem)
	}
	if _, err := st.FindBeverageByNumber(item.BeverageNr); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownBeverage, item.BeverageNr)
	}
	return nil
}

// validateDraft menjalankan semua pemeriksaan createOrder. Semua harus lolos,
// kalau tidak createOrder gagal tanpa mutasi apapun.
func validateDraft(st *store.Store, draft *OrderDraft) error {
	if draft == nil {
		return fmt.Errorf("%w: nil draft", ErrInvalidDraft)
	}
	if draft.ID != 0 {
		// Draft dengan id berarti salah jalur; harusnya EditOrder.
		return fmt.Errorf("%w: draft carries id %d, use EditOrder", ErrInvalidDraft, draft.ID)
	}
	if draft.TableNumber == "" {
		return fmt.Errorf("%w: missing table", ErrInvalidDraft)
	}
	if len(draft.Items) == 0 {
		return fmt.Errorf("%w: no items", ErrInvalidDraft)
	}
	for i, item := range draft.Items {
		if err := validateItemDraft(st, item); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	if !models.KnownInventory(draft.Inventory) {
		return fmt.Errorf("%w: %q", ErrUnknownInventory, draft.Inventory)
	}
	return nil
}

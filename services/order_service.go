package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/bar-pos/inventory"
	"github.com/yeremiapane/bar-pos/models"
	"github.com/yeremiapane/bar-pos/store"
	"github.com/yeremiapane/bar-pos/utils"
)

// OrderService menangani operasi order dan menjaga invariant reservasi stok.
// Semua dependency dioper eksplisit, tidak ada state global.
type OrderService struct {
	store  *store.Store
	ledger *inventory.Ledger
}

func NewOrderService(st *store.Store, ledger *inventory.Ledger) *OrderService {
	return &OrderService{
		store:  st,
		ledger: ledger,
	}
}

// GetOrderByID -> detail 1 order beserta items
func (s *OrderService) GetOrderByID(orderID uint) (*models.Order, error) {
	order, err := s.store.FindOrderByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrOrderNotFound, orderID)
		}
		return nil, err
	}
	return order, nil
}

// CreateOrder memvalidasi draft, memberi nomor item berurutan, lalu
// mereservasi stok secara atomik. Kalau ada satu saja beverage yang stoknya
// kurang, seluruh order batal: tidak ada stok yang berubah, tidak ada order
// yang tersimpan.
func (s *OrderService) CreateOrder(draft *OrderDraft) (*models.Order, error) {
	if err := validateDraft(s.store, draft); err != nil {
		utils.ErrorLogger.Printf("CreateOrder rejected: %v", err)
		return nil, err
	}

	now := time.Now()
	order := models.Order{
		TableNumber: draft.TableNumber,
		Inventory:   draft.Inventory,
		Notes:       "",
		Done:        false,
		BillID:      nil,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if draft.Notes != "" {
		order.Notes = draft.Notes
	}

	// Nomor item berurutan 1..N sesuai urutan input
	for i, item := range draft.Items {
		order.Items = append(order.Items, models.OrderItem{
			ItemID:            i + 1,
			BeverageNr:        item.BeverageNr,
			ProductOnTheHouse: item.ProductOnTheHouse,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}

	if err := s.reserveStock(order.Inventory, order.Items); err != nil {
		utils.ErrorLogger.Printf("CreateOrder: reservation failed for table %s: %v",
			order.TableNumber, err)
		return nil, err
	}

	if err := s.store.CreateOrder(&order); err != nil {
		// Reservasi sudah jalan; kembalikan stok sebelum menyerah.
		s.restoreStock(order.Inventory, order.Items)
		utils.ErrorLogger.Printf("CreateOrder: failed to persist order: %v", err)
		return nil, err
	}

	utils.InfoLogger.Printf("Order #%d created for table %s (%d items, inventory=%s)",
		order.ID, order.TableNumber, len(order.Items), order.Inventory)
	return s.GetOrderByID(order.ID)
}

// EditOrder menimpa field table/notes/done/billId saja. Items tidak disentuh
// dan karenanya stok juga tidak; mutasi item lewat operasi khusus item.
func (s *OrderService) EditOrder(in *models.Order) (*models.Order, error) {
	if in == nil || in.ID == 0 {
		utils.ErrorLogger.Printf("EditOrder rejected: missing order id")
		return nil, fmt.Errorf("%w: missing id", ErrInvalidDraft)
	}
	if in.TableNumber == "" {
		utils.ErrorLogger.Printf("EditOrder rejected: missing table for order %d", in.ID)
		return nil, fmt.Errorf("%w: missing table", ErrInvalidDraft)
	}

	order, err := s.GetOrderByID(in.ID)
	if err != nil {
		utils.ErrorLogger.Printf("EditOrder: %v", err)
		return nil, err
	}

	// Partisi inventory tidak boleh berubah setelah order dibuat.
	if in.Inventory != "" && in.Inventory != order.Inventory {
		utils.ErrorLogger.Printf("EditOrder rejected: order %d inventory %q -> %q",
			order.ID, order.Inventory, in.Inventory)
		return nil, ErrInventoryMismatch
	}

	order.TableNumber = in.TableNumber
	order.Notes = in.Notes
	order.Done = in.Done
	order.BillID = in.BillID
	order.UpdatedAt = time.Now()

	if err := s.store.SaveOrder(order); err != nil {
		utils.ErrorLogger.Printf("EditOrder: failed to save order %d: %v", order.ID, err)
		return nil, err
	}
	return s.GetOrderByID(order.ID)
}

// RemoveOrderByID menghapus order dan mengembalikan stok satu unit per item.
// Pengembalian berlaku untuk SEMUA item, termasuk product on the house yang
// waktu create tidak ikut direservasi. Asimetri ini disengaja mengikuti
// perilaku produksi; jangan "diperbaiki" tanpa keputusan produk.
func (s *OrderService) RemoveOrderByID(orderID uint) {
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		// Gagal diam-diam: cukup log, tidak ada error ke caller.
		utils.ErrorLogger.Printf("RemoveOrderByID: %v", err)
		return
	}

	s.restoreStock(order.Inventory, order.Items)

	if err := s.store.DeleteOrderByID(order.ID); err != nil {
		utils.ErrorLogger.Printf("RemoveOrderByID: failed to delete order %d: %v", order.ID, err)
		return
	}
	utils.InfoLogger.Printf("Order #%d removed, stock restored for %d items", order.ID, len(order.Items))
}

// AddItemToOrder menambah satu item dengan id = last + 1 (atau 1 jika order
// kosong). Reservasi memakai algoritma dua fase yang sama dengan CreateOrder,
// di-scope ke satu item ini saja.
func (s *OrderService) AddItemToOrder(orderID uint, draft ItemDraft) (*models.Order, error) {
	if err := validateItemDraft(s.store, draft); err != nil {
		utils.ErrorLogger.Printf("AddItemToOrder rejected: %v", err)
		return nil, err
	}

	order, err := s.GetOrderByID(orderID)
	if err != nil {
		utils.ErrorLogger.Printf("AddItemToOrder: %v", err)
		return nil, err
	}

	now := time.Now()
	item := models.OrderItem{
		OrderID:           order.ID,
		ItemID:            order.LastItemID() + 1,
		BeverageNr:        draft.BeverageNr,
		ProductOnTheHouse: draft.ProductOnTheHouse,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.reserveStock(order.Inventory, []models.OrderItem{item}); err != nil {
		utils.ErrorLogger.Printf("AddItemToOrder: reservation failed for order %d: %v", order.ID, err)
		return nil, err
	}

	if err := s.store.AddOrderItem(&item); err != nil {
		s.restoreStock(order.Inventory, []models.OrderItem{item})
		utils.ErrorLogger.Printf("AddItemToOrder: failed to persist item: %v", err)
		return nil, err
	}

	utils.InfoLogger.Printf("Order #%d: item %d added (beverage %s)", order.ID, item.ItemID, item.BeverageNr)
	return s.GetOrderByID(order.ID)
}

// RemoveItemFromOrder mengembalikan satu unit stok untuk item tersebut tanpa
// syarat, lalu menghapus item (dicocokkan lewat item id).
func (s *OrderService) RemoveItemFromOrder(orderID uint, item models.OrderItem) (*models.Order, error) {
	if item.BeverageNr == "" {
		utils.ErrorLogger.Printf("RemoveItemFromOrder rejected: missing beverage number")
		return nil, fmt.Errorf("%w: missing beverage number", ErrInvalidItem)
	}

	order, err := s.GetOrderByID(orderID)
	if err != nil {
		utils.ErrorLogger.Printf("RemoveItemFromOrder: %v", err)
		return nil, err
	}

	s.restoreStock(order.Inventory, []models.OrderItem{item})

	if err := s.store.DeleteOrderItem(order.ID, item.ItemID); err != nil {
		utils.ErrorLogger.Printf("RemoveItemFromOrder: failed to delete item %d of order %d: %v",
			item.ItemID, order.ID, err)
		return nil, err
	}

	utils.InfoLogger.Printf("Order #%d: item %d removed (beverage %s)", order.ID, item.ItemID, item.BeverageNr)
	return s.GetOrderByID(order.ID)
}

// ChangeNoteOfOrder menimpa catatan order seluruhnya (tanpa merge).
func (s *OrderService) ChangeNoteOfOrder(orderID uint, newNote string) (*models.Order, error) {
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		utils.ErrorLogger.Printf("ChangeNoteOfOrder: %v", err)
		return nil, err
	}

	order.Notes = newNote
	order.UpdatedAt = time.Now()
	if err := s.store.SaveOrder(order); err != nil {
		utils.ErrorLogger.Printf("ChangeNoteOfOrder: failed to save order %d: %v", order.ID, err)
		return nil, err
	}
	return s.GetOrderByID(order.ID)
}

// DeclareItemAsProductOnTheHouse menandai satu item gratis. Hanya flag yang
// berubah; reservasi stok yang sudah diambil dibiarkan.
func (s *OrderService) DeclareItemAsProductOnTheHouse(orderID uint, itemID int) (*models.Order, error) {
	return s.setOnTheHouse(orderID, itemID, true)
}

// UndeclareItemAsProductOnTheHouse membatalkan tanda gratis.
func (s *OrderService) UndeclareItemAsProductOnTheHouse(orderID uint, itemID int) (*models.Order, error) {
	return s.setOnTheHouse(orderID, itemID, false)
}

func (s *OrderService) setOnTheHouse(orderID uint, itemID int, onTheHouse bool) (*models.Order, error) {
	order, err := s.GetOrderByID(orderID)
	if err != nil {
		utils.ErrorLogger.Printf("setOnTheHouse: %v", err)
		return nil, err
	}

	item := order.FindItem(itemID)
	if item == nil {
		utils.ErrorLogger.Printf("setOnTheHouse: order %d has no item %d", order.ID, itemID)
		return nil, fmt.Errorf("%w: item %d in order %d", ErrItemNotFound, itemID, orderID)
	}

	item.ProductOnTheHouse = onTheHouse
	item.UpdatedAt = time.Now()
	if err := s.store.SaveOrderItem(item); err != nil {
		utils.ErrorLogger.Printf("setOnTheHouse: failed to save item %d of order %d: %v",
			itemID, order.ID, err)
		return nil, err
	}
	return s.GetOrderByID(order.ID)
}

/*
========================================
 STOCK RESERVATION (two-pass)
========================================
*/

// reserveStock adalah kontrak algoritmik inti engine: simulasi dulu seluruh
// batch, validasi, baru apply. Pass 1 menghitung net decrement per beverage
// (item on the house dilewati), pass 2 memastikan semua hasil >= 0, pass 3
// menulis hasilnya — hanya jika pass 2 lolos. Gagal = tidak ada mutasi sama
// sekali.
func (s *OrderService) reserveStock(inventoryName string, items []models.OrderItem) error {
	// Pass 1: net decrement per beverage
	needed := make(map[string]int)
	for _, item := range items {
		if item.ProductOnTheHouse {
			continue
		}
		needed[item.BeverageNr]++
	}

	// Pass 2: simulasi, semua sisa harus >= 0
	remaining := make(map[string]int, len(needed))
	for nr, count := range needed {
		qty, ok := s.ledger.QuantityOf(inventoryName, nr)
		if !ok {
			return fmt.Errorf("%w: beverage %s not stocked in %s", ErrInsufficientStock, nr, inventoryName)
		}
		if qty-count < 0 {
			return fmt.Errorf("%w: beverage %s needs %d, only %d left in %s",
				ErrInsufficientStock, nr, count, qty, inventoryName)
		}
		remaining[nr] = qty - count
	}

	// Pass 3: apply
	for nr, qty := range remaining {
		s.ledger.SetQuantity(inventoryName, nr, qty)
	}
	return nil
}

// restoreStock mengembalikan satu unit per item, tanpa melihat flag on the
// house (lihat catatan di RemoveOrderByID).
func (s *OrderService) restoreStock(inventoryName string, items []models.OrderItem) {
	for _, item := range items {
		qty, ok := s.ledger.QuantityOf(inventoryName, item.BeverageNr)
		if !ok {
			utils.ErrorLogger.Printf("restoreStock: beverage %s unknown in %s, skipping",
				item.BeverageNr, inventoryName)
			continue
		}
		s.ledger.SetQuantity(inventoryName, item.BeverageNr, qty+1)
	}
}

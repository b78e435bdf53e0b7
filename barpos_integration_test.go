package main

import (
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/bar-pos/commands"
	"github.com/yeremiapane/bar-pos/database"
	"github.com/yeremiapane/bar-pos/inventory"
	"github.com/yeremiapane/bar-pos/models"
	"github.com/yeremiapane/bar-pos/services"
	"github.com/yeremiapane/bar-pos/store"
)

// TestEndToEndIntegration menguji flow utama:
// 1. Seed katalog + stok
// 2. Create order (reservasi stok)
// 3. Edit order lewat command manager, lalu undo/redo
// 4. Create bill dengan split
// 5. Bayar semua bagian -> complete order
// 6. Hapus order lain -> stok kembali
func TestEndToEndIntegration(t *testing.T) {
	db := setupIntegrationDB()

	st := store.New(db)
	ledger := inventory.NewLedger(st)
	orderSvc := services.NewOrderService(st, ledger)
	billSvc := services.NewBillService(st)
	registry := commands.NewRegistry()

	// 2. Create order: 2x Falcon + 1x vin on the house
	startFalcon, ok := ledger.QuantityOf(models.InventoryBar, "1121")
	require.True(t, ok)

	order, err := orderSvc.CreateOrder(&services.OrderDraft{
		TableNumber: "A1",
		Inventory:   models.InventoryBar,
		Items: []services.ItemDraft{
			{BeverageNr: "1121"},
			{BeverageNr: "1121"},
			{BeverageNr: "5102", ProductOnTheHouse: true},
		},
	})
	require.NoError(t, err)

	qty, _ := ledger.QuantityOf(models.InventoryBar, "1121")
	assert.Equal(t, startFalcon-2, qty)

	// 3. Tambah item lewat command manager, lalu undo dan redo
	m := registry.ForOrder(order.ID)
	_, err = m.Doit(commands.NewAddItemCommand(orderSvc, order.ID, services.ItemDraft{BeverageNr: "2033"}))
	require.NoError(t, err)
	_, err = m.Undoit()
	require.NoError(t, err)
	_, err = m.Redoit()
	require.NoError(t, err)

	fresh, err := orderSvc.GetOrderByID(order.ID)
	require.NoError(t, err)
	require.Len(t, fresh.Items, 4)

	// 4. Bill dengan split 2 slot; total = 2x13.90 + 18.50 (vin gratis)
	bill, err := billSvc.CreateBillForOrder(order.ID, models.BillSplit{"1": {}, "2": {}}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 46.30, bill.Amount, 0.001)

	// Belum lunas -> complete ditolak
	_, err = billSvc.CompleteOrder(order.ID)
	assert.ErrorIs(t, err, services.ErrUnpaidShares)

	// 5. Bayar kedua slot
	_, err = billSvc.EditBillSplit(bill.ID, models.BillSplit{
		"1": {AmountSEK: 23.15, Paid: true},
		"2": {AmountSEK: 23.15, Paid: true},
	})
	require.NoError(t, err)

	done, err := billSvc.CompleteOrder(order.ID)
	require.NoError(t, err)
	assert.True(t, done.Done)

	// 6. Order kedua dibuat lalu dihapus: stok kembali
	before, _ := ledger.QuantityOf(models.InventoryBar, "1471")
	second, err := orderSvc.CreateOrder(&services.OrderDraft{
		TableNumber: "A2",
		Inventory:   models.InventoryBar,
		Items:       []services.ItemDraft{{BeverageNr: "1471"}},
	})
	require.NoError(t, err)
	after, _ := ledger.QuantityOf(models.InventoryBar, "1471")
	assert.Equal(t, before-1, after)

	orderSvc.RemoveOrderByID(second.ID)
	registry.Drop(second.ID)
	restored, _ := ledger.QuantityOf(models.InventoryBar, "1471")
	assert.Equal(t, before, restored)
}

// setupIntegrationDB -> migrasi model di SQLite in-memory + seed data
func setupIntegrationDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:integration_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Beverage{},
		&models.InventoryItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Bill{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := database.Seed(db); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
	return db
}

package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/yeremiapane/bar-pos/config"
	"github.com/yeremiapane/bar-pos/database"
	"github.com/yeremiapane/bar-pos/inventory"
	"github.com/yeremiapane/bar-pos/models"
	"github.com/yeremiapane/bar-pos/store"
	"github.com/yeremiapane/bar-pos/utils"
)

func init() {
	// Load .env file di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	autoMigrate(db)

	if err := database.Seed(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed database: %v", err)
	}

	// Laporan stok menipis per partisi saat startup
	threshold := 5
	if v := os.Getenv("LOW_STOCK_THRESHOLD"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			threshold = parsed
		}
	}

	st := store.New(db)
	ledger := inventory.NewLedger(st)

	for _, name := range []string{models.InventoryBar, models.InventoryVip} {
		low := ledger.ItemsBelowThreshold(name, threshold)
		if len(low) == 0 {
			utils.InfoLogger.Printf("Inventory %s: all items at or above %d", name, threshold)
			continue
		}
		for _, item := range low {
			bev, err := st.FindBeverageByNumber(item.BeverageNr)
			if err != nil {
				utils.ErrorLogger.Printf("Inventory %s: beverage %s missing from catalog", name, item.BeverageNr)
				continue
			}
			price := ""
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(bev.PriceInclVat), 64); err == nil {
				price = " à " + utils.FormatCurrencySEK(parsed)
			}
			utils.InfoLogger.Printf("Inventory %s: LOW STOCK %s (%s)%s, %d left",
				name, bev.Name, bev.Number, price, item.Quantity)
		}
	}

	utils.InfoLogger.Println("Bar POS core ready")
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Beverage{},
		&models.InventoryItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Bill{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

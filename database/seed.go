package database

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/bar-pos/models"
	"github.com/yeremiapane/bar-pos/utils"
)

// Seed mengisi katalog beverage, stok partisi bar/vip dan user awal.
// Idempoten: kalau katalog sudah terisi, tidak ada yang ditulis ulang.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Beverage{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		utils.InfoLogger.Println("Seed skipped: beverage catalog already populated")
		return nil
	}

	beverages := []models.Beverage{
		{Number: "1121", Name: "Falcon Bayerskt", Category: "Öl", PriceInclVat: "13.90", AlcoholStrength: "5.2%", Producer: "Falcon", Packaging: "Flaska 33cl", Origin: "Sverige"},
		{Number: "1217", Name: "Eriksberg Karaktär", Category: "Öl", PriceInclVat: "15.40", AlcoholStrength: "5.3%", Producer: "Carlsberg Sverige", Packaging: "Flaska 33cl", Origin: "Sverige"},
		{Number: "1471", Name: "Norrlands Guld Export", Category: "Öl", PriceInclVat: "14.20", AlcoholStrength: "5.3%", Producer: "Spendrups", Packaging: "Burk 50cl", Origin: "Sverige"},
		{Number: "2033", Name: "Rekorderlig Päron", Category: "Cider", PriceInclVat: "18.50", AlcoholStrength: "4.5%", Producer: "Åbro", Packaging: "Flaska 33cl", Origin: "Sverige"},
		{Number: "5102", Name: "Château Marcel Rouge", Category: "Rött vin", PriceInclVat: "62.00", AlcoholStrength: "13.5%", Producer: "Maison Marcel", Packaging: "Flaska 75cl", Origin: "Frankrike"},
		{Number: "5530", Name: "Villa Bianca Pinot Grigio", Category: "Vitt vin", PriceInclVat: "58.00", AlcoholStrength: "12.0%", Producer: "Villa Bianca", Packaging: "Flaska 75cl", Origin: "Italien"},
		{Number: "8804", Name: "O.P. Anderson Aquavit", Category: "Sprit", PriceInclVat: "31.00", AlcoholStrength: "40.0%", Producer: "Anora", Packaging: "4cl", Origin: "Sverige"},
		{Number: "9610", Name: "Apotekarnes Sockerdricka", Category: "Alkoholfritt", PriceInclVat: "9.50", AlcoholStrength: "0.0%", Producer: "Apotekarnes", Packaging: "Flaska 33cl", Origin: "Sverige"},
	}
	for i := range beverages {
		if err := db.Create(&beverages[i]).Error; err != nil {
			return err
		}
	}

	// Stok bar: semua beverage. Stok vip: subset yang lebih eksklusif.
	for _, bev := range beverages {
		item := models.InventoryItem{
			InventoryName: models.InventoryBar,
			BeverageNr:    bev.Number,
			Quantity:      24,
			Active:        true,
			VisibleInMenu: true,
		}
		if err := db.Create(&item).Error; err != nil {
			return err
		}
	}
	for _, nr := range []string{"1217", "5102", "5530", "8804"} {
		item := models.InventoryItem{
			InventoryName: models.InventoryVip,
			BeverageNr:    nr,
			Quantity:      12,
			Active:        true,
			VisibleInMenu: true,
		}
		if err := db.Create(&item).Error; err != nil {
			return err
		}
	}

	users := []struct {
		name, email, password, role string
		balance                     float64
	}{
		{"Admin", "admin@example.com", "secret123", "admin", 0},
		{"Bartender", "bar@example.com", "secret123", "staff", 0},
		{"Stammis Svensson", "vip@example.com", "secret123", "vip", 500.00},
	}
	for _, u := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			Name:     u.name,
			Email:    u.email,
			Password: string(hashed),
			Role:     u.role,
			Balance:  u.balance,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	utils.InfoLogger.Printf("Seed completed: %d beverages, bar+vip inventories, %d users",
		len(beverages), len(users))
	return nil
}

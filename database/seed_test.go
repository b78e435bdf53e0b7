package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/bar-pos/models"
	"github.com/yeremiapane/bar-pos/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func TestSeedIsIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:seed_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Beverage{},
		&models.InventoryItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Bill{},
	))

	require.NoError(t, Seed(db))

	var beverages, users, barItems, vipItems int64
	db.Model(&models.Beverage{}).Count(&beverages)
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.InventoryItem{}).Where("inventory_name = ?", models.InventoryBar).Count(&barItems)
	db.Model(&models.InventoryItem{}).Where("inventory_name = ?", models.InventoryVip).Count(&vipItems)

	assert.NotZero(t, beverages)
	assert.NotZero(t, users)
	assert.Equal(t, beverages, barItems, "bar carries the whole catalog")
	assert.Less(t, vipItems, barItems, "vip carries a subset")

	// Jalankan lagi: tidak ada yang dobel
	require.NoError(t, Seed(db))
	var again int64
	db.Model(&models.Beverage{}).Count(&again)
	assert.Equal(t, beverages, again)

	// Password tersimpan sebagai hash, bukan plaintext
	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&admin).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("secret123")))

	// User vip punya saldo awal
	var vip models.User
	require.NoError(t, db.Where("role = ?", "vip").First(&vip).Error)
	assert.Greater(t, vip.Balance, 0.0)
}

package store

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/bar-pos/models"
)

// Store adalah lapisan CRUD-by-id di atas gorm. Semua akses database dari
// engine lewat sini, tidak ada query langsung di service.
type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}

/*
========================================
 ORDERS
========================================
*/

// FindOrderByID -> satu order beserta items (urut item_id)
func (s *Store) FindOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("item_id ASC")
	}).First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) AllOrders() ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("item_id ASC")
	}).Order("id ASC").Find(&orders).Error
	return orders, err
}

// CreateOrder menyimpan order baru beserta items-nya.
func (s *Store) CreateOrder(order *models.Order) error {
	return s.DB.Create(order).Error
}

// SaveOrder updates the order's own fields only; items are managed through
// the item-level operations below.
func (s *Store) SaveOrder(order *models.Order) error {
	return s.DB.Omit(clause.Associations).Save(order).Error
}

func (s *Store) DeleteOrderByID(id uint) error {
	if err := s.DB.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	return s.DB.Delete(&models.Order{}, id).Error
}

func (s *Store) AddOrderItem(item *models.OrderItem) error {
	return s.DB.Create(item).Error
}

func (s *Store) SaveOrderItem(item *models.OrderItem) error {
	return s.DB.Save(item).Error
}

func (s *Store) DeleteOrderItem(orderID uint, itemID int) error {
	return s.DB.Where("order_id = ? AND item_id = ?", orderID, itemID).
		Delete(&models.OrderItem{}).Error
}

/*
========================================
 BILLS
========================================
*/

func (s *Store) FindBillByID(id uint) (*models.Bill, error) {
	var bill models.Bill
	if err := s.DB.First(&bill, id).Error; err != nil {
		return nil, err
	}
	return &bill, nil
}

// SaveBill -> insert-or-update by id
func (s *Store) SaveBill(bill *models.Bill) error {
	return s.DB.Save(bill).Error
}

/*
========================================
 BEVERAGES (katalog, read-mostly)
========================================
*/

func (s *Store) FindBeverageByNumber(nr string) (*models.Beverage, error) {
	var bev models.Beverage
	if err := s.DB.Where("number = ?", nr).First(&bev).Error; err != nil {
		return nil, err
	}
	return &bev, nil
}

func (s *Store) AllBeverages() ([]models.Beverage, error) {
	var bevs []models.Beverage
	err := s.DB.Order("id ASC").Find(&bevs).Error
	return bevs, err
}

func (s *Store) SaveBeverage(bev *models.Beverage) error {
	return s.DB.Save(bev).Error
}

/*
========================================
 INVENTORY
========================================
*/

func (s *Store) FindInventoryItem(inventoryName, beverageNr string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := s.DB.Where("inventory_name = ? AND beverage_nr = ?", inventoryName, beverageNr).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// AllInventoryItems mengembalikan isi satu partisi, urut sesuai insertion order.
func (s *Store) AllInventoryItems(inventoryName string) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := s.DB.Where("inventory_name = ?", inventoryName).Order("id ASC").Find(&items).Error
	return items, err
}

func (s *Store) SaveInventoryItem(item *models.InventoryItem) error {
	return s.DB.Save(item).Error
}

/*
========================================
 USERS
========================================
*/

func (s *Store) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) SaveUser(user *models.User) error {
	return s.DB.Save(user).Error
}

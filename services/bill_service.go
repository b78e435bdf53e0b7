package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yeremiapane/bar-pos/models"
	"github.com/yeremiapane/bar-pos/store"
	"github.com/yeremiapane/bar-pos/utils"
)

// BillService menangani pembuatan bill, split pembayaran dan settlement.
type BillService struct {
	store *store.Store
}

func NewBillService(st *store.Store) *BillService {
	return &BillService{store: st}
}

// GetBillByID -> detail 1 bill
func (s *BillService) GetBillByID(billID uint) (*models.Bill, error) {
	bill, err := s.store.FindBillByID(billID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrBillNotFound, billID)
		}
		return nil, err
	}
	return bill, nil
}

// CalculateTotalAmount menjumlahkan harga beverage per item, item on the
// house tidak dihitung. Harga katalog yang gagal di-parse cuma dilewati
// dengan log, tidak bikin operasi gagal.
func (s *BillService) CalculateTotalAmount(order *models.Order) float64 {
	var total float64
	for _, item := range order.Items {
		if item.ProductOnTheHouse {
			continue
		}

		bev, err := s.store.FindBeverageByNumber(item.BeverageNr)
		if err != nil {
			utils.ErrorLogger.Printf("CalculateTotalAmount: order %d item %d: beverage %s not found, skipping",
				order.ID, item.ItemID, item.BeverageNr)
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(bev.PriceInclVat), 64)
		if err != nil {
			utils.ErrorLogger.Printf("CalculateTotalAmount: order %d item %d: unparsable price %q for beverage %s, skipping",
				order.ID, item.ItemID, bev.PriceInclVat, item.BeverageNr)
			continue
		}
		total += price
	}
	return total
}

// CreateBillForOrder membuat bill untuk satu order. Idempoten: kalau order
// sudah punya bill, bill yang sama dikembalikan, tidak dibuat duplikat.
func (s *BillService) CreateBillForOrder(orderID uint, split models.BillSplit, vipAccountID *uint) (*models.Bill, error) {
	order, err := s.store.FindOrderByID(orderID)
	if err != nil {
		utils.ErrorLogger.Printf("CreateBillForOrder: order %d not found: %v", orderID, err)
		return nil, fmt.Errorf("%w: id %d", ErrOrderNotFound, orderID)
	}

	if order.BillID != nil {
		bill, err := s.GetBillByID(*order.BillID)
		if err != nil {
			// Order menunjuk bill yang tidak ada: inkonsistensi referensial.
			utils.ErrorLogger.Printf("CreateBillForOrder: order %d references missing bill %d",
				order.ID, *order.BillID)
			return nil, err
		}
		utils.InfoLogger.Printf("CreateBillForOrder: order %d already billed, returning bill #%d", order.ID, bill.ID)
		return bill, nil
	}

	total := s.CalculateTotalAmount(order)

	// Cek saldo VIP: murni informatif. Saldo kurang TIDAK menghalangi
	// pembuatan bill — staff tetap bisa menagih dengan cara lain.
	if vipAccountID != nil {
		vip, err := s.store.FindUserByID(*vipAccountID)
		if err != nil {
			utils.ErrorLogger.Printf("CreateBillForOrder: VIP account %d not found: %v", *vipAccountID, err)
		} else if vip.Balance < total {
			utils.InfoLogger.Printf("CreateBillForOrder: VIP %s balance %s below total %s for order %d",
				vip.Name, utils.FormatCurrencySEK(vip.Balance), utils.FormatCurrencySEK(total), order.ID)
		}
	}

	now := time.Now()
	bill := models.Bill{
		Amount:       total,
		Split:        harmonizeSplit(total, split),
		VipAccountID: vipAccountID,
		ReferenceID:  uuid.NewString(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.SaveBill(&bill); err != nil {
		utils.ErrorLogger.Printf("CreateBillForOrder: failed to save bill for order %d: %v", order.ID, err)
		return nil, err
	}

	order.BillID = &bill.ID
	order.UpdatedAt = now
	if err := s.store.SaveOrder(order); err != nil {
		utils.ErrorLogger.Printf("CreateBillForOrder: failed to link bill %d to order %d: %v",
			bill.ID, order.ID, err)
		return nil, err
	}

	utils.InfoLogger.Printf("Bill #%d (%s) created for order %d", bill.ID, utils.FormatCurrencySEK(bill.Amount), order.ID)
	return &bill, nil
}

// EditBillSplit mengharmonisasi ulang split terhadap total yang sudah
// tersimpan di bill, lalu menyimpannya lagi. Total tidak pernah dihitung
// ulang.
func (s *BillService) EditBillSplit(billID uint, split models.BillSplit) (*models.Bill, error) {
	bill, err := s.GetBillByID(billID)
	if err != nil {
		utils.ErrorLogger.Printf("EditBillSplit: %v", err)
		return nil, err
	}

	bill.Split = harmonizeSplit(bill.Amount, split)
	bill.UpdatedAt = time.Now()
	if err := s.store.SaveBill(bill); err != nil {
		utils.ErrorLogger.Printf("EditBillSplit: failed to save bill %d: %v", bill.ID, err)
		return nil, err
	}
	return bill, nil
}

// CompleteOrder menandai order selesai. Kalau bill punya split, semua bagian
// harus sudah dibayar dulu; kalau belum, tidak ada yang berubah.
func (s *BillService) CompleteOrder(orderID uint) (*models.Order, error) {
	order, err := s.store.FindOrderByID(orderID)
	if err != nil {
		utils.ErrorLogger.Printf("CompleteOrder: order %d not found: %v", orderID, err)
		return nil, fmt.Errorf("%w: id %d", ErrOrderNotFound, orderID)
	}

	if order.BillID == nil {
		utils.ErrorLogger.Printf("CompleteOrder: order %d has no bill", order.ID)
		return nil, fmt.Errorf("%w: order %d has no bill", ErrBillNotFound, order.ID)
	}

	bill, err := s.GetBillByID(*order.BillID)
	if err != nil {
		utils.ErrorLogger.Printf("CompleteOrder: %v", err)
		return nil, err
	}

	if !bill.Settled() {
		utils.ErrorLogger.Printf("CompleteOrder: bill %d of order %d still has unpaid shares", bill.ID, order.ID)
		return nil, fmt.Errorf("%w: bill %d", ErrUnpaidShares, bill.ID)
	}

	order.Done = true
	order.UpdatedAt = time.Now()
	if err := s.store.SaveOrder(order); err != nil {
		utils.ErrorLogger.Printf("CompleteOrder: failed to save order %d: %v", order.ID, err)
		return nil, err
	}

	utils.InfoLogger.Printf("Order #%d completed", order.ID)
	return order, nil
}

// harmonizeSplit melengkapi setiap slot split: amountSEK default total/N
// untuk slot yang belum diisi, paid default false. Split kosong dibiarkan
// kosong (bill tanpa split langsung dianggap lunas).
func harmonizeSplit(total float64, split models.BillSplit) models.BillSplit {
	if len(split) == 0 {
		return nil
	}

	even := total / float64(len(split))
	harmonized := make(models.BillSplit, len(split))
	for slot, share := range split {
		if share.AmountSEK == 0 {
			share.AmountSEK = even
		}
		harmonized[slot] = share
	}
	return harmonized
}

package services

import (
	"errors"
	"time"

	"gamestore/models"

	"gorm.io/gorm"
)

// VoucherStore is the storage contract voucher reservation runs against.
// TryClaim must be a linearizable compare-and-swap on is_used.
type VoucherStore interface {
	// NextUnused returns a candidate unused code for the product, or
	// models.ErrOutOfStock when the pool is exhausted.
	NextUnused(productID uint) (*models.VoucherCode, error)
	// TryClaim consumes the code if and only if it is still unused.
	TryClaim(codeID, orderItemID uint, now time.Time) (bool, error)
	// ClaimedBy lists the codes already linked to an order item.
	ClaimedBy(orderItemID uint) ([]models.VoucherCode, error)
}

// ReserveVoucherCode hands out exactly one unused code per call. Losing the
// claim race for a candidate moves on to the next one; the loop ends when a
// claim sticks or the pool runs dry.
func ReserveVoucherCode(store VoucherStore, productID, orderItemID uint, now time.Time) (*models.VoucherCode, error) {
	for {
		code, err := store.NextUnused(productID)
		if err != nil {
			return nil, err
		}
		ok, err := store.TryClaim(code.ID, orderItemID, now)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if err := code.MarkUsed(orderItemID, now); err != nil {
			return nil, err
		}
		return code, nil
	}
}

// ReserveVoucherCodes tops an order item up to quantity codes. Codes linked
// by an earlier partial attempt count toward the quantity, so a retry only
// reserves the remainder.
func ReserveVoucherCodes(store VoucherStore, productID, orderItemID uint, quantity int, now time.Time) ([]models.VoucherCode, error) {
	claimed, err := store.ClaimedBy(orderItemID)
	if err != nil {
		return nil, err
	}
	for len(claimed) < quantity {
		code, err := ReserveVoucherCode(store, productID, orderItemID, now)
		if err != nil {
			return nil, err
		}
		claimed = append(claimed, *code)
	}
	return claimed, nil
}

// GormVoucherStore backs VoucherStore with the voucher_codes table. The
// claim is a conditional UPDATE guarded by is_used = false; RowsAffected
// tells us whether we won the race.
type GormVoucherStore struct {
	DB *gorm.DB
}

func (s GormVoucherStore) NextUnused(productID uint) (*models.VoucherCode, error) {
	var code models.VoucherCode
	err := s.DB.
		Where("product_id = ? AND is_used = ?", productID, false).
		Order("id").
		First(&code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrOutOfStock
	}
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (s GormVoucherStore) TryClaim(codeID, orderItemID uint, now time.Time) (bool, error) {
	res := s.DB.Model(&models.VoucherCode{}).
		Where("id = ? AND is_used = ?", codeID, false).
		Updates(map[string]any{
			"is_used":       true,
			"used_at":       now,
			"order_item_id": orderItemID,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (s GormVoucherStore) ClaimedBy(orderItemID uint) ([]models.VoucherCode, error) {
	var codes []models.VoucherCode
	err := s.DB.Where("order_item_id = ?", orderItemID).Order("id").Find(&codes).Error
	return codes, err
}

// ImportVoucherCodes inserts a batch of codes for a product.
func ImportVoucherCodes(db *gorm.DB, productID uint, codes []models.VoucherCode) error {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	for i := range codes {
		codes[i].ProductID = productID
	}
	return db.Create(&codes).Error
}

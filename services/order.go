package services

import (
	"errors"
	"time"

	"gamestore/helpers"
	"gamestore/models"
	"gamestore/schemas"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateOrder builds an order with its line items. Product rows are locked
// while finite stock is decremented, so two orders cannot oversell the same
// product. Totals are computed in exact decimal arithmetic.
func CreateOrder(db *gorm.DB, req schemas.OrderCreate) (*models.Order, error) {
	hasGuest := req.GuestEmail != "" || req.GuestPhone != ""
	if req.UserID != nil && hasGuest {
		return nil, models.ErrOrderOwnership
	}
	if req.UserID == nil && !hasGuest {
		return nil, models.ErrOrderOwnership
	}

	var order *models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if req.UserID != nil {
			var user models.User
			if err := tx.First(&user, *req.UserID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.ErrNotFound
				}
				return err
			}
		}

		o := &models.Order{
			OrderNumber:     helpers.OrderNumber(),
			UserID:          req.UserID,
			GuestEmail:      req.GuestEmail,
			GuestPhone:      req.GuestPhone,
			Status:          models.OrderPending,
			Currency:        "IDR",
			GameAccountID:   req.GameAccountID,
			GameAccountInfo: req.GameAccountInfo,
			Notes:           req.Notes,
		}

		for _, item := range req.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.ErrNotFound
				}
				return err
			}
			if !product.IsActive {
				return models.ErrNotFound
			}
			if !product.HasStock(item.Quantity) {
				return models.ErrOutOfStock
			}
			if product.StockQuantity != nil {
				remaining := *product.StockQuantity - item.Quantity
				if err := tx.Model(&product).Update("stock_quantity", remaining).Error; err != nil {
					return err
				}
			}

			o.Items = append(o.Items, models.OrderItem{
				ProductID:  product.ID,
				Quantity:   item.Quantity,
				UnitPrice:  product.Price,
				TotalPrice: models.LineTotal(product.Price, item.Quantity),
			})
		}
		o.TotalAmount = o.ItemsTotal()

		if err := tx.Create(o).Error; err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// TransitionOrder applies one state machine step under a row lock so
// concurrent writers cannot both move the same order.
func TransitionOrder(db *gorm.DB, orderID uint, to models.OrderStatus, now time.Time) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}
		if err := order.TransitionTo(to, now); err != nil {
			return err
		}
		return tx.Model(&order).
			Select("status", "processed_at", "completed_at").
			Updates(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderByNumber loads an order with items and payments.
func GetOrderByNumber(db *gorm.DB, orderNumber string) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Items").Preload("Items.VoucherCodes").Preload("Payments").
		Where("order_number = ?", orderNumber).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListUserOrders returns a user's orders, newest first.
func ListUserOrders(db *gorm.DB, userID uint, limit int) ([]models.Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var orders []models.Order
	err := db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

package services

import (
	"errors"
	"fmt"
	"time"

	"gamestore/models"
	"gamestore/providers"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FulfillOrder delivers every undelivered item of a processing order.
// Voucher items consume codes from the pool; external provider items are
// dispatched through the registered fulfiller and tracked in
// external_provider_orders. When everything is delivered the order moves
// to completed.
func FulfillOrder(db *gorm.DB, store VoucherStore, orderID uint, now time.Time) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Items").Preload("Items.Product").
		First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	if order.Status != models.OrderProcessing {
		return nil, models.ErrInvalidTransition
	}

	for i := range order.Items {
		item := &order.Items[i]
		if item.IsDelivered {
			continue
		}
		switch item.Product.ProductType {
		case models.ProductVoucher:
			if err := deliverVoucherItem(db, store, item, now); err != nil {
				return nil, err
			}
		case models.ProductExternalProvider:
			if err := dispatchExternalItem(db, &order, item, now); err != nil {
				return nil, err
			}
		}
	}

	delivered := true
	for _, item := range order.Items {
		if !item.IsDelivered {
			delivered = false
			break
		}
	}
	if delivered {
		updated, err := TransitionOrder(db, order.ID, models.OrderCompleted, now)
		if err != nil {
			return nil, err
		}
		updated.Items = order.Items
		return updated, nil
	}
	return &order, nil
}

func deliverVoucherItem(db *gorm.DB, store VoucherStore, item *models.OrderItem, now time.Time) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// the row lock serializes concurrent fulfill requests on the item
		var fresh models.OrderItem
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&fresh, item.ID).Error; err != nil {
			return err
		}
		if fresh.IsDelivered {
			*item = fresh
			return nil
		}

		// codes linked by an earlier partial attempt count toward the
		// quantity, so a retry never over-consumes the pool
		codes, err := ReserveVoucherCodes(store, item.ProductID, item.ID, item.Quantity, now)
		if err != nil {
			return err
		}
		list := make([]string, 0, len(codes))
		for _, c := range codes {
			list = append(list, c.Code)
		}

		item.IsDelivered = true
		item.DeliveredAt = &now
		item.DeliveryData = datatypes.JSONMap{"codes": list}
		return tx.Model(item).
			Select("is_delivered", "delivered_at", "delivery_data").
			Updates(item).Error
	})
}

func dispatchExternalItem(db *gorm.DB, order *models.Order, item *models.OrderItem, now time.Time) error {
	var provider models.ExternalProvider
	err := db.Where("provider_type = ? AND is_active = ?", item.Product.ExternalProviderType, true).
		First(&provider).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	if err != nil {
		return err
	}

	fulfiller := providers.Get(provider.ProviderType)
	if fulfiller == nil {
		return fmt.Errorf("no fulfiller registered for provider type %s", provider.ProviderType)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// the row lock plus the one-shot dispatch guard keep concurrent
		// fulfill requests from sending the same top-up twice
		var fresh models.OrderItem
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&fresh, item.ID).Error; err != nil {
			return err
		}
		if err := fresh.BeginDispatch(); err != nil {
			*item = fresh
			return nil
		}

		result, err := fulfiller.Topup(provider, providers.TopupRequest{
			OrderNumber:       order.OrderNumber,
			ExternalProductID: item.Product.ExternalProductID,
			GameAccountID:     order.GameAccountID,
			Quantity:          fresh.Quantity,
		})
		if err != nil {
			return err
		}

		record := models.ExternalProviderOrder{
			OrderID:             order.ID,
			ProviderID:          provider.ID,
			ProviderReferenceID: result.ReferenceID,
			ProviderStatus:      result.Status,
			ProviderMessage:     result.Message,
			RequestData:         datatypes.JSONMap(result.Request),
			ResponseData:        datatypes.JSONMap(result.Response),
			SentAt:              now,
			LastUpdatedAt:       now,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		fresh.ExternalReferenceID = result.ReferenceID
		fresh.ExternalStatus = result.Status
		if result.Status == "success" {
			fresh.IsDelivered = true
			fresh.DeliveredAt = &now
		}
		if err := tx.Model(&fresh).
			Select("external_reference_id", "external_status", "is_delivered", "delivered_at").
			Updates(&fresh).Error; err != nil {
			return err
		}
		*item = fresh
		return nil
	})
}

package catalog

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"
	"gamestore/schemas"
	"gamestore/services"

	"github.com/gofiber/fiber/v2"
)

func ListProducts(c *fiber.Ctx) error {
	q := database.DB.Where("is_active = true").Order("sort_order").Order("name")
	if gameID := c.QueryInt("game_id"); gameID > 0 {
		q = q.Where("game_id = ?", gameID)
	}
	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return helpers.JSONAppError(c, err)
	}
	return helpers.JSONSuccess(c, "Products retrieved", products)
}

func CreateProduct(c *fiber.Ctx) error {
	admin, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var req schemas.ProductCreate
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if err := schemas.Validate(req); err != nil {
		return helpers.JSONAppError(c, err)
	}
	if req.ProductType == models.ProductExternalProvider && req.ExternalProviderType == "" {
		return helpers.JSONError(c, fiber.StatusBadRequest, "EXTERNAL_PROVIDER_TYPE_REQUIRED")
	}

	var game models.Game
	if err := database.DB.First(&game, req.GameID).Error; err != nil {
		return helpers.JSONAppError(c, models.ErrNotFound)
	}

	product := models.Product{
		GameID:               req.GameID,
		Name:                 req.Name,
		Description:          req.Description,
		Price:                req.Price,
		Currency:             "IDR",
		ProductType:          req.ProductType,
		VoucherCodeTemplate:  req.VoucherCodeTemplate,
		ExternalProviderType: req.ExternalProviderType,
		ExternalProductID:    req.ExternalProductID,
		StockQuantity:        req.StockQuantity,
		IsActive:             true,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		return helpers.JSONAppError(c, err)
	}

	productID := product.ID
	if err := services.RecordAdminAction(database.DB, admin.ID, "create", "product", &productID,
		nil, map[string]any{"name": product.Name, "price": product.Price.String(), "product_type": string(product.ProductType)},
		c.IP(), c.Get("User-Agent")); err != nil {
		return helpers.JSONAppError(c, err)
	}

	return helpers.JSONCreated(c, "Product created", product)
}

func UpdateProduct(c *fiber.Ctx) error {
	admin, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var req schemas.ProductUpdate
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if err := schemas.Validate(req); err != nil {
		return helpers.JSONAppError(c, err)
	}

	var product models.Product
	if err := database.DB.First(&product, c.Params("id")).Error; err != nil {
		return helpers.JSONAppError(c, models.ErrNotFound)
	}

	old := map[string]any{
		"name":      product.Name,
		"price":     product.Price.String(),
		"is_active": product.IsActive,
	}
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.StockQuantity != nil {
		updates["stock_quantity"] = *req.StockQuantity
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&product).Updates(updates).Error; err != nil {
			return helpers.JSONAppError(c, err)
		}
	}

	productID := product.ID
	if err := services.RecordAdminAction(database.DB, admin.ID, "update", "product", &productID,
		old, updates, c.IP(), c.Get("User-Agent")); err != nil {
		return helpers.JSONAppError(c, err)
	}

	return helpers.JSONSuccess(c, "Product updated", product)
}

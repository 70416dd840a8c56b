package catalog

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"
	"gamestore/schemas"
	"gamestore/services"

	"github.com/gofiber/fiber/v2"
)

func ListGames(c *fiber.Ctx) error {
	var games []models.Game
	if err := database.DB.
		Where("is_active = true").
		Order("sort_order").Order("name").
		Find(&games).Error; err != nil {
		return helpers.JSONAppError(c, err)
	}
	return helpers.JSONSuccess(c, "Games retrieved", games)
}

func GetGame(c *fiber.Ctx) error {
	var game models.Game
	if err := database.DB.
		Preload("Products", "is_active = true").
		Where("slug = ? AND is_active = true", c.Params("slug")).
		First(&game).Error; err != nil {
		return helpers.JSONAppError(c, models.ErrNotFound)
	}
	return helpers.JSONSuccess(c, "Game retrieved", game)
}

func CreateGame(c *fiber.Ctx) error {
	admin, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var req schemas.GameCreate
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if err := schemas.Validate(req); err != nil {
		return helpers.JSONAppError(c, err)
	}

	var count int64
	database.DB.Model(&models.Game{}).
		Where("name = ? OR slug = ?", req.Name, req.Slug).
		Count(&count)
	if count > 0 {
		return helpers.JSONAppError(c, models.ErrConflict)
	}

	game := models.Game{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		BannerURL:   req.BannerURL,
		IsActive:    true,
	}
	if err := database.DB.Create(&game).Error; err != nil {
		return helpers.JSONAppError(c, err)
	}

	gameID := game.ID
	if err := services.RecordAdminAction(database.DB, admin.ID, "create", "game", &gameID,
		nil, map[string]any{"name": game.Name, "slug": game.Slug},
		c.IP(), c.Get("User-Agent")); err != nil {
		return helpers.JSONAppError(c, err)
	}

	return helpers.JSONCreated(c, "Game created", game)
}

func UpdateGame(c *fiber.Ctx) error {
	admin, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var req schemas.GameUpdate
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if err := schemas.Validate(req); err != nil {
		return helpers.JSONAppError(c, err)
	}

	var game models.Game
	if err := database.DB.First(&game, c.Params("id")).Error; err != nil {
		return helpers.JSONAppError(c, models.ErrNotFound)
	}

	old := map[string]any{"name": game.Name, "description": game.Description, "is_active": game.IsActive}
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.BannerURL != nil {
		updates["banner_url"] = *req.BannerURL
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&game).Updates(updates).Error; err != nil {
			return helpers.JSONAppError(c, err)
		}
	}

	gameID := game.ID
	if err := services.RecordAdminAction(database.DB, admin.ID, "update", "game", &gameID,
		old, updates, c.IP(), c.Get("User-Agent")); err != nil {
		return helpers.JSONAppError(c, err)
	}

	return helpers.JSONSuccess(c, "Game updated", game)
}

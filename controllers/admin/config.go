package admin

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"
	"gamestore/services"

	"github.com/gofiber/fiber/v2"
)

type configRequest struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	DataType    string `json:"data_type"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

func SetConfig(c *fiber.Ctx) error {
	admin, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var req configRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if req.Key == "" {
		return helpers.JSONError(c, fiber.StatusBadRequest, "KEY_REQUIRED")
	}
	switch req.DataType {
	case "", models.ConfigString, models.ConfigInteger, models.ConfigDecimal, models.ConfigBoolean, models.ConfigJSON:
	default:
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_DATA_TYPE")
	}
	if req.DataType == "" {
		req.DataType = models.ConfigString
	}

	var old map[string]any
	if existing, err := services.GetConfig(database.DB, req.Key); err == nil {
		old = map[string]any{"value": existing.Value, "data_type": existing.DataType}
	}

	cfg := models.SystemConfig{
		Key:         req.Key,
		Value:       req.Value,
		DataType:    req.DataType,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}
	if err := services.SetConfig(database.DB, cfg); err != nil {
		return helpers.JSONAppError(c, err)
	}

	if err := services.RecordAdminAction(database.DB, admin.ID, "set_config", "system_config", nil,
		old, map[string]any{"key": req.Key, "value": req.Value},
		c.IP(), c.Get("User-Agent")); err != nil {
		return helpers.JSONAppError(c, err)
	}

	return helpers.JSONSuccess(c, "Config saved", cfg)
}

func GetConfig(c *fiber.Ctx) error {
	cfg, err := services.GetConfig(database.DB, c.Params("key"))
	if err != nil {
		return helpers.JSONAppError(c, err)
	}
	return helpers.JSONSuccess(c, "Config retrieved", cfg)
}

// PublicConfigs serves the is_public subset to the storefront without auth.
func PublicConfigs(c *fiber.Ctx) error {
	cfgs, err := services.ListPublicConfigs(database.DB)
	if err != nil {
		return helpers.JSONAppError(c, err)
	}
	return helpers.JSONSuccess(c, "Configs retrieved", cfgs)
}

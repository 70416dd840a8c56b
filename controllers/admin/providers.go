package admin

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"
	"gamestore/schemas"
	"gamestore/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func ListProviders(c *fiber.Ctx) error {
	var list []models.ExternalProvider
	if err := database.DB.Order("id").Find(&list).Error; err != nil {
		return helpers.JSONAppError(c, err)
	}
	return helpers.JSONSuccess(c, "Providers retrieved", list)
}

func CreateProvider(c *fiber.Ctx) error {
	admin, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var req schemas.ExternalProviderCreate
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if err := schemas.Validate(req); err != nil {
		return helpers.JSONAppError(c, err)
	}

	provider := models.ExternalProvider{
		Name:         req.Name,
		ProviderType: req.ProviderType,
		IsActive:     true,
		APIURL:       req.APIURL,
		APIKey:       req.APIKey,
		APISecret:    req.APISecret,
		Config:       datatypes.JSONMap(req.Config),
	}
	if err := database.DB.Create(&provider).Error; err != nil {
		return helpers.JSONAppError(c, err)
	}

	providerID := provider.ID
	if err := services.RecordAdminAction(database.DB, admin.ID, "create", "external_provider", &providerID,
		nil, map[string]any{"name": provider.Name, "provider_type": string(provider.ProviderType)},
		c.IP(), c.Get("User-Agent")); err != nil {
		return helpers.JSONAppError(c, err)
	}

	return helpers.JSONCreated(c, "Provider created", provider)
}

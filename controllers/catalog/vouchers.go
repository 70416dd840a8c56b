package catalog

import (
	"gamestore/database"
	"gamestore/helpers"
	"gamestore/models"
	"gamestore/schemas"
	"gamestore/services"

	"github.com/gofiber/fiber/v2"
)

type voucherUploadRequest struct {
	ProductID uint                        `json:"product_id"`
	Codes     []schemas.VoucherCodeCreate `json:"codes"`
}

// UploadVoucherCodes loads a batch of single-use codes into a voucher
// product's pool.
func UploadVoucherCodes(c *fiber.Ctx) error {
	admin, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}

	var req voucherUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_JSON")
	}
	if req.ProductID == 0 || len(req.Codes) == 0 {
		return helpers.JSONError(c, fiber.StatusBadRequest, "PRODUCT_ID_AND_CODES_REQUIRED")
	}

	codes := make([]models.VoucherCode, 0, len(req.Codes))
	for _, vc := range req.Codes {
		vc.ProductID = req.ProductID
		if err := schemas.Validate(vc); err != nil {
			return helpers.JSONAppError(c, err)
		}
		codes = append(codes, models.VoucherCode{
			Code:         vc.Code,
			SerialNumber: vc.SerialNumber,
		})
	}

	if err := services.ImportVoucherCodes(database.DB, req.ProductID, codes); err != nil {
		return helpers.JSONAppError(c, err)
	}

	productID := req.ProductID
	if err := services.RecordAdminAction(database.DB, admin.ID, "import_voucher_codes", "product", &productID,
		nil, map[string]any{"count": len(codes)},
		c.IP(), c.Get("User-Agent")); err != nil {
		return helpers.JSONAppError(c, err)
	}

	return helpers.JSONCreated(c, "Voucher codes imported", fiber.Map{
		"product_id": req.ProductID,
		"imported":   len(codes),
	})
}

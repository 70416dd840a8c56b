package routes

import (
	"gamestore/controllers/admin"
	"gamestore/controllers/catalog"
	"gamestore/controllers/order"
	"gamestore/controllers/payment"
	"gamestore/controllers/user"
	"gamestore/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	// public storefront
	app.Post("/auth/register", user.Register)
	app.Post("/auth/login", user.Login)
	app.Get("/games", catalog.ListGames)
	app.Get("/games/:slug", catalog.GetGame)
	app.Get("/products", catalog.ListProducts)
	app.Get("/configs", admin.PublicConfigs)

	// guest checkout
	app.Post("/orders", order.Create)
	app.Get("/orders/:number", order.GetByNumber)
	app.Post("/payments", payment.Create)
	app.Get("/payments/:reference", payment.GetByReference)

	// payment gateway notifications
	app.Post("/payments/callback", payment.Callback)
	app.Post("/wallet/deposits/callback", user.DepositCallback)

	// authenticated users
	userroutes := app.Group("/user", middlewares.UserAuth)
	userroutes.Get("/profile", user.Profile)
	userroutes.Put("/profile", user.UpdateProfile)
	userroutes.Post("/wallet/deposit", user.Deposit)
	userroutes.Get("/wallet/transactions", user.WalletTransactions)
	userroutes.Post("/orders", order.Create)
	userroutes.Get("/orders", order.ListMine)
	userroutes.Get("/orders/:number", order.GetByNumber)
	userroutes.Post("/payments", payment.Create)

	// admin console
	adminroutes := app.Group("/admin", middlewares.UserAuth, middlewares.AdminKey())
	adminroutes.Post("/games", catalog.CreateGame)
	adminroutes.Put("/games/:id", catalog.UpdateGame)
	adminroutes.Post("/products", catalog.CreateProduct)
	adminroutes.Put("/products/:id", catalog.UpdateProduct)
	adminroutes.Post("/vouchers/import", catalog.UploadVoucherCodes)
	adminroutes.Put("/orders/:id", order.Update)
	adminroutes.Post("/orders/:id/fulfill", order.Fulfill)
	adminroutes.Get("/providers", admin.ListProviders)
	adminroutes.Post("/providers", admin.CreateProvider)
	adminroutes.Get("/configs/:key", admin.GetConfig)
	adminroutes.Post("/configs", admin.SetConfig)
	adminroutes.Get("/logs", admin.ListLogs)
}

package routes

import (
	"github.com/gofiber/fiber/v2"

	"fintrack/controllers"
	"fintrack/routes/middlewares"
)

func SetupRouter() *fiber.App {
	app := fiber.New()

	api := app.Group("/api")

	api.Post("/auth/register", controllers.Register)
	api.Post("/auth/login", controllers.Login)
	api.Post("/auth/refresh", controllers.RefreshToken)

	api.Use(middlewares.Authenticate)

	api.Get("/users/me", controllers.GetMe)
	api.Put("/users/me", controllers.UpdateMe)

	api.Get("/categories", controllers.GetCategories)
	api.Post("/categories", controllers.CreateCategory)
	api.Put("/categories/:id", controllers.UpdateCategory)
	api.Delete("/categories/:id", controllers.DeleteCategory)

	api.Get("/transactions", controllers.GetTransactions)
	api.Post("/transactions", controllers.CreateTransaction)
	api.Get("/transactions/summary", controllers.GetSummary)
	api.Get("/transactions/by_category", controllers.GetExpensesByCategory)
	api.Get("/transactions/:id", controllers.GetTransactionByID)
	api.Put("/transactions/:id", controllers.UpdateTransaction)
	api.Delete("/transactions/:id", controllers.DeleteTransaction)

	api.Get("/analytics", controllers.GetAnalytics)

	return app
}

// main.go - Entry point for the e-commerce admin backend

package main

import (
	"go-ecommerce-backend/config"
	"go-ecommerce-backend/database"
	"go-ecommerce-backend/handlers"
	"go-ecommerce-backend/logger"
	"go-ecommerce-backend/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	log := logger.Init()

	if err := database.Connect(cfg.DBPath); err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if cfg.SeedData {
		if err := database.Seed(cfg); err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	api := r.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.GET("/profile", handlers.GetAdminProfile)
			admin.PUT("/profile", handlers.UpdateAdminProfile)
			admin.POST("/login", handlers.AdminLogin)
			admin.POST("/change-password", handlers.ChangeAdminPassword)
			admin.PUT("/settings", handlers.UpdateAdminSettings)
		}

		users := api.Group("/users")
		{
			users.GET("", handlers.ListUsers)
			users.POST("", handlers.CreateUser)
			users.GET("/:id", handlers.GetUser)
			users.PUT("/:id", handlers.UpdateUser)
			users.DELETE("/:id", handlers.DeleteUser)
			users.PUT("/:id/block", handlers.BlockUser)
			users.PUT("/:id/unblock", handlers.UnblockUser)
			users.PUT("/:id/restrict", handlers.RestrictUser)
			users.PUT("/:id/unrestrict", handlers.UnrestrictUser)
			users.POST("/:id/message", handlers.SendAdminMessage)
			users.GET("/:id/cart", handlers.GetUserCart)
			users.POST("/:id/cart/items", handlers.AddCartItem)
			users.DELETE("/:id/cart/items/:itemId", handlers.RemoveCartItem)
		}

		products := api.Group("/products")
		{
			products.GET("", handlers.ListProducts)
			products.POST("", handlers.CreateProduct)
			products.GET("/top-rated", handlers.TopRatedProducts)
			products.GET("/top-selling", handlers.TopSellingProducts)
			products.GET("/:id", handlers.GetProduct)
			products.PUT("/:id", handlers.UpdateProduct)
			products.DELETE("/:id", handlers.DeleteProduct)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", handlers.ListCategories)
			categories.POST("", handlers.CreateCategory)
			categories.DELETE("/:id", handlers.DeleteCategory)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", handlers.ListOrders)
			orders.GET("/statistics", handlers.OrderStatistics)
			orders.PUT("/:id/status", handlers.UpdateOrderStatus)
		}
	}

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// seed.go - First-start fixture data for the dashboard

package database

import (
	"time"

	"go-ecommerce-backend/config"
	"go-ecommerce-backend/models"

	"github.com/shopspring/decimal"
)

const seedAvatarURL = "https://img.freepik.com/premium-vector/avatar-icon002_750950-50.jpg"

// Seed inserts the bootstrap data once: one admin account, four
// categories, four users, twenty products and sixteen sample orders.
// Each block is skipped when its table already has rows, so the admin
// row stays a singleton across restarts.
func Seed(cfg *config.Config) error {
	if err := seedAdmin(cfg); err != nil {
		return err
	}
	if err := seedCategories(); err != nil {
		return err
	}
	if err := seedUsers(); err != nil {
		return err
	}
	if err := seedProducts(); err != nil {
		return err
	}
	return seedOrders()
}

func seedAdmin(cfg *config.Config) error {
	var count int64
	if err := DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := models.Admin{
		Name:      "Admin User",
		Email:     cfg.AdminEmail,
		Phone:     "+212 600000000",
		AvatarURL: seedAvatarURL,
	}
	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		return err
	}
	return DB.Create(&admin).Error
}

func seedCategories() error {
	var count int64
	if err := DB.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Fashion"},
		{Name: "Health & Beauty"},
		{Name: "Food & Drinks"},
		{Name: "Technology"},
	}
	return DB.Create(&categories).Error
}

func seedUsers() error {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []models.User{
		{Name: "Ilyas Kodri", Email: "ilyas.kodri@example.com", PhoneNumber: "+212 600000001", AvatarURL: seedAvatarURL},
		{Name: "Siham Beqali", Email: "siham.beqali@example.com", PhoneNumber: "+212 600000002", AvatarURL: seedAvatarURL},
		{Name: "Oussama Zerhouni", Email: "oussama.zerhouni@example.com", PhoneNumber: "+212 600000003", AvatarURL: seedAvatarURL},
		{Name: "Nawal Laamri", Email: "nawal.laamri@example.com", PhoneNumber: "+212 600000004", AvatarURL: seedAvatarURL},
	}
	return DB.Create(&users).Error
}

// seedProduct builds one product row; prices are fixed-point.
func seedProduct(name, image, description string, price float64, rating float64, categoryID, userID uint) models.Product {
	return models.Product{
		Name:        name,
		ImageURL:    image,
		Description: description,
		Price:       decimal.NewFromFloat(price),
		Rating:      rating,
		CategoryID:  categoryID,
		UserID:      userID,
	}
}

func seedProducts() error {
	var count int64
	if err := DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var categories []models.Category
	if err := DB.Order("id").Find(&categories).Error; err != nil {
		return err
	}
	var users []models.User
	if err := DB.Order("id").Find(&users).Error; err != nil {
		return err
	}
	if len(categories) < 4 || len(users) < 4 {
		return nil // nothing to attach products to
	}

	img := "https://img.freepik.com/free-photo/product_93675-1300.jpg"
	fashion, beauty, food, tech := categories[0].ID, categories[1].ID, categories[2].ID, categories[3].ID
	u := func(i int) uint { return users[i%len(users)].ID }

	products := []models.Product{
		// Fashion
		seedProduct("Classic White T-Shirt", img, "Comfortable cotton t-shirt perfect for everyday wear", 25.99, 4.5, fashion, u(0)),
		seedProduct("Denim Jeans", img, "High-quality denim jeans with perfect fit", 89.99, 4.8, fashion, u(1)),
		seedProduct("Leather Jacket", img, "Stylish leather jacket for a bold look", 199.99, 4.7, fashion, u(2)),
		seedProduct("Running Shoes", img, "Comfortable running shoes for athletes", 129.99, 4.6, fashion, u(3)),
		seedProduct("Summer Dress", img, "Elegant summer dress for special occasions", 79.99, 4.4, fashion, u(0)),
		// Health & Beauty
		seedProduct("Organic Face Cream", img, "Natural face cream for healthy skin", 34.99, 4.3, beauty, u(1)),
		seedProduct("Vitamin C Serum", img, "Brightening vitamin C serum", 49.99, 4.7, beauty, u(2)),
		seedProduct("Hair Dryer", img, "Professional hair dryer with multiple settings", 89.99, 4.5, beauty, u(3)),
		seedProduct("Electric Toothbrush", img, "Advanced electric toothbrush for oral health", 129.99, 4.8, beauty, u(0)),
		seedProduct("Yoga Mat", img, "Premium yoga mat for home workouts", 39.99, 4.6, beauty, u(1)),
		// Food & Drinks
		seedProduct("Organic Coffee Beans", img, "Premium organic coffee beans", 24.99, 4.9, food, u(2)),
		seedProduct("Green Tea", img, "Antioxidant-rich green tea", 19.99, 4.4, food, u(3)),
		seedProduct("Protein Powder", img, "High-quality protein powder for fitness", 59.99, 4.6, food, u(0)),
		seedProduct("Dark Chocolate", img, "Premium dark chocolate with 70% cocoa", 14.99, 4.7, food, u(1)),
		seedProduct("Olive Oil", img, "Extra virgin olive oil for cooking", 29.99, 4.5, food, u(2)),
		// Technology
		seedProduct("Wireless Headphones", img, "High-quality wireless headphones", 199.99, 4.8, tech, u(3)),
		seedProduct("Smartphone", img, "Latest smartphone with advanced features", 899.99, 4.9, tech, u(0)),
		seedProduct("Laptop", img, "Powerful laptop for work and gaming", 1299.99, 4.7, tech, u(1)),
		seedProduct("Smart Watch", img, "Feature-rich smartwatch for fitness tracking", 299.99, 4.6, tech, u(2)),
		seedProduct("Wireless Charger", img, "Fast wireless charging pad", 49.99, 4.4, tech, u(3)),
	}
	return DB.Create(&products).Error
}

func seedOrders() error {
	var count int64
	if err := DB.Model(&models.Order{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var users []models.User
	if err := DB.Order("id").Find(&users).Error; err != nil {
		return err
	}
	if len(users) == 0 {
		return nil
	}

	now := time.Now().UTC()
	var orders []models.Order
	for i := 0; i < 8; i++ {
		orders = append(orders, models.Order{
			UserID:    users[i%len(users)].ID,
			Status:    models.OrderConfirmed,
			OrderDate: now.AddDate(0, 0, -(i + 1)),
		})
	}
	for i := 0; i < 4; i++ {
		orders = append(orders, models.Order{
			UserID:    users[i%len(users)].ID,
			Status:    models.OrderDelivered,
			OrderDate: now.AddDate(0, 0, -(i + 5)),
		})
	}
	for i := 0; i < 4; i++ {
		orders = append(orders, models.Order{
			UserID:    users[i%len(users)].ID,
			Status:    models.OrderNotConfirmed,
			OrderDate: now.AddDate(0, 0, -(i + 10)),
		})
	}
	return DB.Create(&orders).Error
}

// database.go - Handles database connection, migrations and the
// dependency checks behind the restrict/cascade delete rules

package database

import (
	"errors"

	"go-ecommerce-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the shared database handle.
var DB *gorm.DB

// Connect opens the database and runs migrations. SQLite leaves
// foreign keys off unless asked, and the pragma is per-connection, so
// it goes into the DSN.
func Connect(dbPath string) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		return err
	}

	return DB.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.Message{},
	)
}

// UserDependents counts the rows that forbid deleting a user: listed
// products and message history (sent or received). The check runs
// before any row is touched so a refusal never leaves a partial
// delete behind.
func UserDependents(userID uint) (products int64, messages int64, err error) {
	if err = DB.Model(&models.Product{}).Where("user_id = ?", userID).Count(&products).Error; err != nil {
		return
	}
	err = DB.Model(&models.Message{}).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Count(&messages).Error
	return
}

// CategoryProductCount counts products still assigned to a category.
func CategoryProductCount(categoryID uint) (int64, error) {
	var count int64
	err := DB.Model(&models.Product{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// ProductCartReferences counts cart lines referencing a product.
func ProductCartReferences(productID uint) (int64, error) {
	var count int64
	err := DB.Model(&models.CartItem{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

// DeleteUserCascade removes a user together with their cart, cart
// items and orders in a single transaction. Callers must have checked
// UserDependents first; this only performs the cascade half of the
// delete policy.
func DeleteUserCascade(userID uint) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err == nil {
			if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&cart).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// Orders and their join rows to products.
		var orderIDs []uint
		if err := tx.Model(&models.Order{}).Where("user_id = ?", userID).Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Exec("DELETE FROM order_products WHERE order_id IN ?", orderIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", userID).Delete(&models.Order{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.User{}, userID).Error
	})
}

// cart.go - Handles per-user carts and cart lines

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"go-ecommerce-backend/database"
	"go-ecommerce-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CartItemInput is the body for adding a cart line.
type CartItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// GetUserCart returns the user's cart with its items and products. An
// empty cart is reported for users who have none yet.
func GetUserCart(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, ok := findUser(c, id)
	if !ok {
		return
	}

	var cart models.Cart
	err := database.DB.Preload("CartItems.Product").Where("user_id = ?", user.ID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, models.Cart{UserID: user.ID, CartItems: []models.CartItem{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// AddCartItem adds a product to the user's cart, creating the cart on
// first use. An existing line for the same product has its quantity
// increased instead of a duplicate line being added.
func AddCartItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, ok := findUser(c, id)
	if !ok {
		return
	}

	var input CartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	if err := database.DB.First(&product, input.ProductID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product not found"})
		return
	}

	var cart models.Cart
	err := database.DB.Where("user_id = ?", user.ID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: user.ID, CreatedAt: time.Now().UTC()}
		if err := database.DB.Create(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var item models.CartItem
	err = database.DB.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: input.Quantity}
		if err := database.DB.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	} else {
		item.Quantity += input.Quantity
		if err := database.DB.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusCreated, item)
}

// RemoveCartItem deletes one line from the user's cart.
func RemoveCartItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, ok := findUser(c, id)
	if !ok {
		return
	}

	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var cart models.Cart
	if err := database.DB.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}

	var item models.CartItem
	if err := database.DB.Where("id = ? AND cart_id = ?", itemID, cart.ID).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
		return
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// cart_test.go - Tests for the per-user cart endpoints

package handlers

import (
	"encoding/json"
	"os"
	"testing"

	"go-ecommerce-backend/database"
	"go-ecommerce-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartTestDB(t *testing.T) {
	t.Helper()
	_ = os.Remove("test_carts.db")
	require.NoError(t, database.Connect("test_carts.db"))
	t.Cleanup(func() { _ = os.Remove("test_carts.db") })
}

func setupCartRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/users/:id/cart", GetUserCart)
	r.POST("/api/users/:id/cart/items", AddCartItem)
	r.DELETE("/api/users/:id/cart/items/:itemId", RemoveCartItem)
	return r
}

func TestCartLifecycle(t *testing.T) {
	setupCartTestDB(t)
	router := setupCartRouter()
	user := createTestUser(t, "Shopper", "shopper@example.com")
	product := createTestProduct(t, user.ID)

	// A user without a cart gets an empty one back.
	w := doJSON(router, "GET", "/api/users/1/cart", nil)
	assert.Equal(t, 200, w.Code)
	var cart models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart.CartItems)

	// First add creates the cart.
	w = doJSON(router, "POST", "/api/users/1/cart/items", map[string]any{
		"productId": product.ID, "quantity": 2,
	})
	assert.Equal(t, 201, w.Code)

	// Adding the same product again bumps the quantity.
	w = doJSON(router, "POST", "/api/users/1/cart/items", map[string]any{
		"productId": product.ID, "quantity": 1,
	})
	assert.Equal(t, 201, w.Code)

	w = doJSON(router, "GET", "/api/users/1/cart", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.CartItems, 1)
	assert.Equal(t, 3, cart.CartItems[0].Quantity)

	w = doJSON(router, "DELETE", "/api/users/1/cart/items/1", nil)
	assert.Equal(t, 204, w.Code)

	w = doJSON(router, "GET", "/api/users/1/cart", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart.CartItems)
}

func TestAddCartItemValidation(t *testing.T) {
	setupCartTestDB(t)
	router := setupCartRouter()
	user := createTestUser(t, "Shopper", "shopper@example.com")
	product := createTestProduct(t, user.ID)

	// Quantity must be positive.
	w := doJSON(router, "POST", "/api/users/1/cart/items", map[string]any{
		"productId": product.ID, "quantity": 0,
	})
	assert.Equal(t, 400, w.Code)

	// Unknown product is rejected.
	w = doJSON(router, "POST", "/api/users/1/cart/items", map[string]any{
		"productId": 999, "quantity": 1,
	})
	assert.Equal(t, 400, w.Code)

	// Unknown user is a 404.
	w = doJSON(router, "POST", "/api/users/999/cart/items", map[string]any{
		"productId": product.ID, "quantity": 1,
	})
	assert.Equal(t, 404, w.Code)
}

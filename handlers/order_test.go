// order_test.go - Tests for order endpoints and dashboard statistics

package handlers

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"go-ecommerce-backend/database"
	"go-ecommerce-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrderTestDB(t *testing.T) {
	t.Helper()
	_ = os.Remove("test_orders.db")
	require.NoError(t, database.Connect("test_orders.db"))
	t.Cleanup(func() { _ = os.Remove("test_orders.db") })
}

func setupOrderRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/orders", ListOrders)
	r.GET("/api/orders/statistics", OrderStatistics)
	r.PUT("/api/orders/:id/status", UpdateOrderStatus)
	return r
}

func createOrders(t *testing.T, userID uint, status string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		order := models.Order{UserID: userID, Status: status, OrderDate: time.Now().UTC()}
		require.NoError(t, database.DB.Create(&order).Error)
	}
}

func TestOrderStatistics(t *testing.T) {
	setupOrderTestDB(t)
	router := setupOrderRouter()
	user := createTestUser(t, "Buyer", "buyer@example.com")

	createOrders(t, user.ID, models.OrderConfirmed, 8)
	createOrders(t, user.ID, models.OrderDelivered, 4)
	createOrders(t, user.ID, models.OrderNotConfirmed, 4)

	w := doJSON(router, "GET", "/api/orders/statistics", nil)
	assert.Equal(t, 200, w.Code)

	var stats models.OrderStatistics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(16), stats.TotalOrders)
	assert.Equal(t, int64(8), stats.ConfirmedOrders)
	assert.Equal(t, int64(4), stats.DeliveredOrders)
}

func TestUpdateOrderStatus(t *testing.T) {
	setupOrderTestDB(t)
	router := setupOrderRouter()
	user := createTestUser(t, "Buyer", "buyer@example.com")
	createOrders(t, user.ID, models.OrderPending, 1)

	// Unknown status is rejected.
	w := doJSON(router, "PUT", "/api/orders/1/status", map[string]string{"status": "Shipped"})
	assert.Equal(t, 400, w.Code)

	w = doJSON(router, "PUT", "/api/orders/1/status", map[string]string{"status": models.OrderConfirmed})
	assert.Equal(t, 200, w.Code)

	var order models.Order
	require.NoError(t, database.DB.First(&order, 1).Error)
	assert.Equal(t, models.OrderConfirmed, order.Status)

	// Missing order.
	w = doJSON(router, "PUT", "/api/orders/999/status", map[string]string{"status": models.OrderConfirmed})
	assert.Equal(t, 404, w.Code)
}

func TestListOrders(t *testing.T) {
	setupOrderTestDB(t)
	router := setupOrderRouter()
	user := createTestUser(t, "Buyer", "buyer@example.com")
	createOrders(t, user.ID, models.OrderPending, 2)

	w := doJSON(router, "GET", "/api/orders", nil)
	assert.Equal(t, 200, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	require.NotNil(t, orders[0].User)
	assert.Equal(t, "Buyer", orders[0].User.Name)
}

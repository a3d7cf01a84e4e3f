// order.go - Handles order listing, status updates and the dashboard
// statistics aggregate

package handlers

import (
	"errors"
	"net/http"

	"go-ecommerce-backend/database"
	"go-ecommerce-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderStatusInput is the body for status updates.
type OrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// ListOrders returns every order with its user.
func ListOrders(c *gin.Context) {
	var orders []models.Order
	if err := database.DB.Preload("User").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus moves an order to one of the known statuses.
func UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input OrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidOrderStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
		return
	}

	var order models.Order
	if err := database.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	order.Status = input.Status
	if err := database.DB.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

// OrderStatistics returns the aggregate counts shown on the dashboard
// summary cards.
func OrderStatistics(c *gin.Context) {
	var stats models.OrderStatistics
	if err := database.DB.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := database.DB.Model(&models.Order{}).Where("status = ?", models.OrderConfirmed).Count(&stats.ConfirmedOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := database.DB.Model(&models.Order{}).Where("status = ?", models.OrderDelivered).Count(&stats.DeliveredOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

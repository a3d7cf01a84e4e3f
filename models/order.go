// order.go - Defines the Order model and its status set

package models

import "time"

// Order statuses understood by the dashboard.
const (
	OrderPending      = "Pending"
	OrderConfirmed    = "Confirmed"
	OrderDelivered    = "Delivered"
	OrderNotConfirmed = "Not Confirmed"
)

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderDelivered, OrderNotConfirmed:
		return true
	}
	return false
}

// Order belongs to exactly one user and cascades away with them.
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderDate time.Time `json:"orderDate"`
	Status    string    `gorm:"size:50;default:'Pending'" json:"status"`
	UserID    uint      `gorm:"not null" json:"userId"`
	User      *User     `json:"user,omitempty"`
	Products  []Product `gorm:"many2many:order_products" json:"products,omitempty"`
}

// OrderStatistics is the aggregate consumed by the dashboard summary.
type OrderStatistics struct {
	TotalOrders     int64 `json:"totalOrders"`
	ConfirmedOrders int64 `json:"confirmedOrders"`
	DeliveredOrders int64 `json:"deliveredOrders"`
}

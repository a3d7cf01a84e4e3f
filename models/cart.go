// cart.go - Defines the Cart and CartItem models

package models

import "time"

// Cart belongs to exactly one user. The unique index on UserID
// enforces one cart per user; deleting the user deletes the cart and
// its items.
type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"uniqueIndex;not null" json:"userId"`
	CartItems []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"cartItems"`
	CreatedAt time.Time  `json:"createdAt"`
}

// CartItem is one line of a cart. The product reference is
// restrict-delete: a product cannot be removed while a cart line still
// points at it.
type CartItem struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	CartID    uint     `gorm:"index;not null" json:"cartId"`
	ProductID uint     `gorm:"not null" json:"productId"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"` // always > 0
}

// product.go - Defines the Product model

package models

import "github.com/shopspring/decimal"

// Product is a catalog entry listed by a seller. Both the category and
// the seller reference are restrict-delete: neither can be removed
// while products point at them.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(18,4)" json:"price"`
	Description string          `gorm:"size:500" json:"description"`
	ImageURL    string          `gorm:"size:500" json:"imageUrl"`
	Rating      float64         `gorm:"default:0" json:"rating"` // 0.0 - 5.0
	CategoryID  uint            `gorm:"not null" json:"categoryId"`
	Category    *Category       `json:"category,omitempty"`
	UserID      uint            `gorm:"not null" json:"userId"` // seller
	User        *User           `json:"user,omitempty"`
}

// SellScore ranks a product for the simulated top-selling view. There
// is no real sales counter; the dashboard weighs rating against price.
func (p *Product) SellScore() float64 {
	return 0.7*p.Rating + 0.3*(p.Price.InexactFloat64()/1000)
}

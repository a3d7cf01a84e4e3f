// user.go - Defines the User model and its relations

package models

import "time"

// User is a marketplace member. A user optionally sells products, owns
// at most one cart, and places orders. Deleting a user cascades to the
// cart (and its items) and the orders, but is rejected while the user
// still has products or message history.
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Email        string     `gorm:"size:100;unique;not null" json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `gorm:"size:50;default:'Customer'" json:"role"`
	IsBlocked    bool       `gorm:"default:false" json:"isBlocked"`    // permanently blocked
	BlockUntil   *time.Time `json:"blockUntil"`                        // temporarily restricted until
	AvatarURL    string     `gorm:"size:500" json:"avatarUrl"`
	PhoneNumber  string     `gorm:"size:20" json:"phoneNumber"`

	Products         []Product `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT" json:"products,omitempty"`
	Orders           []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	Cart             *Cart     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	SentMessages     []Message `gorm:"foreignKey:SenderID;constraint:OnDelete:RESTRICT" json:"sentMessages,omitempty"`
	ReceivedMessages []Message `gorm:"foreignKey:ReceiverID;constraint:OnDelete:RESTRICT" json:"receivedMessages,omitempty"`
}

// IsRestricted reports whether the user is under a temporary selling
// restriction that has not yet expired.
func (u *User) IsRestricted(now time.Time) bool {
	return u.BlockUntil != nil && u.BlockUntil.After(now)
}

// UserSummary is the projection used by the user list endpoint.
type UserSummary struct {
	Name        string `json:"name"`
	ImageURL    string `json:"imageUrl"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// Summary projects a user row for list views.
func (u *User) Summary() UserSummary {
	return UserSummary{
		Name:        u.Name,
		ImageURL:    u.AvatarURL,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
	}
}

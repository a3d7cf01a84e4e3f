// admin.go - Defines the Admin model (singleton dashboard account)

package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Admin is the single dashboard account. The table is expected to hold
// exactly one row; seeding refuses to insert a second one.
type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;unique;not null" json:"email"`
	Phone        string    `gorm:"size:20" json:"phone"`
	AvatarURL    string    `gorm:"size:500" json:"avatarUrl"`
	PasswordHash string    `gorm:"not null" json:"-"`
	DarkModeAuto bool      `gorm:"default:false" json:"darkModeAuto"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SetPassword stores a bcrypt hash of the given plaintext.
func (a *Admin) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func (a *Admin) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

// Profile is the projection of the admin row returned over the wire.
type Profile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AvatarURL    string `json:"avatarUrl"`
	DarkModeAuto bool   `json:"darkModeAuto"`
}

// Profile projects the admin row, leaving out the password hash and
// timestamps.
func (a *Admin) Profile() Profile {
	return Profile{
		Name:         a.Name,
		Email:        a.Email,
		Phone:        a.Phone,
		AvatarURL:    a.AvatarURL,
		DarkModeAuto: a.DarkModeAuto,
	}
}

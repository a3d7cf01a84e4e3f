// message.go - Defines the Message model

package models

import "time"

// Message is a note sent to a user, either by another user or by the
// admin. Admin origin is tagged explicitly: FromAdmin is true and
// SenderID is nil, so no real user id is overloaded as a sentinel.
// Both user references are restrict-delete to avoid cascade cycles.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	SentAt     time.Time `json:"sentAt"`
	FromAdmin  bool      `gorm:"default:false" json:"fromAdmin"`
	SenderID   *uint     `json:"senderId"` // nil when sent by the admin
	Sender     *User     `json:"sender,omitempty"`
	ReceiverID uint      `gorm:"not null;index" json:"receiverId"`
	Receiver   *User     `json:"receiver,omitempty"`
}

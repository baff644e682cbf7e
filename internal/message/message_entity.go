package message

import (
	"time"

	"github.com/google/uuid"
)

// Message is either a direct note between two users or a broadcast
// addressed to everyone holding a role. Exactly one of RecipientID
// and BroadcastToRole is set.
type Message struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SenderID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"sender_id"`
	RecipientID     *uuid.UUID `gorm:"type:uuid;index" json:"recipient_id,omitempty"`
	IsBroadcast     bool       `gorm:"not null;default:false" json:"is_broadcast"`
	BroadcastToRole *string    `gorm:"size:20;index" json:"broadcast_to_role,omitempty"`
	Subject         string     `gorm:"size:200;not null" json:"subject"`
	Body            string     `gorm:"type:text;not null" json:"body"`
	ReadAt          *time.Time `json:"read_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Message) TableName() string {
	return "messages"
}

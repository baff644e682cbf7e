package message

import "time"

type SendMessageRequest struct {
	RecipientID string `json:"recipient_id" binding:"required,uuid"`
	Subject     string `json:"subject" binding:"required,max=200"`
	Body        string `json:"body" binding:"required"`
}

type BroadcastMessageRequest struct {
	Role    string `json:"role" binding:"required"`
	Subject string `json:"subject" binding:"required,max=200"`
	Body    string `json:"body" binding:"required"`
}

type ListMessagesQuery struct {
	Box      string `form:"box,default=inbox" binding:"omitempty,oneof=inbox sent"`
	Unread   bool   `form:"unread"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

type MessageResponse struct {
	ID              string     `json:"id"`
	SenderID        string     `json:"sender_id"`
	RecipientID     *string    `json:"recipient_id,omitempty"`
	IsBroadcast     bool       `json:"is_broadcast"`
	BroadcastToRole *string    `json:"broadcast_to_role,omitempty"`
	Subject         string     `json:"subject"`
	Body            string     `json:"body"`
	ReadAt          *time.Time `json:"read_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func toResponse(m *Message) MessageResponse {
	resp := MessageResponse{
		ID:              m.ID.String(),
		SenderID:        m.SenderID.String(),
		IsBroadcast:     m.IsBroadcast,
		BroadcastToRole: m.BroadcastToRole,
		Subject:         m.Subject,
		Body:            m.Body,
		ReadAt:          m.ReadAt,
		CreatedAt:       m.CreatedAt,
	}
	if m.RecipientID != nil {
		v := m.RecipientID.String()
		resp.RecipientID = &v
	}
	return resp
}

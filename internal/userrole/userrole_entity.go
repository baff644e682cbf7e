package userrole

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is one held role; a user has one row per role it holds.
type UserRole struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_user_role"`
	Role      string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_user_role"`
	CreatedAt time.Time
}

func (UserRole) TableName() string {
	return "user_roles"
}

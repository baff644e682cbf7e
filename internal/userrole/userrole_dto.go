package userrole

type AssignRoleRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"required"`
}

type RevokeRoleRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"required"`
}

type UserRolesResponse struct {
	UserID      string   `json:"user_id"`
	Roles       []string `json:"roles"`
	PrimaryRole string   `json:"primary_role"`
}

package users

// Error messages constants
const (
	ErrUserNotFound     = "ไม่พบผู้ใช้งาน"
	ErrInvalidRole      = "บทบาทผู้ใช้ไม่ถูกต้อง"
	ErrColorRequired    = "ผู้จัดการทีมต้องระบุสีที่ดูแล"
	ErrColorNotFound    = "ไม่พบสีที่ระบุ"
	ErrCannotDeleteSelf = "ไม่สามารถลบบัญชีของตนเองได้"
)

// CreateUserRequest model for creating a user
type CreateUserRequest struct {
	Username    string  `json:"username" binding:"required,min=3,max=100"`
	DisplayName string  `json:"displayName" binding:"max=150"`
	Password    string  `json:"password" binding:"required,min=8"`
	Role        string  `json:"role" binding:"required,oneof=ADMIN ORGANIZER TEAM_MANAGER USER"`
	ColorID     *string `json:"colorId"`
}

// UpdateUserRequest model for updating a user; empty fields are left untouched
type UpdateUserRequest struct {
	DisplayName *string `json:"displayName" binding:"omitempty,max=150"`
	Password    *string `json:"password" binding:"omitempty,min=8"`
	Role        *string `json:"role" binding:"omitempty,oneof=ADMIN ORGANIZER TEAM_MANAGER USER"`
	ColorID     *string `json:"colorId"`
}

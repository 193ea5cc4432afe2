package dto

// UserDTO represents user account data on the wire
type UserDTO struct {
	UserID    int64  `json:"userId" example:"1"`
	Login     string `json:"login" validate:"required,max=45,login" example:"alan_t"`
	Password  string `json:"password" validate:"required,max=45,password" example:"s3cret#pass"`
	IsActive  *bool  `json:"isActive" validate:"required" example:"true"`
	StudentID *int64 `json:"studentId" validate:"required" example:"1"`
}

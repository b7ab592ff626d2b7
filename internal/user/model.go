package user

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"-"`
	Role        Role       `json:"role"`
	IsApproved  bool       `json:"is_approved"`
	Country     *string    `json:"country,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type UpdateProfileParams struct {
	UserID      int64
	Name        string
	Email       string
	Country     *string
	DateOfBirth *time.Time
	Description *string
	OldPassword string
	NewPassword string
}

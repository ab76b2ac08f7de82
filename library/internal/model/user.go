package model

import "time"

type User struct {
	ID             int64     `json:"id" db:"id"`
	Username       string    `json:"username" db:"username"`
	Email          string    `json:"email" db:"email"`
	HashedPassword string    `json:"-" db:"hashed_password"`
	FullName       *string   `json:"full_name" db:"full_name"`
	Phone          *string   `json:"phone" db:"phone"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	IsAdmin        bool      `json:"is_admin" db:"is_admin"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type ListUsers struct {
	Records []User `json:"records"`
	Paging  `json:",inline"`
}

type UserFilter struct {
	Username string
	FullName string
	Phone    string
	Email    string
	IsActive *bool
	IsAdmin  *bool
}

type UserCreate struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email,max=100"`
	Password string  `json:"password" validate:"required,password"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,phone"`
	IsActive *bool   `json:"is_active"`
	IsAdmin  bool    `json:"is_admin"`
}

// UserUpdate is a partial update, nil fields are left untouched.
type UserUpdate struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email,max=100"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,phone"`
	IsActive *bool   `json:"is_active"`
	IsAdmin  *bool   `json:"is_admin"`
}

// Apply maps the present fields to column assignments.
func (u UserUpdate) Apply() map[string]interface{} {
	set := make(map[string]interface{})
	if u.Username != nil {
		set["username"] = *u.Username
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.FullName != nil {
		set["full_name"] = *u.FullName
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.IsActive != nil {
		set["is_active"] = *u.IsActive
	}
	if u.IsAdmin != nil {
		set["is_admin"] = *u.IsAdmin
	}
	return set
}

// Profile drops the fields a user may not change on their own account.
func (u UserUpdate) Profile() UserUpdate {
	u.IsActive = nil
	u.IsAdmin = nil
	return u
}

type ChangePassword struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,password"`
}

type ResetPassword struct {
	NewPassword string `json:"new_password" validate:"required,password"`
}

type UserInfo struct {
	UserID   int64    `json:"userId"`
	UserName string   `json:"userName"`
	Email    string   `json:"email"`
	FullName *string  `json:"full_name"`
	Phone    *string  `json:"phone"`
	IsActive bool     `json:"is_active"`
	Roles    []string `json:"roles"`
}

type ToggleStatus struct {
	Message  string `json:"message"`
	IsActive bool   `json:"is_active"`
}

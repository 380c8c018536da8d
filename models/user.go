package models

import "time"

// ============================================================================
// DIRECTORY USER (storage representation)
// ============================================================================

type DirectoryUser struct {
	UserID       int64
	UserName     string
	EmailAddress string
	Password     string // stored as received, never exposed
	MobileNo     string
	ProfileImage *string
	Created      time.Time
	Modified     time.Time
}

// ============================================================================
// DIRECTORY USER (wire representation)
// ============================================================================

type UserResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FullName     string  `json:"full_name"`
	MobileNo     string  `json:"mobile_no"`
	ProfileImage *string `json:"profile_image"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
	Role         Role    `json:"role"`
}

type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ============================================================================
// DIRECTORY REQUESTS
// ============================================================================

type CreateUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	MobileNo string `json:"mobile_no"`
}

// UpdateUserRequest carries the id as raw JSON because clients send it
// either as a number or as a string.
type UpdateUserRequest struct {
	ID       any     `json:"id"`
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	MobileNo *string `json:"mobile_no"`
}

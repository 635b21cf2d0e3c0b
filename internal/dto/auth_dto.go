package dto

type LoginRequest struct {
	Password string `json:"password" validate:"required,min=4,max=128"`
}

type LoginResponse struct {
	IsAuthenticated bool `json:"isAuthenticated"`
	// PasswordWasSet is true when this login call set the site password
	// (first login on an open site).
	PasswordWasSet bool `json:"passwordWasSet"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8,max=128"`
}

type AuthCheckResponse struct {
	IsAuthenticated bool `json:"isAuthenticated"`
	PasswordSet     bool `json:"passwordSet"`
}

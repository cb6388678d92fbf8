package admin_login

import "time"

// LoginRequest HTTP request model
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	ExpiresAt time.Time `json:"expiresAt"`
}

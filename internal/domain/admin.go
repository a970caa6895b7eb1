package domain

import "time"

// AdminUser is a CMS administrator. Passwords are stored only as bcrypt
// hashes; the hash never serializes into API responses.
type AdminUser struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AdminCredentials is the login request body. Length rules are deliberately
// loose here: a wrong password of any shape must produce 401, not 400.
type AdminCredentials struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

// AdminSetupRequest provisions the first administrator account.
type AdminSetupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8,max=200"`
}

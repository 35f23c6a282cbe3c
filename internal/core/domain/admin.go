package domain

import "time"

const RoleAdmin = "admin"

// Admin models an authenticated console operator. Distinct from User, which
// is a customer account of the licensed platform.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

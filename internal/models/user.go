package models

type User struct {
	ID        string `json:"user_id"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role,omitempty"` // "customer" ou "admin"
	Provider  string `json:"provider,omitempty"`
}

package dto

// UserOutput is the public projection of a user. It deliberately has no
// password hash field.
type UserOutput struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Success bool        `json:"success"`
	User    *UserOutput `json:"user,omitempty"`
}

package dto

type LoginInput struct {
	Identifier string `json:"email_or_username"`
	Password   string `json:"password"`
	IPAddress  string `json:"-"`
}

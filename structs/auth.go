package structs

// AdminLoginRequest carries the credentials for the admin token exchange.
type AdminLoginRequest struct {
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// AdminLoginResponse returns the signed bearer token.
type AdminLoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"` // seconds
}

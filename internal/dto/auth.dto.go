package dto

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Email       string `json:"email"`
}

type VerifyResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email"`
}

package dto

import "time"

// LoginValues contains the operator's credentials for a single login request
type LoginValues struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginResult is returned to the operator after a successful login
type LoginResult struct {
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName,omitempty"`
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

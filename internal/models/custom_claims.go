package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims carries the application claims embedded in access and
// refresh tokens alongside the registered JWT claims. TokenType
// distinguishes the two so a refresh token can never be replayed as an
// access token.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}

// Identity projects the claims onto the per-request identity attached by
// the authentication middleware.
func (c *CustomClaims) Identity() RequestIdentity {
	return RequestIdentity{
		Subject: c.UserID,
		Email:   c.Email,
		Role:    c.Role,
	}
}

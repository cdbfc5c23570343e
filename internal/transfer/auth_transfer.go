package transfer

import "github.com/golang-jwt/jwt/v5"

const (
	TokenKindSession = "session"
	TokenKindState   = "oauth_state"
)

type CustomClaims struct {
	AccountID string `json:"account_id"`
	Kind      string `json:"kind"`
	jwt.RegisteredClaims
}

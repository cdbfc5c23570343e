package service

import (
	"errors"
	"strings"
)

var (
	ErrMissingFields      = errors.New("required fields are missing")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnknownPlatform    = errors.New("unknown platform")
	ErrInvalidState       = errors.New("invalid oauth state")
	ErrCodeAlreadyUsed    = errors.New("authorization code already used")
	ErrTokenExchange      = errors.New("token exchange failed")
	ErrUnsupportedMedia   = errors.New("unsupported media type")
)

func anyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

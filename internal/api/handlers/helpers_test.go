package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/maheshrc27/agency-cockpit/internal/repository"
	"github.com/maheshrc27/agency-cockpit/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing fields", service.ErrMissingFields, http.StatusBadRequest},
		{"unknown platform", service.ErrUnknownPlatform, http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not found", fmt.Errorf("set tokens: %w", repository.ErrAccountNotFound), http.StatusNotFound},
		{"duplicate", repository.ErrDuplicateUsername, http.StatusConflict},
		{"code reused", service.ErrCodeAlreadyUsed, http.StatusConflict},
		{"unsupported media", service.ErrUnsupportedMedia, http.StatusUnsupportedMediaType},
		{"exchange", service.ErrTokenExchange, http.StatusBadGateway},
		{"store", errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := errorStatus(tt.err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestErrorStatus_HidesExchangeDetail(t *testing.T) {
	err := fmt.Errorf("%w: %v", service.ErrTokenExchange, `oauth2: "invalid_client" app secret abc123`)

	status, message := errorStatus(err)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.NotContains(t, message, "abc123")
	assert.NotContains(t, message, "oauth2")
}

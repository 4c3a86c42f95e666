// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elementadmin/internal/platform/apperr"
)

/*
TestAppError_StatusMapping checks every constructor against its HTTP status.
*/
func TestAppError_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		status int
		code   string
	}{
		{"not_found", apperr.NotFound("User"), http.StatusNotFound, apperr.CodeNotFound},
		{"unauthorized", apperr.Unauthorized("x"), http.StatusUnauthorized, apperr.CodeUnauthorized},
		{"forbidden", apperr.Forbidden("x"), http.StatusForbidden, apperr.CodeForbidden},
		{"conflict", apperr.Conflict("x"), http.StatusConflict, apperr.CodeConflict},
		{"validation", apperr.ValidationError("x"), http.StatusBadRequest, apperr.CodeValidation},
		{"rate_limited", apperr.RateLimited(3), http.StatusTooManyRequests, apperr.CodeRateLimited},
		{"internal", apperr.Internal(errors.New("boom")), http.StatusInternalServerError, apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

/*
TestAppError_WrappedSentinel verifies that sentinels survive fmt.Errorf wrapping.
*/
func TestAppError_WrappedSentinel(t *testing.T) {
	sentinel := apperr.NotFound("Role")
	wrapped := fmt.Errorf("role_service_failed: %w", sentinel)

	// 1. errors.Is matches on identity
	assert.ErrorIs(t, wrapped, sentinel)

	// 2. As and HasCode traverse the chain
	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "Role not found", ae.Message)
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeNotFound))
	assert.False(t, apperr.HasCode(errors.New("plain"), apperr.CodeNotFound))
}

/*
TestAppError_WithCause ensures the sentinel is not mutated.
*/
func TestAppError_WithCause(t *testing.T) {
	sentinel := apperr.Conflict("dup")
	cause := errors.New("unique violation")

	withCause := sentinel.WithCause(cause)

	assert.Nil(t, sentinel.Cause)
	assert.ErrorIs(t, withCause, cause)
	assert.Equal(t, sentinel.Message, withCause.Message)
}

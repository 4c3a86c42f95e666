// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elementadmin/internal/platform/apperr"
	"github.com/taibuivan/elementadmin/internal/platform/dberr"
)

/*
TestWrap classifies driver errors into application errors.
*/
func TestWrap(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"no_rows", pgx.ErrNoRows, http.StatusNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, http.StatusConflict},
		{"foreign_key", &pgconn.PgError{Code: "23503"}, http.StatusConflict},
		{"other_pg", &pgconn.PgError{Code: "42P01"}, http.StatusInternalServerError},
		{"plain", errors.New("conn reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "select_role")

			ae := apperr.As(wrapped)
			require.NotNil(t, ae)
			assert.Equal(t, tt.status, ae.HTTPStatus)
			assert.ErrorIs(t, wrapped, tt.err)
		})
	}

	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, dberr.IsNotFound(pgx.ErrNoRows))
	assert.True(t, dberr.IsNotFound(dberr.Wrap(pgx.ErrNoRows, "x")))
	assert.False(t, dberr.IsNotFound(errors.New("x")))
}

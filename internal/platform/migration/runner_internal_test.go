// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@db:5432/admin":   "pgx5://u:p@db:5432/admin",
		"postgresql://u:p@db:5432/admin": "pgx5://u:p@db:5432/admin",
		"pgx5://u:p@db:5432/admin":       "pgx5://u:p@db:5432/admin",
		"host=db user=u":                 "host=db user=u",
	}

	for input, want := range tests {
		assert.Equal(t, want, convertToPgx5DSN(input), input)
	}
}

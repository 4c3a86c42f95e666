// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuid_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/elementadmin/pkg/uuid"
)

func TestNew(t *testing.T) {
	first, second := uuid.New(), uuid.New()

	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
	assert.True(t, uuid.Valid(first))
}

func TestHex(t *testing.T) {
	id := uuid.Hex()

	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{32}$`), id)
	assert.True(t, uuid.Valid(id))
	assert.False(t, uuid.Valid("not-a-uuid"))
}

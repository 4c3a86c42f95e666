// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides the random identifiers of the admin API.

  - [New]: login tokens, in canonical dashed form.
  - [Hex]: stored file names and file ids, 32 upper-case hex characters.
*/
package uuid

import (
	"strings"

	"github.com/google/uuid"
)

// # Generators

// New generates a random (version 4) UUID string.
func New() string {
	return uuid.NewString()
}

// Hex generates a random UUID as upper-case hex without dashes.
func Hex() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// Valid reports whether s parses as a UUID in any of the accepted forms,
// including the 32-character hex form produced by [Hex].
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

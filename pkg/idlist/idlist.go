// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package idlist converts between delimited id strings ("3,5,7") and ordered
integer sets.

Storage keeps id sets as native integer arrays; the delimited form only
exists on the wire. This package is the single place where that conversion
happens, so malformed input is rejected once, at the boundary.

Parsing rules:

  - Tokens are trimmed; empty tokens ("3,,5", trailing commas) are ignored.
  - The first token that is not a base-10 integer fails the whole parse
    with a [*SyntaxError].
  - Duplicates collapse; the first occurrence decides the position.
*/
package idlist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/taibuivan/elementadmin/internal/platform/apperr"
)

// Separator joins ids in the delimited form.
const Separator = ","

// SyntaxError reports the first token that is not an integer.
type SyntaxError struct {
	Token string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("idlist: invalid id %q", e.Token)
}

// Parse splits s into a de-duplicated, order-preserving id slice.
// The result is never nil.
func Parse(s string) ([]int64, error) {
	ids := make([]int64, 0)
	seen := make(map[int64]struct{})

	for _, raw := range strings.Split(s, Separator) {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}

		id, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Token: token}
		}

		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// Format renders ids in the delimited form.
func Format(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, Separator)
}

// Union merges sets in argument order, keeping the first occurrence of each id.
// The result is never nil.
func Union(sets ...[]int64) []int64 {
	out := make([]int64, 0)
	seen := make(map[int64]struct{})

	for _, set := range sets {
		for _, id := range set {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// List is an id set that decodes from either a JSON array of integers or a
// delimited string, and always encodes as an array.
type List []int64

// MarshalJSON implements [json.Marshaler].
func (l List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]int64(l))
}

// UnmarshalJSON implements [json.Unmarshaler].
//
// A malformed token yields a 400 validation error naming that token.
func (l *List) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*l = List{}
		return nil

	case len(trimmed) > 0 && trimmed[0] == '"':
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		ids, err := Parse(raw)
		if err != nil {
			return invalid(err)
		}
		*l = ids
		return nil

	default:
		var ids []int64
		if err := json.Unmarshal(trimmed, &ids); err != nil {
			return invalid(&SyntaxError{Token: string(trimmed)})
		}
		*l = Union(ids)
		return nil
	}
}

func invalid(err error) error {
	return apperr.ValidationError(err.Error(), apperr.FieldError{
		Field:   "ids",
		Message: err.Error(),
	}).WithCause(err)
}

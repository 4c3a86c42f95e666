// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Types

// UserType tags an account. One value is reserved for the superuser.
type UserType int

const (
	// UserTypeSuperuser sees every menu and permission without role lookup.
	UserTypeSuperuser UserType = 10

	// UserTypeStandard resolves permissions through assigned roles.
	UserTypeStandard UserType = 20
)

// IsSuperuser reports whether the type is the reserved superuser value.
func (t UserType) IsSuperuser() bool {
	return t == UserTypeSuperuser
}

// Valid reports whether t is a known user type.
func (t UserType) Valid() bool {
	switch t {
	case UserTypeSuperuser, UserTypeStandard:
		return true
	default:
		return false
	}
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package user manages accounts: registration, profile edits, passwords and
avatars.

Accounts are never hard-deleted. The password hash never leaves this package
in a response body.
*/
package user

import (
	"time"

	"github.com/taibuivan/elementadmin/internal/platform/sec"
	"github.com/taibuivan/elementadmin/pkg/idlist"
	"github.com/taibuivan/elementadmin/pkg/pagination"
)

// Account status values.
const (
	StatusDisabled = 0
	StatusEnabled  = 1
)

// User is an account record.
type User struct {
	ID           int64        `json:"id"`
	Username     string       `json:"username"`
	Nickname     string       `json:"nickname"`
	PasswordHash string       `json:"-"`
	Avatar       *string      `json:"avatar"`
	UserType     sec.UserType `json:"user_type"`
	Status       int          `json:"status"`
	Roles        idlist.List  `json:"roles"`
	Tags         []string     `json:"tags"`
	DeptID       *int64       `json:"dept_id"`
	Remarks      *string      `json:"remarks"`
	CreatedAt    time.Time    `json:"creation_date"`
	UpdatedAt    time.Time    `json:"updation_date"`
}

// Enabled reports whether the account may log in.
func (u *User) Enabled() bool {
	return u.Status != StatusDisabled
}

// SaveInput is the payload of saveOrUpdate and userRegister.
//
// Password may be blank (keep or default) or echo the stored hash (keep).
type SaveInput struct {
	ID       int64        `json:"id"`
	Username string       `json:"username"`
	Nickname string       `json:"nickname"`
	Password string       `json:"password"`
	Avatar   *string      `json:"avatar"`
	UserType sec.UserType `json:"user_type"`
	Status   *int         `json:"status"`
	Roles    idlist.List  `json:"roles"`
	Tags     []string     `json:"tags"`
	DeptID   *int64       `json:"dept_id"`
	Remarks  *string      `json:"remarks"`
}

// ListQuery is the payload of the list endpoint.
type ListQuery struct {
	pagination.Query
	Username string        `json:"username"`
	Nickname string        `json:"nickname"`
	UserType *sec.UserType `json:"user_type"`
}

// ResetPasswordInput is a self-service password change.
type ResetPasswordInput struct {
	OldPassword   string `json:"old_pwd"`
	NewPassword   string `json:"new_pwd"`
	ReNewPassword string `json:"re_new_pwd"`
}

type IDInput struct {
	ID int64 `json:"id"`
}

type AvatarInput struct {
	ID     int64  `json:"id"`
	Avatar string `json:"avatar"`
}

// Profile is the current user as seen through the login token.
type Profile struct {
	ID        int64       `json:"id"`
	Avatar    *string     `json:"avatar"`
	Username  string      `json:"username"`
	Nickname  string      `json:"nickname"`
	Roles     idlist.List `json:"roles"`
	Tags      []string    `json:"tags"`
	LoginTime time.Time   `json:"login_time"`
}

// Filter narrows a user listing.
type Filter struct {
	Username string
	Nickname string
	UserType *sec.UserType
}

const (
	FieldUsername = "username"
	FieldNickname = "nickname"
	FieldPassword = "password"
	FieldUserType = "user_type"
	FieldNewPwd   = "new_pwd"
	FieldOldPwd   = "old_pwd"
	FieldAvatar   = "avatar"
)

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package loginrecord stores the durable login audit trail.
//
// Rows are written in the background by authentication and are only ever
// read back for listing.
package loginrecord

import (
	"time"

	"github.com/taibuivan/elementadmin/pkg/pagination"
)

// LoginTypePassword marks a username/password login.
const LoginTypePassword = "password"

// Record is one login, closed by a logout time when the user logs out.
type Record struct {
	ID         int64      `json:"id"`
	Token      string     `json:"token"`
	Code       string     `json:"code"` // username
	UserID     int64      `json:"user_id"`
	UserName   string     `json:"user_name"` // nickname
	LoginType  string     `json:"login_type"`
	LoginIP    string     `json:"login_ip"`
	LoginTime  time.Time  `json:"login_time"`
	LogoutTime *time.Time `json:"logout_time"`
}

// ListQuery is the payload of the list endpoint.
type ListQuery struct {
	pagination.Query
	Code     string `json:"code"`
	UserName string `json:"user_name"`
	LoginIP  string `json:"login_ip"`
}

// Filter narrows a listing. Empty fields do not filter.
type Filter struct {
	Code     string
	UserName string
	LoginIP  string
}

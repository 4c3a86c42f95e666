// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// UserLoginRecordTable represents the 'user_login_record' table
type UserLoginRecordTable struct {
	Table        string
	ID           string
	Token        string
	Code         string
	UserID       string
	UserName     string
	LoginType    string
	LoginIP      string
	LoginTime    string
	LogoutTime   string
	EnabledFlag  string
	CreationDate string
}

// UserLoginRecord is the schema definition for user_login_record
var UserLoginRecord = UserLoginRecordTable{
	Table:        "user_login_record",
	ID:           "id",
	Token:        "token",
	Code:         "code",
	UserID:       "user_id",
	UserName:     "user_name",
	LoginType:    "login_type",
	LoginIP:      "login_ip",
	LoginTime:    "login_time",
	LogoutTime:   "logout_time",
	EnabledFlag:  colEnabledFlag,
	CreationDate: colCreationDate,
}

func (t UserLoginRecordTable) Columns() []string {
	return []string{
		t.ID, t.Token, t.Code, t.UserID, t.UserName, t.LoginType, t.LoginIP,
		t.LoginTime, t.LogoutTime,
	}
}

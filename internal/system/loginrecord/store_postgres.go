// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package loginrecord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/taibuivan/elementadmin/internal/platform/database/schema"
	"github.com/taibuivan/elementadmin/internal/platform/dberr"
	"github.com/taibuivan/elementadmin/internal/platform/postgres"
)

var loginRecord = schema.UserLoginRecord

type PostgresRepository struct {
	db postgres.DB
}

func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Create(context context.Context, record *Record) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`,
		loginRecord.Table, loginRecord.Token, loginRecord.Code, loginRecord.UserID, loginRecord.UserName,
		loginRecord.LoginType, loginRecord.LoginIP, loginRecord.LoginTime,
		loginRecord.ID,
	)

	err := repository.db.QueryRow(context, query,
		record.Token, record.Code, record.UserID, record.UserName, record.LoginType, record.LoginIP, record.LoginTime,
	).Scan(&record.ID)
	return dberr.Wrap(err, "create_login_record")
}

func (repository *PostgresRepository) StampLogout(context context.Context, token string, at time.Time) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1 AND %s IS NULL`,
		loginRecord.Table, loginRecord.LogoutTime, loginRecord.Token, loginRecord.LogoutTime,
	)

	_, err := repository.db.Exec(context, query, token, at)
	return dberr.Wrap(err, "stamp_logout")
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Record, int, error) {
	conditions := []string{loginRecord.EnabledFlag}
	args := []any{}

	like := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, "%"+value+"%")
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", column, len(args)))
	}
	like(loginRecord.Code, filter.Code)
	like(loginRecord.UserName, filter.UserName)
	like(loginRecord.LoginIP, filter.LoginIP)
	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`, loginRecord.Table, where)
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_login_records")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s DESC, %s DESC LIMIT $%d OFFSET $%d`,
		schema.Select(loginRecord.Columns()), loginRecord.Table, where,
		loginRecord.LoginTime, loginRecord.ID, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_login_records")
	}
	defer rows.Close()

	records := make([]*Record, 0)
	for rows.Next() {
		record := &Record{}
		var code, userName, loginType, loginIP *string
		var userID *int64
		if err := rows.Scan(
			&record.ID, &record.Token, &code, &userID, &userName, &loginType, &loginIP,
			&record.LoginTime, &record.LogoutTime,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_login_record")
		}
		record.Code, record.UserName = deref(code), deref(userName)
		record.LoginType, record.LoginIP = deref(loginType), deref(loginIP)
		if userID != nil {
			record.UserID = *userID
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_login_records")
	}
	return records, total, nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

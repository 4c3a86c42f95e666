// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/elementadmin/internal/platform/database/schema"
	"github.com/taibuivan/elementadmin/internal/platform/dberr"
	"github.com/taibuivan/elementadmin/internal/platform/postgres"
)

var sysUser = schema.SysUser

type PostgresRepository struct {
	db postgres.DB
}

func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	var roles []int64
	err := row.Scan(
		&user.ID, &user.Username, &user.Nickname, &user.PasswordHash, &user.Avatar,
		&user.UserType, &user.Status, &roles, &user.Tags, &user.DeptID, &user.Remarks,
		&user.CreatedAt, &user.UpdatedAt,
	)
	user.Roles = roles
	if user.Tags == nil {
		user.Tags = []string{}
	}
	return user, err
}

func (repository *PostgresRepository) findOne(context context.Context, action, column string, value any) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s AND %s = $1`,
		schema.Select(sysUser.Columns()), sysUser.Table, sysUser.EnabledFlag, column,
	)

	user, err := scanUser(repository.db.QueryRow(context, query, value))
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, dberr.Wrap(err, action)
	}
	return user, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*User, error) {
	return repository.findOne(context, "get_user", sysUser.ID, id)
}

func (repository *PostgresRepository) FindByUsername(context context.Context, username string) (*User, error) {
	return repository.findOne(context, "get_user_by_username", sysUser.Username, username)
}

func (repository *PostgresRepository) NicknameTaken(context context.Context, nickname string, excludeID int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s AND %s = $1 AND %s <> $2)`,
		sysUser.Table, sysUser.EnabledFlag, sysUser.Nickname, sysUser.ID,
	)

	var taken bool
	if err := repository.db.QueryRow(context, query, nickname, excludeID).Scan(&taken); err != nil {
		return false, dberr.Wrap(err, "check_user_nickname")
	}
	return taken, nil
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*User, int, error) {
	conditions := []string{sysUser.EnabledFlag}
	args := []any{}

	if filter.Username != "" {
		args = append(args, "%"+filter.Username+"%")
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", sysUser.Username, len(args)))
	}
	if filter.Nickname != "" {
		args = append(args, "%"+filter.Nickname+"%")
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", sysUser.Nickname, len(args)))
	}
	if filter.UserType != nil {
		args = append(args, *filter.UserType)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", sysUser.UserType, len(args)))
	}
	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`, sysUser.Table, where)
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_users")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s DESC LIMIT $%d OFFSET $%d`,
		schema.Select(sysUser.Columns()), sysUser.Table, where, sysUser.ID, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	users := make([]*User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user")
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}
	return users, total, nil
}

func (repository *PostgresRepository) Create(context context.Context, user *User, actorID int64) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING %s, %s, %s
	`,
		sysUser.Table, sysUser.Username, sysUser.Nickname, sysUser.Password, sysUser.Avatar,
		sysUser.UserType, sysUser.Status, sysUser.Roles, sysUser.Tags, sysUser.DeptID, sysUser.Remarks,
		sysUser.CreatedBy, sysUser.UpdatedBy,
		sysUser.ID, sysUser.CreationDate, sysUser.UpdationDate,
	)

	err := repository.db.QueryRow(context, query,
		user.Username, user.Nickname, user.PasswordHash, user.Avatar, user.UserType, user.Status,
		[]int64(user.Roles), user.Tags, user.DeptID, user.Remarks, actorID,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresRepository) Update(context context.Context, user *User, actorID int64) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7,
		    %s = $8, %s = $9, %s = $10, %s = $11, %s = $12, %s = NOW()
		WHERE %s = $1 AND %s
		RETURNING %s, %s
	`,
		sysUser.Table, sysUser.Username, sysUser.Nickname, sysUser.Password, sysUser.Avatar,
		sysUser.UserType, sysUser.Status, sysUser.Roles, sysUser.Tags, sysUser.DeptID, sysUser.Remarks,
		sysUser.UpdatedBy, sysUser.UpdationDate,
		sysUser.ID, sysUser.EnabledFlag,
		sysUser.CreationDate, sysUser.UpdationDate,
	)

	err := repository.db.QueryRow(context, query,
		user.ID, user.Username, user.Nickname, user.PasswordHash, user.Avatar, user.UserType, user.Status,
		[]int64(user.Roles), user.Tags, user.DeptID, user.Remarks, actorID,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if dberr.IsNotFound(err) {
		return ErrNotFound
	}
	return dberr.Wrap(err, "update_user")
}

func (repository *PostgresRepository) updateColumn(context context.Context, action string, id int64, column string, value any, actorID int64) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = NOW() WHERE %s = $1 AND %s`,
		sysUser.Table, column, sysUser.UpdatedBy, sysUser.UpdationDate, sysUser.ID, sysUser.EnabledFlag,
	)

	cmd, err := repository.db.Exec(context, query, id, value, actorID)
	if err != nil {
		return dberr.Wrap(err, action)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) UpdatePassword(context context.Context, id int64, hash string, actorID int64) error {
	return repository.updateColumn(context, "update_user_password", id, sysUser.Password, hash, actorID)
}

func (repository *PostgresRepository) UpdateAvatar(context context.Context, id int64, avatar string, actorID int64) error {
	return repository.updateColumn(context, "update_user_avatar", id, sysUser.Avatar, avatar, actorID)
}

func (repository *PostgresRepository) Delete(context context.Context, id int64, actorID int64) error {
	return repository.updateColumn(context, "delete_user", id, sysUser.EnabledFlag, false, actorID)
}

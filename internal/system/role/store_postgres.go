// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package role

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/elementadmin/internal/platform/database/schema"
	"github.com/taibuivan/elementadmin/internal/platform/dberr"
	"github.com/taibuivan/elementadmin/internal/platform/postgres"
)

var sysRoles = schema.SysRoles

type PostgresRepository struct {
	db postgres.DB
}

func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanRole(row pgx.Row) (*Role, error) {
	role := &Role{}
	var menus []int64
	err := row.Scan(
		&role.ID, &role.Name, &role.RoleType, &menus, &role.DeptID, &role.Description,
		&role.Status, &role.CreatedAt, &role.UpdatedAt,
	)
	role.Menus = menus
	return role, err
}

func (repository *PostgresRepository) collect(context context.Context, action, query string, args ...any) ([]*Role, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	roles := make([]*Role, 0)
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_role")
		}
		roles = append(roles, role)
	}
	return roles, dberr.Wrap(rows.Err(), action)
}

func (repository *PostgresRepository) FindByIDs(context context.Context, ids []int64) ([]*Role, error) {
	if len(ids) == 0 {
		return []*Role{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s AND %s = ANY($1) ORDER BY %s`,
		schema.Select(sysRoles.Columns()), sysRoles.Table, sysRoles.EnabledFlag, sysRoles.ID, sysRoles.ID,
	)
	return repository.collect(context, "list_roles_by_ids", query, ids)
}

func (repository *PostgresRepository) List(context context.Context, name string, limit, offset int) ([]*Role, int, error) {
	where := sysRoles.EnabledFlag
	args := []any{}

	if name != "" {
		args = append(args, "%"+name+"%")
		where += fmt.Sprintf(" AND %s ILIKE $1", sysRoles.Name)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`, sysRoles.Table, where)
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_roles")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s DESC LIMIT $%s OFFSET $%s`,
		schema.Select(sysRoles.Columns()), sysRoles.Table, where, sysRoles.ID,
		strconv.Itoa(len(args)+1), strconv.Itoa(len(args)+2),
	)
	args = append(args, limit, offset)

	roles, err := repository.collect(context, "list_roles", query, args...)
	if err != nil {
		return nil, 0, err
	}
	return roles, total, nil
}

func (repository *PostgresRepository) NameTaken(context context.Context, name string, excludeID int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s AND %s = $1 AND %s <> $2)`,
		sysRoles.Table, sysRoles.EnabledFlag, sysRoles.Name, sysRoles.ID,
	)

	var taken bool
	if err := repository.db.QueryRow(context, query, name, excludeID).Scan(&taken); err != nil {
		return false, dberr.Wrap(err, "check_role_name")
	}
	return taken, nil
}

func (repository *PostgresRepository) Create(context context.Context, role *Role, userID int64) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING %s, %s, %s
	`,
		sysRoles.Table, sysRoles.Name, sysRoles.RoleType, sysRoles.Menus, sysRoles.DeptID,
		sysRoles.Description, sysRoles.Status, sysRoles.CreatedBy, sysRoles.UpdatedBy,
		sysRoles.ID, sysRoles.CreationDate, sysRoles.UpdationDate,
	)

	err := repository.db.QueryRow(context, query,
		role.Name, role.RoleType, []int64(role.Menus), role.DeptID, role.Description, role.Status, userID,
	).Scan(&role.ID, &role.CreatedAt, &role.UpdatedAt)
	return dberr.Wrap(err, "create_role")
}

func (repository *PostgresRepository) Update(context context.Context, role *Role, userID int64) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1 AND %s
		RETURNING %s, %s
	`,
		sysRoles.Table, sysRoles.Name, sysRoles.RoleType, sysRoles.Menus, sysRoles.DeptID,
		sysRoles.Description, sysRoles.Status, sysRoles.UpdatedBy, sysRoles.UpdationDate,
		sysRoles.ID, sysRoles.EnabledFlag,
		sysRoles.CreationDate, sysRoles.UpdationDate,
	)

	err := repository.db.QueryRow(context, query,
		role.ID, role.Name, role.RoleType, []int64(role.Menus), role.DeptID, role.Description, role.Status, userID,
	).Scan(&role.CreatedAt, &role.UpdatedAt)
	return dberr.Wrap(err, "update_role")
}

func (repository *PostgresRepository) CountHolders(context context.Context, id int64) (int, error) {
	users := schema.SysUser
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s AND $1 = ANY(%s)`,
		users.Table, users.EnabledFlag, users.Roles,
	)

	var total int
	if err := repository.db.QueryRow(context, query, id).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_role_holders")
	}
	return total, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64, userID int64) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = FALSE, %s = $2, %s = NOW() WHERE %s = $1 AND %s`,
		sysRoles.Table, sysRoles.EnabledFlag, sysRoles.UpdatedBy, sysRoles.UpdationDate,
		sysRoles.ID, sysRoles.EnabledFlag,
	)

	cmd, err := repository.db.Exec(context, query, id, userID)
	if err != nil {
		return dberr.Wrap(err, "delete_role")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

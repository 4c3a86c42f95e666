// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package department

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/elementadmin/internal/platform/database/schema"
	"github.com/taibuivan/elementadmin/internal/platform/dberr"
	"github.com/taibuivan/elementadmin/internal/platform/postgres"
)

var (
	sysDept = schema.SysDepartment
	sysUser = schema.SysUser
)

type PostgresRepository struct {
	db postgres.DB
}

func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanDepartment(row pgx.Row) (*Department, error) {
	dept := &Department{}
	err := row.Scan(
		&dept.ID, &dept.Name, &dept.ParentID, &dept.Sort, &dept.Status, &dept.Description,
		&dept.CreatedAt, &dept.UpdatedAt,
	)
	return dept, err
}

func (repository *PostgresRepository) FindAll(context context.Context) ([]*Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s, %s`,
		schema.Select(sysDept.Columns()), sysDept.Table, sysDept.EnabledFlag, sysDept.Sort, sysDept.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_departments")
	}
	defer rows.Close()

	departments := make([]*Department, 0)
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_department")
		}
		departments = append(departments, dept)
	}
	return departments, dberr.Wrap(rows.Err(), "list_departments")
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s`,
		schema.Select(sysDept.Columns()), sysDept.Table, sysDept.ID, sysDept.EnabledFlag,
	)

	dept, err := scanDepartment(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_department")
	}
	return dept, nil
}

func (repository *PostgresRepository) NameTaken(context context.Context, name string, excludeID int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s AND %s = $1 AND %s <> $2)`,
		sysDept.Table, sysDept.EnabledFlag, sysDept.Name, sysDept.ID,
	)

	var taken bool
	if err := repository.db.QueryRow(context, query, name, excludeID).Scan(&taken); err != nil {
		return false, dberr.Wrap(err, "check_department_name")
	}
	return taken, nil
}

func (repository *PostgresRepository) Create(context context.Context, dept *Department, userID int64) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING %s, %s, %s
	`,
		sysDept.Table, sysDept.Name, sysDept.ParentID, sysDept.Sort, sysDept.Status, sysDept.Description,
		sysDept.CreatedBy, sysDept.UpdatedBy,
		sysDept.ID, sysDept.CreationDate, sysDept.UpdationDate,
	)

	err := repository.db.QueryRow(context, query,
		dept.Name, dept.ParentID, dept.Sort, dept.Status, dept.Description, userID,
	).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
	return dberr.Wrap(err, "create_department")
}

func (repository *PostgresRepository) Update(context context.Context, dept *Department, userID int64) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1 AND %s
		RETURNING %s, %s
	`,
		sysDept.Table, sysDept.Name, sysDept.ParentID, sysDept.Sort, sysDept.Status, sysDept.Description,
		sysDept.UpdatedBy, sysDept.UpdationDate,
		sysDept.ID, sysDept.EnabledFlag,
		sysDept.CreationDate, sysDept.UpdationDate,
	)

	err := repository.db.QueryRow(context, query,
		dept.ID, dept.Name, dept.ParentID, dept.Sort, dept.Status, dept.Description, userID,
	).Scan(&dept.CreatedAt, &dept.UpdatedAt)
	return dberr.Wrap(err, "update_department")
}

func (repository *PostgresRepository) count(context context.Context, action, query string, id int64) (int, error) {
	var total int
	if err := repository.db.QueryRow(context, query, id).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, action)
	}
	return total, nil
}

func (repository *PostgresRepository) CountChildren(context context.Context, id int64) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s AND %s = $1`, sysDept.Table, sysDept.EnabledFlag, sysDept.ParentID)
	return repository.count(context, "count_department_children", query, id)
}

func (repository *PostgresRepository) CountMembers(context context.Context, id int64) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s AND %s = $1`, sysUser.Table, sysUser.EnabledFlag, sysUser.DeptID)
	return repository.count(context, "count_department_members", query, id)
}

func (repository *PostgresRepository) Delete(context context.Context, id int64, userID int64) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = FALSE, %s = $2, %s = NOW() WHERE %s = $1 AND %s`,
		sysDept.Table, sysDept.EnabledFlag, sysDept.UpdatedBy, sysDept.UpdationDate, sysDept.ID, sysDept.EnabledFlag,
	)

	cmd, err := repository.db.Exec(context, query, id, userID)
	if err != nil {
		return dberr.Wrap(err, "delete_department")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

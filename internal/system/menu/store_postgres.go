// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package menu

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/elementadmin/internal/platform/database/schema"
	"github.com/taibuivan/elementadmin/internal/platform/dberr"
	"github.com/taibuivan/elementadmin/internal/platform/postgres"
)

var sysMenu = schema.SysMenu

type PostgresRepository struct {
	db postgres.DB
}

func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func selectMenus(where string) string {
	return fmt.Sprintf(`SELECT %s FROM %s WHERE %s AND %s ORDER BY %s, %s`,
		schema.Select(sysMenu.Columns()), sysMenu.Table, sysMenu.EnabledFlag, where, sysMenu.Sort, sysMenu.ID,
	)
}

func scanMenu(row pgx.Row) (*Menu, error) {
	entry := &Menu{}
	err := row.Scan(
		&entry.ID, &entry.ParentID, &entry.Title, &entry.Name, &entry.Path, &entry.Component,
		&entry.Icon, &entry.Permission, &entry.MenuType, &entry.Sort, &entry.Status,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	return entry, err
}

func (repository *PostgresRepository) collect(context context.Context, action, query string, args ...any) ([]*Menu, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	menus := make([]*Menu, 0)
	for rows.Next() {
		entry, err := scanMenu(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_menu")
		}
		menus = append(menus, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return menus, nil
}

func (repository *PostgresRepository) FindAll(context context.Context) ([]*Menu, error) {
	return repository.collect(context, "list_menus", selectMenus("TRUE"))
}

func (repository *PostgresRepository) FindByIDs(context context.Context, ids []int64) ([]*Menu, error) {
	if len(ids) == 0 {
		return []*Menu{}, nil
	}
	return repository.collect(context, "list_menus_by_ids", selectMenus(sysMenu.ID+" = ANY($1)"), ids)
}

func (repository *PostgresRepository) FindParents(context context.Context, ids []int64) ([]ParentRef, error) {
	refs := make([]ParentRef, 0, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s AND %s = ANY($1) ORDER BY %s, %s`,
		sysMenu.ID, sysMenu.ParentID, sysMenu.Table, sysMenu.EnabledFlag, sysMenu.ID, sysMenu.Sort, sysMenu.ID,
	)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "list_menu_parents")
	}
	defer rows.Close()

	for rows.Next() {
		var ref ParentRef
		if err := rows.Scan(&ref.ID, &ref.ParentID); err != nil {
			return nil, dberr.Wrap(err, "scan_menu_parent")
		}
		refs = append(refs, ref)
	}
	return refs, dberr.Wrap(rows.Err(), "list_menu_parents")
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Menu, error) {
	entry, err := scanMenu(repository.db.QueryRow(context, selectMenus(sysMenu.ID+" = $1"), id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_menu")
	}
	return entry, nil
}

func (repository *PostgresRepository) Create(context context.Context, entry *Menu, userID int64) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING %s, %s, %s
	`,
		sysMenu.Table, sysMenu.ParentID, sysMenu.Title, sysMenu.Name, sysMenu.Path, sysMenu.Component, sysMenu.Icon, sysMenu.Permission,
		sysMenu.MenuType, sysMenu.Sort, sysMenu.Status, sysMenu.CreatedBy, sysMenu.UpdatedBy,
		sysMenu.ID, sysMenu.CreationDate, sysMenu.UpdationDate,
	)

	err := repository.db.QueryRow(context, query,
		entry.ParentID, entry.Title, entry.Name, entry.Path, entry.Component, entry.Icon,
		entry.Permission, entry.MenuType, entry.Sort, entry.Status, userID,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	return dberr.Wrap(err, "create_menu")
}

func (repository *PostgresRepository) Update(context context.Context, entry *Menu, userID int64) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
		    %s = $9, %s = $10, %s = $11, %s = $12, %s = NOW()
		WHERE %s = $1 AND %s
		RETURNING %s, %s
	`,
		sysMenu.Table, sysMenu.ParentID, sysMenu.Title, sysMenu.Name, sysMenu.Path, sysMenu.Component, sysMenu.Icon, sysMenu.Permission,
		sysMenu.MenuType, sysMenu.Sort, sysMenu.Status, sysMenu.UpdatedBy, sysMenu.UpdationDate,
		sysMenu.ID, sysMenu.EnabledFlag,
		sysMenu.CreationDate, sysMenu.UpdationDate,
	)

	err := repository.db.QueryRow(context, query,
		entry.ID, entry.ParentID, entry.Title, entry.Name, entry.Path, entry.Component, entry.Icon,
		entry.Permission, entry.MenuType, entry.Sort, entry.Status, userID,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)
	return dberr.Wrap(err, "update_menu")
}

func (repository *PostgresRepository) CountChildren(context context.Context, id int64) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s AND %s = $1`, sysMenu.Table, sysMenu.EnabledFlag, sysMenu.ParentID)

	var total int
	if err := repository.db.QueryRow(context, query, id).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_menu_children")
	}
	return total, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64, userID int64) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = FALSE, %s = $2, %s = NOW() WHERE %s = $1 AND %s`,
		sysMenu.Table, sysMenu.EnabledFlag, sysMenu.UpdatedBy, sysMenu.UpdationDate, sysMenu.ID, sysMenu.EnabledFlag,
	)

	cmd, err := repository.db.Exec(context, query, id, userID)
	if err != nil {
		return dberr.Wrap(err, "delete_menu")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package file

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/elementadmin/internal/platform/database/schema"
	"github.com/taibuivan/elementadmin/internal/platform/dberr"
	"github.com/taibuivan/elementadmin/internal/platform/postgres"
)

var fileInfo = schema.FileInfo

type PostgresRepository struct {
	db postgres.DB
}

func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanFile(row pgx.Row) (*File, error) {
	f := &File{}
	err := row.Scan(
		&f.ID, &f.Name, &f.FilePath, &f.ExtendName, &f.OriginalName, &f.ContentType,
		&f.FileSize, &f.CreatedBy, &f.CreatedAt,
	)
	return f, err
}

func (repository *PostgresRepository) Create(context context.Context, f *File) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`,
		fileInfo.Table, fileInfo.ID, fileInfo.Name, fileInfo.FilePath, fileInfo.ExtendName,
		fileInfo.OriginalName, fileInfo.ContentType, fileInfo.FileSize, fileInfo.CreatedBy,
		fileInfo.CreationDate,
	)

	err := repository.db.QueryRow(context, query,
		f.ID, f.Name, f.FilePath, f.ExtendName, f.OriginalName, f.ContentType, f.FileSize, f.CreatedBy,
	).Scan(&f.CreatedAt)
	return dberr.Wrap(err, "create_file")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*File, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s`,
		schema.Select(fileInfo.Columns()), fileInfo.Table, fileInfo.ID, fileInfo.EnabledFlag,
	)

	f, err := scanFile(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_file")
	}
	return f, nil
}

func (repository *PostgresRepository) List(context context.Context, name string, limit, offset int) ([]*File, int, error) {
	where := fileInfo.EnabledFlag
	args := []any{}

	if name != "" {
		args = append(args, "%"+name+"%")
		where += fmt.Sprintf(" AND %s ILIKE $1", fileInfo.OriginalName)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s`, fileInfo.Table, where)
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_files")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s DESC, %s LIMIT $%s OFFSET $%s`,
		schema.Select(fileInfo.Columns()), fileInfo.Table, where, fileInfo.CreationDate, fileInfo.ID,
		strconv.Itoa(len(args)+1), strconv.Itoa(len(args)+2),
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_files")
	}
	defer rows.Close()

	files := make([]*File, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_file")
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_files")
	}
	return files, total, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, fileInfo.Table, fileInfo.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_file")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

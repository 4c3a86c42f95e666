// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package project

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/elementadmin/internal/platform/database/schema"
	"github.com/taibuivan/elementadmin/internal/platform/dberr"
	"github.com/taibuivan/elementadmin/internal/platform/postgres"
)

var (
	projectInfo = schema.ProjectInfo
	moduleInfo  = schema.ModuleInfo
	sysUser     = schema.SysUser
)

const (
	aliasProject = "p"
	aliasCreator = "c"
	aliasUpdater = "u"
)

type PostgresRepository struct {
	db postgres.DB
}

func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectProjects joins the creator and updater nicknames onto each row.
func selectProjects(where, suffix string) string {
	return fmt.Sprintf(`
		SELECT %s, %s.%s, %s.%s
		FROM %s %s
		LEFT JOIN %s %s ON %s.%s = %s.%s
		LEFT JOIN %s %s ON %s.%s = %s.%s
		WHERE %s.%s AND %s %s
	`,
		schema.SelectAs(aliasProject, projectInfo.Columns()),
		aliasCreator, sysUser.Nickname, aliasUpdater, sysUser.Nickname,
		projectInfo.Table, aliasProject,
		sysUser.Table, aliasCreator, aliasCreator, sysUser.ID, aliasProject, projectInfo.CreatedBy,
		sysUser.Table, aliasUpdater, aliasUpdater, sysUser.ID, aliasProject, projectInfo.UpdatedBy,
		aliasProject, projectInfo.EnabledFlag, where, suffix,
	)
}

func scanProject(row pgx.Row) (*Project, error) {
	project := &Project{}
	err := row.Scan(
		&project.ID, &project.Name, &project.Description, &project.CreatedBy, &project.UpdatedBy,
		&project.CreatedAt, &project.UpdatedAt, &project.CreatedByName, &project.UpdatedByName,
	)
	return project, err
}

func (repository *PostgresRepository) List(context context.Context, name string, limit, offset int) ([]*Project, int, error) {
	where := "TRUE"
	args := []any{}

	if name != "" {
		args = append(args, "%"+name+"%")
		where = fmt.Sprintf("%s.%s ILIKE $1", aliasProject, projectInfo.Name)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s %s WHERE %s.%s AND %s`,
		projectInfo.Table, aliasProject, aliasProject, projectInfo.EnabledFlag, where,
	)
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_projects")
	}

	suffix := fmt.Sprintf("ORDER BY %s.%s DESC LIMIT $%s OFFSET $%s",
		aliasProject, projectInfo.ID, strconv.Itoa(len(args)+1), strconv.Itoa(len(args)+2),
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, selectProjects(where, suffix), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_projects")
	}
	defer rows.Close()

	projects := make([]*Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_project")
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_projects")
	}
	return projects, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Project, error) {
	where := fmt.Sprintf("%s.%s = $1", aliasProject, projectInfo.ID)

	project, err := scanProject(repository.db.QueryRow(context, selectProjects(where, ""), id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_project")
	}
	return project, nil
}

func (repository *PostgresRepository) NameTaken(context context.Context, name string, excludeID int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s AND %s = $1 AND %s <> $2)`,
		projectInfo.Table, projectInfo.EnabledFlag, projectInfo.Name, projectInfo.ID,
	)

	var taken bool
	if err := repository.db.QueryRow(context, query, name, excludeID).Scan(&taken); err != nil {
		return false, dberr.Wrap(err, "check_project_name")
	}
	return taken, nil
}

func (repository *PostgresRepository) Create(context context.Context, project *Project, userID int64) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $3)
		RETURNING %s, %s, %s, %s, %s
	`,
		projectInfo.Table, projectInfo.Name, projectInfo.Description, projectInfo.CreatedBy, projectInfo.UpdatedBy,
		projectInfo.ID, projectInfo.CreatedBy, projectInfo.UpdatedBy, projectInfo.CreationDate, projectInfo.UpdationDate,
	)

	err := repository.db.QueryRow(context, query, project.Name, project.Description, userID).
		Scan(&project.ID, &project.CreatedBy, &project.UpdatedBy, &project.CreatedAt, &project.UpdatedAt)
	return dberr.Wrap(err, "create_project")
}

func (repository *PostgresRepository) Update(context context.Context, project *Project, userID int64) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1 AND %s
		RETURNING %s, %s, %s, %s
	`,
		projectInfo.Table, projectInfo.Name, projectInfo.Description, projectInfo.UpdatedBy, projectInfo.UpdationDate,
		projectInfo.ID, projectInfo.EnabledFlag,
		projectInfo.CreatedBy, projectInfo.UpdatedBy, projectInfo.CreationDate, projectInfo.UpdationDate,
	)

	err := repository.db.QueryRow(context, query, project.ID, project.Name, project.Description, userID).
		Scan(&project.CreatedBy, &project.UpdatedBy, &project.CreatedAt, &project.UpdatedAt)
	return dberr.Wrap(err, "update_project")
}

func (repository *PostgresRepository) CountModules(context context.Context, id int64) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s AND %s = $1`,
		moduleInfo.Table, moduleInfo.EnabledFlag, moduleInfo.ProjectID,
	)

	var total int
	if err := repository.db.QueryRow(context, query, id).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_project_modules")
	}
	return total, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64, userID int64) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = FALSE, %s = $2, %s = NOW() WHERE %s = $1 AND %s`,
		projectInfo.Table, projectInfo.EnabledFlag, projectInfo.UpdatedBy, projectInfo.UpdationDate,
		projectInfo.ID, projectInfo.EnabledFlag,
	)

	cmd, err := repository.db.Exec(context, query, id, userID)
	if err != nil {
		return dberr.Wrap(err, "delete_project")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package project

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/elementadmin/internal/platform/apperr"
	"github.com/taibuivan/elementadmin/internal/platform/dberr"
	"github.com/taibuivan/elementadmin/internal/platform/validate"
	"github.com/taibuivan/elementadmin/pkg/pagination"
)

var (
	ErrNotFound  = apperr.NotFound("Project")
	ErrNameTaken = apperr.Conflict("Project name already exists")
	ErrInUse     = apperr.Conflict("The project still has modules and cannot be deleted")
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) List(context context.Context, query ListQuery) (pagination.Page[*Project], error) {
	page := query.Query.Normalize()

	projects, total, err := service.repo.List(context, strings.TrimSpace(query.Name), page.Limit(), page.Offset())
	if err != nil {
		return pagination.Page[*Project]{}, err
	}
	return pagination.NewPage(page, total, projects), nil
}

// Save creates the project when ID is zero, otherwise updates it. The caller
// becomes the creator or last editor.
func (service *Service) Save(context context.Context, userID int64, project *Project) error {
	project.Name = strings.TrimSpace(project.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, project.Name).MaxLen(FieldName, project.Name, 100)
	if err := validator.Err(); err != nil {
		return err
	}

	taken, err := service.repo.NameTaken(context, project.Name, project.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrNameTaken
	}

	if project.ID == 0 {
		if err := service.repo.Create(context, project, userID); err != nil {
			return err
		}
		service.logger.Info("project_created", slog.Int64("project_id", project.ID), slog.Int64("user_id", userID))
		return nil
	}

	if err := service.repo.Update(context, project, userID); err != nil {
		if dberr.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	service.logger.Info("project_updated", slog.Int64("project_id", project.ID), slog.Int64("user_id", userID))
	return nil
}

// Delete soft-deletes a project without live modules.
func (service *Service) Delete(context context.Context, userID, id int64) error {
	modules, err := service.repo.CountModules(context, id)
	if err != nil {
		return err
	}
	if modules > 0 {
		return ErrInUse
	}

	if err := service.repo.Delete(context, id, userID); err != nil {
		if dberr.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	service.logger.Warn("project_deleted", slog.Int64("project_id", id), slog.Int64("user_id", userID))
	return nil
}

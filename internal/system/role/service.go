// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package role

import (
	"context"
	"log/slog"

	"github.com/taibuivan/elementadmin/internal/platform/apperr"
	"github.com/taibuivan/elementadmin/internal/platform/dberr"
	"github.com/taibuivan/elementadmin/internal/platform/validate"
	"github.com/taibuivan/elementadmin/pkg/idlist"
	"github.com/taibuivan/elementadmin/pkg/pagination"
)

var (
	ErrNotFound  = apperr.NotFound("Role")
	ErrNameTaken = apperr.Conflict("Role name already exists")
	ErrInUse     = apperr.Conflict("The role is assigned to users and cannot be deleted")
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) List(context context.Context, query ListQuery) (pagination.Page[*Role], error) {
	page := query.Query.Normalize()

	roles, total, err := service.repo.List(context, query.Name, page.Limit(), page.Offset())
	if err != nil {
		return pagination.Page[*Role]{}, err
	}
	return pagination.NewPage(page, total, roles), nil
}

// Save creates the role when ID is zero, otherwise updates it. Names are
// unique among live roles.
func (service *Service) Save(context context.Context, userID int64, role *Role) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, role.Name).MaxLen(FieldName, role.Name, 64)
	if err := validator.Err(); err != nil {
		return err
	}

	taken, err := service.repo.NameTaken(context, role.Name, role.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrNameTaken
	}

	if role.Menus == nil {
		role.Menus = idlist.List{}
	}

	if role.ID == 0 {
		if err := service.repo.Create(context, role, userID); err != nil {
			return err
		}
		service.logger.Info("role_created", slog.Int64("role_id", role.ID), slog.Int("menus", len(role.Menus)))
		return nil
	}

	if err := service.repo.Update(context, role, userID); err != nil {
		if dberr.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	service.logger.Info("role_updated", slog.Int64("role_id", role.ID), slog.Int("menus", len(role.Menus)))
	return nil
}

// Delete soft-deletes a role no live user holds.
func (service *Service) Delete(context context.Context, userID, id int64) error {
	holders, err := service.repo.CountHolders(context, id)
	if err != nil {
		return err
	}
	if holders > 0 {
		return ErrInUse
	}

	if err := service.repo.Delete(context, id, userID); err != nil {
		if dberr.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	service.logger.Warn("role_deleted", slog.Int64("role_id", id), slog.Int64("user_id", userID))
	return nil
}

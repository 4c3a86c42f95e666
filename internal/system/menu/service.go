// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package menu

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/elementadmin/internal/platform/apperr"
	"github.com/taibuivan/elementadmin/internal/platform/dberr"
	"github.com/taibuivan/elementadmin/internal/platform/validate"
)

var (
	ErrNotFound    = apperr.NotFound("Menu")
	ErrHasChildren = apperr.Conflict("The menu has child entries and cannot be deleted")
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

// Tree returns the whole catalog nested under its roots.
func (service *Service) Tree(context context.Context) ([]*Node, error) {
	menus, err := service.repo.FindAll(context)
	if err != nil {
		return nil, err
	}
	return Assemble(menus)
}

/*
Save creates the entry when ID is zero, otherwise updates it.

Rules:
  - Title is required, menu_type must be a known type.
  - Only buttons keep a permission code, and a blank code is stored as null.
  - A non-root parent must exist and cannot be the entry or one of its
    descendants.
*/
func (service *Service) Save(context context.Context, userID int64, entry *Menu) error {
	if entry.MenuType == 0 {
		entry.MenuType = TypePage
	}
	entry.Permission = buttonCode(entry)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, entry.Title).
		MaxLen(FieldTitle, entry.Title, 64).
		Custom(FieldMenuType, !entry.MenuType.Valid(), "Unknown menu type").
		Custom(FieldParentID, entry.ID != 0 && entry.ParentID == entry.ID, "A menu cannot be its own parent")
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.checkParent(context, entry); err != nil {
		return err
	}

	if entry.ID == 0 {
		if err := service.repo.Create(context, entry, userID); err != nil {
			return err
		}
		service.logger.Info("menu_created", slog.Int64("menu_id", entry.ID), slog.Int64("user_id", userID))
		return nil
	}

	if err := service.repo.Update(context, entry, userID); err != nil {
		if dberr.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	service.logger.Info("menu_updated", slog.Int64("menu_id", entry.ID), slog.Int64("user_id", userID))
	return nil
}

// checkParent walks up from the new parent. Reaching the entry itself
// means the move would close a cycle.
func (service *Service) checkParent(context context.Context, entry *Menu) error {
	seen := map[int64]struct{}{}
	for current := entry.ParentID; current != RootID; {
		if entry.ID != 0 && current == entry.ID {
			return validate.RequiredError(FieldParentID, "A menu cannot be moved under its own descendant")
		}
		if _, loop := seen[current]; loop {
			return nil
		}
		seen[current] = struct{}{}

		parent, err := service.repo.FindByID(context, current)
		if err != nil {
			if !dberr.IsNotFound(err) {
				return err
			}
			if current == entry.ParentID {
				return validate.RequiredError(FieldParentID, "Parent menu does not exist")
			}
			return nil
		}
		current = parent.ParentID
	}
	return nil
}

func buttonCode(entry *Menu) *string {
	if entry.MenuType != TypeButton || entry.Permission == nil {
		return nil
	}
	code := strings.TrimSpace(*entry.Permission)
	if code == "" {
		return nil
	}
	return &code
}

// Delete soft-deletes a leaf entry. Entries with live children are refused.
func (service *Service) Delete(context context.Context, userID, id int64) error {
	children, err := service.repo.CountChildren(context, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return ErrHasChildren
	}

	if err := service.repo.Delete(context, id, userID); err != nil {
		if dberr.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	service.logger.Warn("menu_deleted", slog.Int64("menu_id", id), slog.Int64("user_id", userID))
	return nil
}

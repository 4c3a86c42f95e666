// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package department

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/elementadmin/internal/platform/apperr"
	"github.com/taibuivan/elementadmin/internal/platform/dberr"
	"github.com/taibuivan/elementadmin/internal/platform/validate"
)

var (
	ErrNotFound    = apperr.NotFound("Department")
	ErrNameTaken   = apperr.Conflict("A department with this name already exists")
	ErrHasChildren = apperr.Conflict("The department has sub-departments and cannot be deleted")
	ErrHasMembers  = apperr.Conflict("The department still has users and cannot be deleted")
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Tree returns every department nested under its parent.
func (service *Service) Tree(context context.Context) ([]*Node, error) {
	departments, err := service.repo.FindAll(context)
	if err != nil {
		return nil, err
	}
	return Assemble(departments)
}

/*
Save creates the department when ID is zero, otherwise updates it.

Rules:
  - Name is required and unique among live departments.
  - A non-root parent must exist and cannot be the department or one of its
    sub-departments.
*/
func (service *Service) Save(context context.Context, userID int64, dept *Department) error {
	dept.Name = strings.TrimSpace(dept.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, dept.Name).
		MaxLen(FieldName, dept.Name, 64).
		Custom(FieldParentID, dept.ID != 0 && dept.ParentID == dept.ID, "A department cannot be its own parent")
	if err := validator.Err(); err != nil {
		return err
	}

	taken, err := service.repo.NameTaken(context, dept.Name, dept.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrNameTaken
	}

	if err := service.checkParent(context, dept); err != nil {
		return err
	}

	if dept.ID == 0 {
		if err := service.repo.Create(context, dept, userID); err != nil {
			return err
		}
		service.logger.Info("department_created", slog.Int64("department_id", dept.ID), slog.Int64("user_id", userID))
		return nil
	}

	if err := service.repo.Update(context, dept, userID); err != nil {
		if dberr.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	service.logger.Info("department_updated", slog.Int64("department_id", dept.ID), slog.Int64("user_id", userID))
	return nil
}

func (service *Service) checkParent(context context.Context, dept *Department) error {
	seen := map[int64]struct{}{}
	for current := dept.ParentID; current != RootID; {
		if dept.ID != 0 && current == dept.ID {
			return validate.RequiredError(FieldParentID, "A department cannot be moved under its own sub-department")
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
			if current == dept.ParentID {
				return validate.RequiredError(FieldParentID, "Parent department does not exist")
			}
			return nil
		}
		current = parent.ParentID
	}
	return nil
}

// Delete soft-deletes an empty leaf department.
func (service *Service) Delete(context context.Context, userID, id int64) error {
	children, err := service.repo.CountChildren(context, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return ErrHasChildren
	}

	members, err := service.repo.CountMembers(context, id)
	if err != nil {
		return err
	}
	if members > 0 {
		return ErrHasMembers
	}

	if err := service.repo.Delete(context, id, userID); err != nil {
		if dberr.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	service.logger.Warn("department_deleted", slog.Int64("department_id", id), slog.Int64("user_id", userID))
	return nil
}

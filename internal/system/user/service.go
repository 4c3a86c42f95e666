// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package user

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/taibuivan/elementadmin/internal/platform/apperr"
	"github.com/taibuivan/elementadmin/internal/platform/constants"
	"github.com/taibuivan/elementadmin/internal/platform/sec"
	"github.com/taibuivan/elementadmin/internal/platform/validate"
	"github.com/taibuivan/elementadmin/internal/system/session"
	"github.com/taibuivan/elementadmin/pkg/idlist"
	"github.com/taibuivan/elementadmin/pkg/pagination"
)

var (
	ErrUsernameTaken    = apperr.Conflict("Username already registered")
	ErrNicknameTaken    = apperr.Conflict("Nickname already exists")
	ErrPasswordMismatch = validate.RequiredError(FieldNewPwd, "The two new passwords do not match")
	ErrOldPassword      = validate.RequiredError(FieldOldPwd, "The old password is incorrect")
	ErrSamePassword     = validate.RequiredError(FieldNewPwd, "The new password must differ from the old one")
)

// Service implements account management.
type Service struct {
	repo     Repository
	sessions session.Store
	logger   *slog.Logger
}

func NewService(repo Repository, sessions session.Store, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
	}
}

// # Queries

func (service *Service) List(context context.Context, query ListQuery) (pagination.Page[*User], error) {
	page := query.Query.Normalize()
	filter := Filter{
		Username: strings.TrimSpace(query.Username),
		Nickname: strings.TrimSpace(query.Nickname),
		UserType: query.UserType,
	}

	users, total, err := service.repo.List(context, filter, page.Limit(), page.Offset())
	if err != nil {
		return pagination.Page[*User]{}, err
	}
	for _, user := range users {
		normalize(user)
	}
	return pagination.NewPage(page, total, users), nil
}

// Info returns one account. Absent users are a NOT_FOUND error.
func (service *Service) Info(context context.Context, id int64) (*User, error) {
	user, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	return normalize(user), nil
}

/*
Profile returns the account behind a live session, merged with its login time.

Returns:
  - error: session.ErrExpired when the account disappeared after login
*/
func (service *Service) Profile(context context.Context, current *session.Session) (*Profile, error) {
	user, err := service.repo.FindByID(context, current.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, session.ErrExpired
		}
		return nil, err
	}
	normalize(user)

	return &Profile{
		ID:        user.ID,
		Avatar:    user.Avatar,
		Username:  user.Username,
		Nickname:  user.Nickname,
		Roles:     user.Roles,
		Tags:      user.Tags,
		LoginTime: current.LoginTime,
	}, nil
}

// # Commands

// Register creates an account with a unique username.
func (service *Service) Register(context context.Context, actorID int64, input *SaveInput) (*User, error) {
	input.ID = 0
	return service.create(context, actorID, input)
}

/*
Save creates (ID zero) or updates an account.

Rules:
  - Nicknames are unique among live users.
  - Create: a blank password falls back to the default password.
  - Update: a blank password, or one that echoes a bcrypt hash, keeps the
    stored hash; anything else is hashed as the new password.
  - When the caller edits its own account, its session snapshot is refreshed
    so that roles and names take effect without a new login.
*/
func (service *Service) Save(context context.Context, caller *session.Session, input *SaveInput) (*User, error) {
	if input.ID == 0 {
		return service.create(context, caller.ID, input)
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := service.repo.FindByID(context, input.ID)
	if err != nil {
		return nil, err
	}

	if existing.Nickname != input.Nickname {
		taken, err := service.repo.NicknameTaken(context, input.Nickname, input.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrNicknameTaken
		}
	}

	passwordHash := existing.PasswordHash
	if password := strings.TrimSpace(input.Password); password != "" && !sec.IsHash(password) {
		if passwordHash, err = sec.HashPassword(input.Password); err != nil {
			return nil, apperr.Internal(err)
		}
	}

	updated := fromInput(input)
	updated.PasswordHash = passwordHash
	if input.Status == nil {
		updated.Status = existing.Status
	}

	if err := service.repo.Update(context, updated, caller.ID); err != nil {
		return nil, err
	}
	service.logger.Info("user_updated", slog.Int64("user_id", updated.ID), slog.Int64("actor_id", caller.ID))

	if caller.ID == updated.ID {
		service.refreshSession(context, caller, updated)
	}
	return updated, nil
}

func (service *Service) create(context context.Context, actorID int64, input *SaveInput) (*User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if _, err := service.repo.FindByUsername(context, input.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	taken, err := service.repo.NicknameTaken(context, input.Nickname, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNicknameTaken
	}

	password := input.Password
	if strings.TrimSpace(password) == "" {
		password = constants.DefaultPassword
	}

	created := fromInput(input)
	if created.PasswordHash, err = sec.HashPassword(password); err != nil {
		return nil, apperr.Internal(err)
	}

	if err := service.repo.Create(context, created, actorID); err != nil {
		return nil, err
	}

	service.logger.Info("user_created", slog.Int64("user_id", created.ID), slog.String("username", created.Username))
	return created, nil
}

// ResetPassword changes the caller's own password.
func (service *Service) ResetPassword(context context.Context, userID int64, input ResetPasswordInput) error {
	validator := &validate.Validator{}
	validator.Required(FieldOldPwd, input.OldPassword).Required(FieldNewPwd, input.NewPassword)
	if err := validator.Err(); err != nil {
		return err
	}
	if input.NewPassword != input.ReNewPassword {
		return ErrPasswordMismatch
	}

	user, err := service.repo.FindByID(context, userID)
	if err != nil {
		return err
	}
	if !sec.CheckPasswordHash(input.OldPassword, user.PasswordHash) {
		return ErrOldPassword
	}
	if sec.CheckPasswordHash(input.NewPassword, user.PasswordHash) {
		return ErrSamePassword
	}

	hash, err := sec.HashPassword(input.NewPassword)
	if err != nil {
		return apperr.Internal(err)
	}
	if err := service.repo.UpdatePassword(context, userID, hash, userID); err != nil {
		return err
	}

	service.logger.Info("user_password_changed", slog.Int64("user_id", userID))
	return nil
}

// AdminResetPassword sets the target's password back to the default.
func (service *Service) AdminResetPassword(context context.Context, actorID, targetID int64) error {
	hash, err := sec.HashPassword(constants.DefaultPassword)
	if err != nil {
		return apperr.Internal(err)
	}
	if err := service.repo.UpdatePassword(context, targetID, hash, actorID); err != nil {
		return err
	}

	service.logger.Warn("user_password_reset", slog.Int64("user_id", targetID), slog.Int64("actor_id", actorID))
	return nil
}

func (service *Service) UpdateAvatar(context context.Context, actorID int64, input AvatarInput) error {
	validator := &validate.Validator{}
	validator.PositiveID("id", input.ID).MaxLen(FieldAvatar, input.Avatar, 512)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateAvatar(context, input.ID, input.Avatar, actorID); err != nil {
		return err
	}
	service.logger.Info("user_avatar_updated", slog.Int64("user_id", input.ID))
	return nil
}

// Delete soft-deletes an account.
func (service *Service) Delete(context context.Context, actorID, id int64) error {
	if err := service.repo.Delete(context, id, actorID); err != nil {
		return err
	}
	service.logger.Warn("user_deleted", slog.Int64("user_id", id), slog.Int64("actor_id", actorID))
	return nil
}

// # Helpers

// refreshSession rewrites the caller's cached snapshot. Failures are logged:
// the durable update already succeeded.
func (service *Service) refreshSession(context context.Context, caller *session.Session, user *User) {
	refreshed := &session.Session{
		Token:     caller.Token,
		ID:        user.ID,
		LoginTime: caller.LoginTime,
		Username:  user.Username,
		Nickname:  user.Nickname,
		Roles:     user.Roles,
		Tags:      user.Tags,
	}

	if err := service.sessions.Save(context, refreshed, constants.SessionTTL); err != nil {
		service.logger.Error("session_refresh_failed", slog.Int64("user_id", user.ID), slog.Any("error", err))
	}
}

func validateInput(input *SaveInput) error {
	input.Username = strings.TrimSpace(input.Username)
	input.Nickname = strings.TrimSpace(input.Nickname)
	if input.UserType == 0 {
		input.UserType = sec.UserTypeStandard
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MaxLen(FieldUsername, input.Username, 64).
		Required(FieldNickname, input.Nickname).
		MaxLen(FieldNickname, input.Nickname, 64).
		Custom(FieldUserType, !input.UserType.Valid(), "Unknown user type")
	return validator.Err()
}

func fromInput(input *SaveInput) *User {
	status := StatusEnabled
	if input.Status != nil {
		status = *input.Status
	}

	return normalize(&User{
		ID:       input.ID,
		Username: strings.TrimSpace(input.Username),
		Nickname: strings.TrimSpace(input.Nickname),
		Avatar:   input.Avatar,
		UserType: input.UserType,
		Status:   status,
		Roles:    input.Roles,
		Tags:     input.Tags,
		DeptID:   input.DeptID,
		Remarks:  input.Remarks,
	})
}

// normalize replaces nil sets so they serialise and store as empty.
func normalize(user *User) *User {
	if user.Roles == nil {
		user.Roles = idlist.List{}
	}
	if user.Tags == nil {
		user.Tags = []string{}
	}
	return user
}

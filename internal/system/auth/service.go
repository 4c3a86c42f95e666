// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	stdctx "context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/taibuivan/elementadmin/internal/platform/constants"
	"github.com/taibuivan/elementadmin/internal/platform/ctxutil"
	"github.com/taibuivan/elementadmin/internal/platform/sec"
	"github.com/taibuivan/elementadmin/internal/system/loginrecord"
	"github.com/taibuivan/elementadmin/internal/system/session"
	"github.com/taibuivan/elementadmin/internal/system/user"
	"github.com/taibuivan/elementadmin/pkg/uuid"
)

type Service struct {
	users    UserFinder
	sessions session.Store
	records  Recorder
	observer Observer
	logger   *slog.Logger

	now      func() time.Time
	newToken func() string

	// audits tracks the background login-record writes.
	audits sync.WaitGroup
}

// NewService wires the login flow. A nil observer disables metrics.
func NewService(users UserFinder, sessions session.Store, records Recorder, observer Observer, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		records:  records,
		observer: observer,
		logger:   logger,
		now:      time.Now,
		newToken: uuid.New,
	}
}

/*
Login verifies the credentials and opens a session.

Description: Unknown users and wrong passwords share one generic error. The
disabled check runs after the password check, so the account state is only
revealed to someone who knows the password.

Parameters:
  - context: context.Context
  - input: LoginInput
  - clientIP: string (recorded on the login record)

Returns:
  - *session.Session: The cached snapshot, token included
  - error: ErrCredentialsRequired, ErrInvalidCredentials, ErrDisabled or store errors
*/
func (service *Service) Login(context stdctx.Context, input LoginInput, clientIP string) (*session.Session, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, ErrCredentialsRequired
	}

	account, err := service.users.FindByUsername(context, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			service.observe(ResultInvalid)
			return nil, ErrInvalidCredentials
		}
		service.observe(ResultError)
		return nil, err
	}

	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		service.observe(ResultInvalid)
		return nil, ErrInvalidCredentials
	}
	if !account.Enabled() {
		service.observe(ResultDisabled)
		return nil, ErrDisabled
	}

	current := &session.Session{
		Token:     service.newToken(),
		ID:        account.ID,
		LoginTime: service.now().UTC(),
		Username:  account.Username,
		Nickname:  account.Nickname,
		Roles:     nonNilIDs(account.Roles),
		Tags:      nonNilTags(account.Tags),
	}

	if err := service.sessions.Save(context, current, constants.SessionTTL); err != nil {
		service.observe(ResultError)
		return nil, err
	}

	service.observe(ResultSuccess)
	service.logger.Info("user_logged_in", slog.Int64("user_id", account.ID), slog.String("ip", clientIP))

	record := &loginrecord.Record{
		Token:     current.Token,
		Code:      current.Username,
		UserID:    current.ID,
		UserName:  current.Nickname,
		LoginType: loginrecord.LoginTypePassword,
		LoginIP:   clientIP,
		LoginTime: current.LoginTime,
	}
	service.audit(context, "login", func(ctx stdctx.Context) error {
		return service.records.Create(ctx, record)
	})

	return current, nil
}

/*
Logout closes the session behind token.

It never fails: an unknown token is a no-op, and cache or audit errors are
logged.
*/
func (service *Service) Logout(context stdctx.Context, token string) {
	if token == "" {
		return
	}

	logger := ctxutil.GetLogger(context)
	current, err := service.sessions.Get(context, token)
	if err != nil {
		if !errors.Is(err, session.ErrExpired) {
			logger.ErrorContext(context, "logout_session_lookup_failed", slog.Any("error", err))
		}
		return
	}

	if err := service.sessions.Delete(context, token); err != nil {
		logger.ErrorContext(context, "logout_session_delete_failed", slog.Any("error", err))
		return
	}
	logger.Info("user_logged_out", slog.Int64("user_id", current.ID))

	at := service.now().UTC()
	service.audit(context, "logout", func(ctx stdctx.Context) error {
		return service.records.StampLogout(ctx, token, at)
	})
}

// CheckToken reports who owns a live token.
func (service *Service) CheckToken(context stdctx.Context, token string) (*TokenInfo, error) {
	current, err := service.sessions.Get(context, token)
	if err != nil {
		return nil, err
	}
	return &TokenInfo{ID: current.ID, Username: current.Username}, nil
}

// Wait blocks until every background audit write has finished.
func (service *Service) Wait() {
	service.audits.Wait()
}

// # Background audit

// audit runs write detached from the request, bounded by AuditWriteTimeout.
func (service *Service) audit(parent stdctx.Context, kind string, write func(stdctx.Context) error) {
	logger := ctxutil.GetLogger(parent)
	detached := stdctx.WithoutCancel(parent)

	service.audits.Add(1)
	go func() {
		defer service.audits.Done()

		ctx, cancel := stdctx.WithTimeout(detached, constants.AuditWriteTimeout)
		defer cancel()

		if err := write(ctx); err != nil {
			if service.observer != nil {
				service.observer.ObserveAuditFailure(kind)
			}
			logger.Error("login_record_write_failed", slog.String("kind", kind), slog.Any("error", err))
		}
	}()
}

func (service *Service) observe(result string) {
	if service.observer != nil {
		service.observer.ObserveLogin(result)
	}
}

func nonNilIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/elementadmin/internal/platform/apperr"
	"github.com/taibuivan/elementadmin/internal/platform/constants"
	"github.com/taibuivan/elementadmin/internal/platform/ctxutil"
	"github.com/taibuivan/elementadmin/internal/platform/respond"
	"github.com/taibuivan/elementadmin/internal/system/session"
)

// SessionResolver looks up the live session for a login token.
type SessionResolver interface {
	Get(context context.Context, token string) (*session.Session, error)
}

// sessionTracker lets the outer logger see the user resolved by [Authenticate].
type sessionTracker struct {
	userID int64
}

type trackerKey struct{}

func withTracker(ctx context.Context, tracker *sessionTracker) context.Context {
	return context.WithValue(ctx, trackerKey{}, tracker)
}

func trackerFrom(ctx context.Context) *sessionTracker {
	tracker, _ := ctx.Value(trackerKey{}).(*sessionTracker)
	return tracker
}

// Token extracts the login token from the "token" header, falling back to
// "Authorization: Bearer <token>".
func Token(request *http.Request) string {
	if token := strings.TrimSpace(request.Header.Get(constants.HeaderToken)); token != "" {
		return token
	}

	parts := strings.Fields(request.Header.Get(constants.HeaderAuthorization))
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

// Authenticate resolves the login token into a [*session.Session].
//
// # Flow
//  1. No token: the request proceeds as anonymous.
//  2. Unknown or expired token: the request also proceeds as anonymous, so
//     that public routes keep working; [RequireAuth] rejects it where needed.
//  3. Cache failure: 503, because the identity cannot be decided.
//  4. Otherwise the session is injected into the request context.
func Authenticate(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := Token(request)
			if token == "" {
				next.ServeHTTP(writer, request)
				return
			}

			current, err := resolver.Get(request.Context(), token)
			if err != nil {
				if errors.Is(err, session.ErrExpired) {
					next.ServeHTTP(writer, request)
					return
				}
				ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "session_lookup_failed",
					slog.Any("error", err))
				respond.Error(writer, request, apperr.ServiceUnavailable("Session store unavailable"))
				return
			}

			if tracker := trackerFrom(request.Context()); tracker != nil {
				tracker.userID = current.ID
			}

			ctx := ctxutil.WithSession(request.Context(), current)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that carry no live session.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetSession(request.Context()) == nil {
			respond.Error(writer, request, session.ErrExpired)
			return
		}
		next.ServeHTTP(writer, request)
	})
}

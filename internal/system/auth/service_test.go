// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elementadmin/internal/platform/apperr"
	"github.com/taibuivan/elementadmin/internal/platform/constants"
	"github.com/taibuivan/elementadmin/internal/platform/sec"
	"github.com/taibuivan/elementadmin/internal/system/auth"
	"github.com/taibuivan/elementadmin/internal/system/loginrecord"
	"github.com/taibuivan/elementadmin/internal/system/session"
	"github.com/taibuivan/elementadmin/internal/system/user"
	"github.com/taibuivan/elementadmin/pkg/idlist"
)

// # Fakes

type fakeUsers map[string]*user.User

func (f fakeUsers) FindByUsername(_ context.Context, username string) (*user.User, error) {
	if found, ok := f[username]; ok {
		return found, nil
	}
	return nil, user.ErrNotFound
}

type fakeRecorder struct {
	mu        sync.Mutex
	created   []*loginrecord.Record
	loggedOut []string
	err       error
}

func (f *fakeRecorder) Create(_ context.Context, record *loginrecord.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, record)
	return nil
}

func (f *fakeRecorder) StampLogout(_ context.Context, token string, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

type fakeObserver struct {
	mu       sync.Mutex
	logins   []string
	failures []string
}

func (f *fakeObserver) ObserveLogin(result string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins = append(f.logins, result)
}

func (f *fakeObserver) ObserveAuditFailure(kind string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, kind)
}

type fixture struct {
	service  *auth.Service
	sessions *session.RedisStore
	redis    *miniredis.Miniredis
	records  *fakeRecorder
	observer *fakeObserver
}

func setup(t *testing.T) *fixture {
	t.Helper()

	hash, err := sec.HashPassword("secret")
	require.NoError(t, err)

	users := fakeUsers{
		"admin": {ID: 1, Username: "admin", Nickname: "Admin", PasswordHash: hash, Status: user.StatusEnabled,
			Roles: idlist.List{2, 3}, Tags: []string{"ops"}},
		"frozen": {ID: 2, Username: "frozen", Nickname: "Frozen", PasswordHash: hash, Status: user.StatusDisabled},
	}

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	f := &fixture{
		sessions: session.NewRedisStore(client),
		redis:    server,
		records:  &fakeRecorder{},
		observer: &fakeObserver{},
	}
	f.service = auth.NewService(users, f.sessions, f.records, f.observer, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

// # Tests

/*
TestLogin_Success caches the snapshot for a day and records the login in the
background.
*/
func TestLogin_Success(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	// 1. Login
	current, err := f.service.Login(ctx, auth.LoginInput{Username: " admin ", Password: "secret"}, "10.0.0.9")
	require.NoError(t, err)
	assert.Len(t, current.Token, 36)
	assert.Equal(t, []int64{2, 3}, current.Roles)
	assert.Equal(t, []string{"ops"}, current.Tags)

	// 2. The session is cached with the fixed TTL
	ttl := f.redis.TTL(constants.RedisPrefixSession + current.Token)
	assert.Equal(t, constants.SessionTTL, ttl)

	cached, err := f.sessions.Get(ctx, current.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cached.ID)
	assert.Equal(t, "Admin", cached.Nickname)

	// 3. The login record is written asynchronously
	f.service.Wait()
	require.Len(t, f.records.created, 1)
	record := f.records.created[0]
	assert.Equal(t, current.Token, record.Token)
	assert.Equal(t, "admin", record.Code)
	assert.Equal(t, "Admin", record.UserName)
	assert.Equal(t, loginrecord.LoginTypePassword, record.LoginType)
	assert.Equal(t, "10.0.0.9", record.LoginIP)

	assert.Equal(t, []string{auth.ResultSuccess}, f.observer.logins)
}

func TestLogin_Failures(t *testing.T) {
	f := setup(t)

	tests := []struct {
		name  string
		input auth.LoginInput
		want  error
	}{
		{"empty", auth.LoginInput{}, auth.ErrCredentialsRequired},
		{"no_password", auth.LoginInput{Username: "admin"}, auth.ErrCredentialsRequired},
		{"unknown_user", auth.LoginInput{Username: "ghost", Password: "secret"}, auth.ErrInvalidCredentials},
		{"wrong_password", auth.LoginInput{Username: "admin", Password: "nope"}, auth.ErrInvalidCredentials},
		{"disabled", auth.LoginInput{Username: "frozen", Password: "secret"}, auth.ErrDisabled},
		{"disabled_wrong_password", auth.LoginInput{Username: "frozen", Password: "nope"}, auth.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Login(context.Background(), tt.input, "127.0.0.1")
			assert.ErrorIs(t, err, tt.want)
		})
	}

	f.service.Wait()
	assert.Empty(t, f.records.created)
	assert.Empty(t, f.redis.Keys())
}

/*
TestLogin_AuditFailureIsSwallowed keeps the login successful when the record
write fails.
*/
func TestLogin_AuditFailureIsSwallowed(t *testing.T) {
	f := setup(t)
	f.records.err = errors.New("db down")

	current, err := f.service.Login(context.Background(), auth.LoginInput{Username: "admin", Password: "secret"}, "")
	require.NoError(t, err)
	assert.NotEmpty(t, current.Token)

	f.service.Wait()
	assert.Equal(t, []string{"login"}, f.observer.failures)
}

/*
TestLogin_AuditOutlivesRequest writes the record even when the request
context is cancelled right after login.
*/
func TestLogin_AuditOutlivesRequest(t *testing.T) {
	f := setup(t)
	ctx, cancel := context.WithCancel(context.Background())

	_, err := f.service.Login(ctx, auth.LoginInput{Username: "admin", Password: "secret"}, "")
	require.NoError(t, err)
	cancel()

	f.service.Wait()
	assert.Len(t, f.records.created, 1)
}

func TestLogout(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	current, err := f.service.Login(ctx, auth.LoginInput{Username: "admin", Password: "secret"}, "")
	require.NoError(t, err)

	// 1. Logout removes the session and stamps the record
	f.service.Logout(ctx, current.Token)
	f.service.Wait()

	_, err = f.sessions.Get(ctx, current.Token)
	assert.ErrorIs(t, err, session.ErrExpired)
	assert.Equal(t, []string{current.Token}, f.records.loggedOut)

	// 2. Unknown and empty tokens are no-ops
	f.service.Logout(ctx, current.Token)
	f.service.Logout(ctx, "")
	f.service.Wait()
	assert.Len(t, f.records.loggedOut, 1)
}

func TestCheckToken(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	current, err := f.service.Login(ctx, auth.LoginInput{Username: "admin", Password: "secret"}, "")
	require.NoError(t, err)

	info, err := f.service.CheckToken(ctx, current.Token)
	require.NoError(t, err)
	assert.Equal(t, &auth.TokenInfo{ID: 1, Username: "admin"}, info)

	// Expiry in the cache ends the session
	f.redis.FastForward(constants.SessionTTL + time.Second)
	_, err = f.service.CheckToken(ctx, current.Token)
	assert.ErrorIs(t, err, session.ErrExpired)
}

/*
TestHandler_LoginFlow drives login, token check and logout over HTTP.
*/
func TestHandler_LoginFlow(t *testing.T) {
	f := setup(t)
	router := chi.NewRouter()
	auth.NewHandler(f.service).RegisterRoutes(router)

	call := func(path, body, token string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		request.Header.Set(constants.HeaderXRealIP, "203.0.113.7")
		if token != "" {
			request.Header.Set(constants.HeaderToken, token)
		}
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder
	}

	// 1. Bad credentials
	recorder := call("/login", `{"username":"admin","password":"x"}`, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), apperr.CodeUnauthorized)

	// 2. Good credentials
	recorder = call("/login", `{"username":"admin","password":"secret"}`, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	keys := f.redis.Keys()
	require.Len(t, keys, 1)
	token := strings.TrimPrefix(keys[0], constants.RedisPrefixSession)
	assert.Contains(t, recorder.Body.String(), token)

	f.service.Wait()
	assert.Equal(t, "203.0.113.7", f.records.created[0].LoginIP)

	// 3. Token check
	recorder = call("/authorizeToken", "", token)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"username":"admin"`)

	// 4. Logout always succeeds, then the token is dead
	assert.Equal(t, http.StatusOK, call("/logout", "", token).Code)
	assert.Equal(t, http.StatusOK, call("/logout", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, call("/authorizeToken", "", token).Code)
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package role_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elementadmin/internal/platform/apperr"
	"github.com/taibuivan/elementadmin/internal/platform/ctxutil"
	"github.com/taibuivan/elementadmin/internal/platform/dberr"
	"github.com/taibuivan/elementadmin/internal/system/role"
	"github.com/taibuivan/elementadmin/internal/system/session"
	"github.com/taibuivan/elementadmin/pkg/idlist"
)

type fakeRepository struct {
	roles   map[int64]*role.Role
	holders map[int64]int
	nextID  int64

	listName string
	listArgs [2]int
}

func newFake() *fakeRepository {
	return &fakeRepository{roles: map[int64]*role.Role{}, holders: map[int64]int{}}
}

func (f *fakeRepository) FindByIDs(_ context.Context, ids []int64) ([]*role.Role, error) {
	out := []*role.Role{}
	for _, id := range ids {
		if found, ok := f.roles[id]; ok {
			out = append(out, found)
		}
	}
	return out, nil
}

func (f *fakeRepository) List(_ context.Context, name string, limit, offset int) ([]*role.Role, int, error) {
	f.listName, f.listArgs = name, [2]int{limit, offset}
	return nil, len(f.roles), nil
}

func (f *fakeRepository) NameTaken(_ context.Context, name string, excludeID int64) (bool, error) {
	for id, existing := range f.roles {
		if existing.Name == name && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) Create(_ context.Context, r *role.Role, _ int64) error {
	f.nextID++
	r.ID = f.nextID
	f.roles[r.ID] = r
	return nil
}

func (f *fakeRepository) Update(_ context.Context, r *role.Role, _ int64) error {
	if _, ok := f.roles[r.ID]; !ok {
		return dberr.ErrNotFound
	}
	f.roles[r.ID] = r
	return nil
}

func (f *fakeRepository) CountHolders(_ context.Context, id int64) (int, error) {
	return f.holders[id], nil
}

func (f *fakeRepository) Delete(_ context.Context, id int64, _ int64) error {
	if _, ok := f.roles[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.roles, id)
	return nil
}

func newService(repo role.Repository) *role.Service {
	return role.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_Save enforces unique names and fills an empty menu set.
*/
func TestService_Save(t *testing.T) {
	ctx := context.Background()
	repo := newFake()
	svc := newService(repo)

	// 1. Create without menus stores an empty, non-nil set
	admin := &role.Role{Name: "admin"}
	require.NoError(t, svc.Save(ctx, 1, admin))
	assert.NotNil(t, repo.roles[admin.ID].Menus)

	// 2. Same name on another role is a conflict
	err := svc.Save(ctx, 1, &role.Role{Name: "admin"})
	assert.ErrorIs(t, err, role.ErrNameTaken)

	// 3. Updating itself with the same name is allowed
	admin.Menus = idlist.List{3, 5}
	require.NoError(t, svc.Save(ctx, 1, admin))
	assert.Equal(t, idlist.List{3, 5}, repo.roles[admin.ID].Menus)

	// 4. Validation and unknown ids
	assert.True(t, apperr.HasCode(svc.Save(ctx, 1, &role.Role{}), apperr.CodeValidation))
	assert.ErrorIs(t, svc.Save(ctx, 1, &role.Role{ID: 99, Name: "ghost"}), role.ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newFake()
	repo.roles[1] = &role.Role{ID: 1, Name: "held"}
	repo.roles[2] = &role.Role{ID: 2, Name: "free"}
	repo.holders[1] = 3
	svc := newService(repo)

	assert.ErrorIs(t, svc.Delete(ctx, 1, 1), role.ErrInUse)
	require.NoError(t, svc.Delete(ctx, 1, 2))
	assert.ErrorIs(t, svc.Delete(ctx, 1, 2), role.ErrNotFound)
}

func TestService_List(t *testing.T) {
	repo := newFake()
	svc := newService(repo)

	var query role.ListQuery
	query.Page, query.PageSize, query.Name = 3, 10, "ad"

	page, err := svc.List(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, "ad", repo.listName)
	assert.Equal(t, [2]int{10, 20}, repo.listArgs)
	assert.NotNil(t, page.Rows)
}

/*
TestHandler_SaveOrUpdate accepts both wire shapes of menus and rejects a
malformed token with a 400 naming it.
*/
func TestHandler_SaveOrUpdate(t *testing.T) {
	repo := newFake()
	router := chi.NewRouter()
	role.NewHandler(newService(repo)).RegisterRoutes(router)

	post := func(body string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodPost, "/saveOrUpdate", strings.NewReader(body))
		request = request.WithContext(ctxutil.WithSession(request.Context(), &session.Session{ID: 1}))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder
	}

	tests := []struct {
		name   string
		body   string
		status int
		menus  idlist.List
	}{
		{"delimited", `{"name":"ops","menus":"3,5"}`, http.StatusOK, idlist.List{3, 5}},
		{"array", `{"name":"dev","menus":[7,7,8]}`, http.StatusOK, idlist.List{7, 8}},
		{"malformed", `{"name":"bad","menus":"3,x"}`, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := post(tt.body)
			assert.Equal(t, tt.status, recorder.Code)

			if tt.status == http.StatusBadRequest {
				assert.Contains(t, recorder.Body.String(), `\"x\"`)
				assert.Contains(t, recorder.Body.String(), apperr.CodeValidation)
				return
			}
			assert.JSONEq(t, mustJSON(t, tt.menus), extractMenus(t, recorder.Body.String()))
		})
	}

	// Anonymous callers are refused before decoding
	request := httptest.NewRequest(http.MethodPost, "/saveOrUpdate", strings.NewReader(`{}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

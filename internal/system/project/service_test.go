// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package project_test

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
	"github.com/taibuivan/elementadmin/internal/system/project"
	"github.com/taibuivan/elementadmin/internal/system/session"
	"github.com/taibuivan/elementadmin/pkg/pagination"
)

type fakeRepository struct {
	projects map[int64]*project.Project
	modules  map[int64]int
	nextID   int64

	listName string
	listArgs [2]int
}

func newFake() *fakeRepository {
	return &fakeRepository{projects: map[int64]*project.Project{}, modules: map[int64]int{}}
}

func (f *fakeRepository) List(_ context.Context, name string, limit, offset int) ([]*project.Project, int, error) {
	f.listName, f.listArgs = name, [2]int{limit, offset}
	out := []*project.Project{}
	for _, existing := range f.projects {
		out = append(out, existing)
	}
	return out, len(out), nil
}

func (f *fakeRepository) FindByID(_ context.Context, id int64) (*project.Project, error) {
	if found, ok := f.projects[id]; ok {
		return found, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) NameTaken(_ context.Context, name string, excludeID int64) (bool, error) {
	for id, existing := range f.projects {
		if existing.Name == name && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) Create(_ context.Context, p *project.Project, userID int64) error {
	f.nextID++
	p.ID = f.nextID
	p.CreatedBy, p.UpdatedBy = &userID, &userID
	f.projects[p.ID] = p
	return nil
}

func (f *fakeRepository) Update(_ context.Context, p *project.Project, userID int64) error {
	existing, ok := f.projects[p.ID]
	if !ok {
		return dberr.ErrNotFound
	}
	p.CreatedBy, p.UpdatedBy = existing.CreatedBy, &userID
	f.projects[p.ID] = p
	return nil
}

func (f *fakeRepository) CountModules(_ context.Context, id int64) (int, error) {
	return f.modules[id], nil
}

func (f *fakeRepository) Delete(_ context.Context, id int64, _ int64) error {
	if _, ok := f.projects[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.projects, id)
	return nil
}

func newService(repo project.Repository) *project.Service {
	return project.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestList(t *testing.T) {
	repo := newFake()
	svc := newService(repo)

	page, err := svc.List(context.Background(), project.ListQuery{Query: pagination.Query{Page: 2, PageSize: 5}, Name: " crm "})
	require.NoError(t, err)

	assert.Equal(t, "crm", repo.listName)
	assert.Equal(t, [2]int{5, 5}, repo.listArgs)
	assert.Equal(t, 2, page.Page)
}

/*
TestSave records the explicit caller as creator, then as editor.
*/
func TestSave(t *testing.T) {
	repo := newFake()
	svc := newService(repo)
	ctx := context.Background()

	// 1. Create
	created := &project.Project{Name: "CRM"}
	require.NoError(t, svc.Save(ctx, 7, created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(7), *created.CreatedBy)

	// 2. Update by someone else
	updated := &project.Project{ID: 1, Name: "CRM v2"}
	require.NoError(t, svc.Save(ctx, 9, updated))
	assert.Equal(t, int64(7), *updated.CreatedBy)
	assert.Equal(t, int64(9), *updated.UpdatedBy)

	// 3. Conflicts and validation
	require.NoError(t, svc.Save(ctx, 7, &project.Project{Name: "ERP"}))
	assert.ErrorIs(t, svc.Save(ctx, 7, &project.Project{ID: 2, Name: "CRM v2"}), project.ErrNameTaken)
	assert.True(t, apperr.HasCode(svc.Save(ctx, 7, &project.Project{Name: "   "}), apperr.CodeValidation))
	assert.ErrorIs(t, svc.Save(ctx, 7, &project.Project{ID: 99, Name: "Ghost"}), project.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFake()
	svc := newService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, 1, &project.Project{Name: "CRM"}))
	repo.modules[1] = 3

	assert.ErrorIs(t, svc.Delete(ctx, 1, 1), project.ErrInUse)

	repo.modules[1] = 0
	require.NoError(t, svc.Delete(ctx, 1, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 1, 1), project.ErrNotFound)
}

func TestHandler(t *testing.T) {
	repo := newFake()
	router := chi.NewRouter()
	project.NewHandler(newService(repo)).RegisterRoutes(router)

	call := func(path, body string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		request = request.WithContext(ctxutil.WithSession(request.Context(), &session.Session{ID: 5}))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder
	}

	recorder := call("/saveOrUpdate", `{"name":"CRM","description":"customer relations"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"created_by":5`)

	recorder = call("/list", `{"page":1,"pageSize":10}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"rowTotal":1`)

	assert.Equal(t, http.StatusNotFound, call("/deleted", `{"id":42}`).Code)
}

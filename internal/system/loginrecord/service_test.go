// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package loginrecord_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elementadmin/internal/system/loginrecord"
)

type fakeRepository struct {
	filter loginrecord.Filter
	limit  int
	offset int
	rows   []*loginrecord.Record
}

func (f *fakeRepository) Create(context.Context, *loginrecord.Record) error { return nil }

func (f *fakeRepository) StampLogout(context.Context, string, time.Time) error { return nil }

func (f *fakeRepository) List(_ context.Context, filter loginrecord.Filter, limit, offset int) ([]*loginrecord.Record, int, error) {
	f.filter, f.limit, f.offset = filter, limit, offset
	return f.rows, len(f.rows), nil
}

/*
TestHandler_List decodes the filters, clamps paging and answers a page envelope.
*/
func TestHandler_List(t *testing.T) {
	repo := &fakeRepository{rows: []*loginrecord.Record{{ID: 1, Token: "t", Code: "admin", LoginType: loginrecord.LoginTypePassword}}}
	router := chi.NewRouter()
	loginrecord.NewHandler(loginrecord.NewService(repo)).RegisterRoutes(router)

	body := `{"page":2,"pageSize":5000,"code":" admin ","login_ip":"10.0."}`
	request := httptest.NewRequest(http.MethodPost, "/list", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, loginrecord.Filter{Code: "admin", LoginIP: "10.0."}, repo.filter)
	assert.Equal(t, 1000, repo.limit)
	assert.Equal(t, 1000, repo.offset)

	var envelope struct {
		Code int `json:"code"`
		Data struct {
			RowTotal int                   `json:"rowTotal"`
			Rows     []*loginrecord.Record `json:"rows"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, 0, envelope.Code)
	assert.Equal(t, 1, envelope.Data.RowTotal)
	require.Len(t, envelope.Data.Rows, 1)
	assert.Nil(t, envelope.Data.Rows[0].LogoutTime)
}

func TestHandler_List_EmptyBody(t *testing.T) {
	repo := &fakeRepository{}
	router := chi.NewRouter()
	loginrecord.NewHandler(loginrecord.NewService(repo)).RegisterRoutes(router)

	request := httptest.NewRequest(http.MethodPost, "/list", http.NoBody)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 20, repo.limit)
	assert.Equal(t, 0, repo.offset)
	assert.Contains(t, recorder.Body.String(), `"rows":[]`)
}

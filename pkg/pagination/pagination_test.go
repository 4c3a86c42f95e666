// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elementadmin/pkg/pagination"
)

func TestQuery_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		query pagination.Query
		want  pagination.Query
	}{
		{"defaults", pagination.Query{}, pagination.Query{Page: 1, PageSize: 20}},
		{"negative", pagination.Query{Page: -2, PageSize: -1}, pagination.Query{Page: 1, PageSize: 20}},
		{"capped", pagination.Query{Page: 3, PageSize: 5000}, pagination.Query{Page: 3, PageSize: 1000}},
		{"kept", pagination.Query{Page: 2, PageSize: 50}, pagination.Query{Page: 2, PageSize: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Normalize())
		})
	}
}

func TestQuery_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Query{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, pagination.Query{Page: 3, PageSize: 20}.Offset())
}

/*
TestNewPage checks the page count and wire field names.
*/
func TestNewPage(t *testing.T) {
	page := pagination.NewPage(pagination.Query{Page: 2, PageSize: 10}, 21, []string{"a"})
	assert.Equal(t, 3, page.PageTotal)

	payload, err := json.Marshal(page)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rowTotal":21,"pageSize":10,"page":2,"pageTotal":3,"rows":["a"]}`, string(payload))

	empty := pagination.NewPage[int](pagination.Query{Page: 1, PageSize: 10}, 0, nil)
	payload, err = json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rowTotal":0,"pageSize":10,"page":1,"pageTotal":0,"rows":[]}`, string(payload))
}

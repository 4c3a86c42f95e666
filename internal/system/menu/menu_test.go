// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package menu_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elementadmin/internal/system/menu"
	"github.com/taibuivan/elementadmin/pkg/tree"
)

func entry(id, parent int64, title string) *menu.Menu {
	return &menu.Menu{ID: id, ParentID: parent, Title: title, MenuType: menu.TypePage}
}

/*
TestAssemble_KeepsFetchOrder nests children and preserves the (sort, id)
order the catalog was read in.
*/
func TestAssemble_KeepsFetchOrder(t *testing.T) {
	menus := []*menu.Menu{
		entry(2, 0, "System"),
		entry(9, 0, "Projects"),
		entry(5, 2, "Roles"),
		entry(3, 2, "Users"),
	}

	nodes, err := menu.Assemble(menus)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	assert.Equal(t, int64(2), nodes[0].ID)
	assert.Equal(t, int64(9), nodes[1].ID)
	require.Len(t, nodes[0].Children, 2)
	assert.Equal(t, int64(5), nodes[0].Children[0].ID)
	assert.Equal(t, int64(3), nodes[0].Children[1].ID)
	assert.Nil(t, nodes[1].Children)

	// The input rows are copied, never mutated
	assert.Equal(t, "System", menus[0].Title)
}

func TestAssemble_Cycle(t *testing.T) {
	_, err := menu.Assemble([]*menu.Menu{entry(1, 0, "root"), entry(1, 1, "self")})
	assert.ErrorIs(t, err, tree.ErrCycle)
}

/*
TestNode_JSON omits the children attribute on leaves and inlines the entry.
*/
func TestNode_JSON(t *testing.T) {
	code := "user:add"
	nodes, err := menu.Assemble([]*menu.Menu{
		entry(1, 0, "Users"),
		{ID: 4, ParentID: 1, Title: "Add", MenuType: menu.TypeButton, Permission: &code},
	})
	require.NoError(t, err)

	payload, err := json.Marshal(nodes)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	require.Len(t, decoded, 1)

	assert.Equal(t, "Users", decoded[0]["title"])
	children, ok := decoded[0]["children"].([]any)
	require.True(t, ok)
	require.Len(t, children, 1)

	leaf := children[0].(map[string]any)
	assert.Equal(t, "user:add", leaf["permission"])
	assert.NotContains(t, leaf, "children")
}

func TestType_Valid(t *testing.T) {
	assert.True(t, menu.TypeDirectory.Valid())
	assert.True(t, menu.TypeButton.Valid())
	assert.False(t, menu.Type(99).Valid())
}

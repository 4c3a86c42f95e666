// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tree_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elementadmin/pkg/tree"
)

type item struct {
	ID       int     `json:"id"`
	Parent   int     `json:"parent_id"`
	Children []*item `json:"children,omitempty"`
}

func (i *item) NodeID() int                  { return i.ID }
func (i *item) NodeParent() int              { return i.Parent }
func (i *item) SetChildren(children []*item) { i.Children = children }

func ids(nodes []*item) []int {
	out := make([]int, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return out
}

/*
TestBuild_Nesting checks root partitioning, input order and nesting.
*/
func TestBuild_Nesting(t *testing.T) {
	items := []*item{
		{ID: 5, Parent: 2},
		{ID: 2, Parent: 0},
		{ID: 3, Parent: 2},
		{ID: 9, Parent: 0},
		{ID: 7, Parent: 3},
	}

	roots, err := tree.Build(items, 0)
	require.NoError(t, err)

	// 1. Roots keep input order
	assert.Equal(t, []int{2, 9}, ids(roots))

	// 2. Children keep input order
	assert.Equal(t, []int{5, 3}, ids(roots[0].Children))
	assert.Equal(t, []int{7}, ids(roots[0].Children[1].Children))

	// 3. Leaves carry no children collection
	assert.Nil(t, roots[1].Children)
	assert.Nil(t, roots[0].Children[0].Children)
}

/*
TestBuild_OmitsEmptyChildren verifies the serialised form of a leaf.
*/
func TestBuild_OmitsEmptyChildren(t *testing.T) {
	roots, err := tree.Build([]*item{{ID: 1, Parent: 0}}, 0)
	require.NoError(t, err)

	payload, err := json.Marshal(roots)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"parent_id":0}]`, string(payload))
}

/*
TestBuild_Orphans drops nodes that no root reaches.
*/
func TestBuild_Orphans(t *testing.T) {
	items := []*item{
		{ID: 1, Parent: 0},
		{ID: 4, Parent: 99},
		// closed cycle away from any root
		{ID: 6, Parent: 8},
		{ID: 8, Parent: 6},
	}

	roots, err := tree.Build(items, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids(roots))
}

/*
TestBuild_Cycle fails closed on cyclic or duplicate input.
*/
func TestBuild_Cycle(t *testing.T) {
	tests := []struct {
		name  string
		items []*item
	}{
		{"self_root", []*item{{ID: 0, Parent: 0}}},
		{"duplicate_id", []*item{{ID: 1, Parent: 0}, {ID: 2, Parent: 1}, {ID: 2, Parent: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tree.Build(tt.items, 0)
			assert.ErrorIs(t, err, tree.ErrCycle)
		})
	}
}

/*
TestBuild_Empty returns a non-nil empty forest.
*/
func TestBuild_Empty(t *testing.T) {
	roots, err := tree.Build([]*item{}, 0)
	require.NoError(t, err)
	assert.NotNil(t, roots)
	assert.Empty(t, roots)

	payload, _ := json.Marshal(roots)
	assert.Equal(t, "[]", string(payload))
}

/*
TestBuild_Deep handles long chains without special casing.
*/
func TestBuild_Deep(t *testing.T) {
	items := make([]*item, 0, 500)
	for i := 1; i <= 500; i++ {
		items = append(items, &item{ID: i, Parent: i - 1})
	}

	roots, err := tree.Build(items, 0)
	require.NoError(t, err)

	depth := 0
	for node := roots; len(node) > 0; node = node[0].Children {
		depth++
	}
	assert.Equal(t, 500, depth)
}

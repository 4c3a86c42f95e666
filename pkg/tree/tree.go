// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package tree assembles a flat, parent-indexed list into an ordered forest.

Menus and departments share this contract:

  - Roots are the items whose parent equals the given root id, in input order.
  - Children of a node are the items whose parent equals the node id, in input order.
  - A node without children keeps a nil children slice, so it serialises
    without a children attribute at all.
  - Items that cannot be reached from a root are dropped.

Every id is attached at most once. Reaching an id a second time means the
input is cyclic (or has duplicate ids) and [Build] fails with [ErrCycle]
instead of recursing forever.
*/
package tree

import (
	"errors"
	"fmt"
)

// ErrCycle is returned when the parent references do not form a forest.
var ErrCycle = errors.New("tree: cyclic or duplicate node")

// Node is an item that knows its own id and its parent id, and can receive
// its assembled children.
type Node[K comparable, T any] interface {
	NodeID() K
	NodeParent() K
	SetChildren(children []T)
}

// Build returns the nodes hanging from root, each with its children attached.
//
// The returned slice is never nil.
func Build[K comparable, T Node[K, T]](items []T, root K) ([]T, error) {
	byParent := make(map[K][]T, len(items))
	for _, item := range items {
		byParent[item.NodeParent()] = append(byParent[item.NodeParent()], item)
	}

	visited := make(map[K]struct{}, len(items))

	var attach func(parent K) ([]T, error)
	attach = func(parent K) ([]T, error) {
		candidates := byParent[parent]
		if len(candidates) == 0 {
			return nil, nil
		}

		nodes := make([]T, 0, len(candidates))
		for _, item := range candidates {
			id := item.NodeID()
			if _, seen := visited[id]; seen {
				return nil, fmt.Errorf("%w: id %v", ErrCycle, id)
			}
			visited[id] = struct{}{}

			children, err := attach(id)
			if err != nil {
				return nil, err
			}
			item.SetChildren(children)
			nodes = append(nodes, item)
		}
		return nodes, nil
	}

	roots, err := attach(root)
	if err != nil {
		return nil, err
	}
	if roots == nil {
		roots = []T{}
	}
	return roots, nil
}

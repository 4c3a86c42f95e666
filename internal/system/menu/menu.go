// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package menu owns the navigation catalog: directories, pages and buttons in a
parent-indexed forest.

Button entries carry a permission code that the frontend checks before showing
an action. Catalog reads always return rows ordered by (sort, id), and tree
assembly keeps that order.
*/
package menu

import (
	"time"

	"github.com/taibuivan/elementadmin/pkg/tree"
)

// RootID is the parent id of top-level entries.
const RootID int64 = 0

// Type classifies a catalog entry.
type Type int

const (
	TypeDirectory Type = 10
	TypePage      Type = 20
	TypeButton    Type = 30
)

// Valid reports whether t is a known entry type.
func (t Type) Valid() bool {
	return t == TypeDirectory || t == TypePage || t == TypeButton
}

// Menu is one catalog entry.
type Menu struct {
	ID         int64     `json:"id"`
	ParentID   int64     `json:"parent_id"`
	Title      string    `json:"title"`
	Name       *string   `json:"name"`
	Path       *string   `json:"path"`
	Component  *string   `json:"component"`
	Icon       *string   `json:"icon"`
	Permission *string   `json:"permission"` // non-nil only for buttons
	MenuType   Type      `json:"menu_type"`
	Sort       int       `json:"sort"`
	Status     int       `json:"status"`
	CreatedAt  time.Time `json:"creation_date"`
	UpdatedAt  time.Time `json:"updation_date"`
}

// ParentRef is the (id, parent_id) pair used for ancestor back-fill.
type ParentRef struct {
	ID       int64 `json:"id"`
	ParentID int64 `json:"parent_id"`
}

// Node is a catalog entry with its assembled children.
//
// A leaf has nil Children and serialises without a children attribute.
type Node struct {
	Menu
	Children []*Node `json:"children,omitempty"`
}

func (node *Node) NodeID() int64                { return node.ID }
func (node *Node) NodeParent() int64            { return node.ParentID }
func (node *Node) SetChildren(children []*Node) { node.Children = children }

// Assemble nests menus under their parents starting at [RootID].
//
// Entries whose ancestor chain does not reach a root are dropped. A cyclic
// catalog fails with [tree.ErrCycle].
func Assemble(menus []*Menu) ([]*Node, error) {
	nodes := make([]*Node, 0, len(menus))
	for _, entry := range menus {
		nodes = append(nodes, &Node{Menu: *entry})
	}
	return tree.Build(nodes, RootID)
}

// DeleteInput is the payload of the delete endpoint.
type DeleteInput struct {
	ID int64 `json:"id"`
}

const (
	FieldID       = "id"
	FieldTitle    = "title"
	FieldParentID = "parent_id"
	FieldMenuType = "menu_type"
)

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package department manages the organisation tree that users and roles hang from.
package department

import (
	"time"

	"github.com/taibuivan/elementadmin/pkg/tree"
)

// RootID is the parent id of top-level departments.
const RootID int64 = 0

type Department struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ParentID    int64     `json:"parent_id"`
	Sort        int       `json:"sort"`
	Status      int       `json:"status"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"creation_date"`
	UpdatedAt   time.Time `json:"updation_date"`
}

// Node is a department with its sub-departments.
type Node struct {
	Department
	Children []*Node `json:"children,omitempty"`
}

func (node *Node) NodeID() int64                { return node.ID }
func (node *Node) NodeParent() int64            { return node.ParentID }
func (node *Node) SetChildren(children []*Node) { node.Children = children }

// Assemble nests departments under their parents starting at [RootID].
func Assemble(departments []*Department) ([]*Node, error) {
	nodes := make([]*Node, 0, len(departments))
	for _, dept := range departments {
		nodes = append(nodes, &Node{Department: *dept})
	}
	return tree.Build(nodes, RootID)
}

type DeleteInput struct {
	ID int64 `json:"id"`
}

const (
	FieldName     = "name"
	FieldParentID = "parent_id"
)

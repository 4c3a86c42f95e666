// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package permission computes what a user may see: the nested navigation tree
and the flat list of button permission codes.

# Resolution

  - Unknown users and users without roles resolve to nothing.
  - The superuser type sees the whole catalog, without role lookup.
  - Other users see the union of the menu ids granted by their roles.

Role assignments only persist the deepest granted entries, so the tree view
back-fills every ancestor of a granted entry before assembly. The button view
does not: buttons are leaves and their codes come from the granted set alone.

Absent data degrades to an empty result. Store failures and a cyclic catalog
are returned to the caller.
*/
package permission

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/taibuivan/elementadmin/internal/system/menu"
	"github.com/taibuivan/elementadmin/internal/system/role"
	"github.com/taibuivan/elementadmin/internal/system/user"
	"github.com/taibuivan/elementadmin/pkg/idlist"
)

// # Collaborators

// UserStore is the user half of the identity store.
type UserStore interface {
	FindByID(context context.Context, id int64) (*user.User, error)
}

// RoleStore is the role half of the identity store.
type RoleStore interface {
	FindByIDs(context context.Context, ids []int64) ([]*role.Role, error)
}

// MenuCatalog is the read side of the menu catalog.
type MenuCatalog interface {
	FindAll(context context.Context) ([]*menu.Menu, error)
	FindByIDs(context context.Context, ids []int64) ([]*menu.Menu, error)
	FindParents(context context.Context, ids []int64) ([]menu.ParentRef, error)
}

// Resolver holds no state of its own and is safe for concurrent use.
type Resolver struct {
	users UserStore
	roles RoleStore
	menus MenuCatalog
}

func NewResolver(users UserStore, roles RoleStore, menus MenuCatalog) *Resolver {
	return &Resolver{users: users, roles: roles, menus: menus}
}

// grant is the outcome of the role step.
type grant struct {
	all bool
	ids []int64
}

func (g grant) empty() bool {
	return !g.all && len(g.ids) == 0
}

// # Operations

/*
Resolve returns the menu tree visible to userID.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - []*menu.Node: Root entries with nested children, never nil
  - error: Store failures, or tree.ErrCycle on a corrupt catalog
*/
func (resolver *Resolver) Resolve(context context.Context, userID int64) ([]*menu.Node, error) {
	granted, err := resolver.grant(context, userID)
	if err != nil {
		return nil, err
	}
	if granted.empty() {
		return []*menu.Node{}, nil
	}

	var entries []*menu.Menu
	if granted.all {
		entries, err = resolver.menus.FindAll(context)
		if err != nil {
			return nil, fmt.Errorf("permission_catalog_failed: %w", err)
		}
	} else {
		ids, err := resolver.withAncestors(context, granted.ids)
		if err != nil {
			return nil, err
		}
		entries, err = resolver.menus.FindByIDs(context, ids)
		if err != nil {
			return nil, fmt.Errorf("permission_menus_failed: %w", err)
		}
	}

	nodes, err := menu.Assemble(entries)
	if err != nil {
		return nil, fmt.Errorf("permission_tree_failed: %w", err)
	}
	return nodes, nil
}

/*
ButtonPermissions returns the distinct permission codes granted to userID,
in catalog order.
*/
func (resolver *Resolver) ButtonPermissions(context context.Context, userID int64) ([]string, error) {
	granted, err := resolver.grant(context, userID)
	if err != nil {
		return nil, err
	}
	if granted.empty() {
		return []string{}, nil
	}

	var entries []*menu.Menu
	if granted.all {
		entries, err = resolver.menus.FindAll(context)
	} else {
		entries, err = resolver.menus.FindByIDs(context, granted.ids)
	}
	if err != nil {
		return nil, fmt.Errorf("permission_menus_failed: %w", err)
	}

	codes := make([]string, 0)
	seen := make(map[string]struct{})
	for _, entry := range entries {
		if entry.Permission == nil {
			continue
		}
		code := strings.TrimSpace(*entry.Permission)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes, nil
}

// # Resolution steps

// grant loads the user and its roles. A nil error with an empty grant means
// the user sees nothing.
func (resolver *Resolver) grant(context context.Context, userID int64) (grant, error) {
	account, err := resolver.users.FindByID(context, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return grant{}, nil
		}
		return grant{}, fmt.Errorf("permission_user_failed: %w", err)
	}

	if len(account.Roles) == 0 {
		return grant{}, nil
	}
	if account.UserType.IsSuperuser() {
		return grant{all: true}, nil
	}

	roles, err := resolver.roles.FindByIDs(context, account.Roles)
	if err != nil {
		return grant{}, fmt.Errorf("permission_roles_failed: %w", err)
	}

	sets := make([][]int64, 0, len(roles))
	for _, granted := range roles {
		sets = append(sets, granted.Menus)
	}
	return grant{ids: idlist.Union(sets...)}, nil
}

// withAncestors adds the parent chain of every id, one catalog level per
// query, until no new ancestor turns up.
func (resolver *Resolver) withAncestors(context context.Context, ids []int64) ([]int64, error) {
	known := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}

	all := ids
	frontier := ids
	for len(frontier) > 0 {
		refs, err := resolver.menus.FindParents(context, frontier)
		if err != nil {
			return nil, fmt.Errorf("permission_parents_failed: %w", err)
		}

		var next []int64
		for _, ref := range refs {
			if ref.ParentID == menu.RootID {
				continue
			}
			if _, ok := known[ref.ParentID]; ok {
				continue
			}
			known[ref.ParentID] = struct{}{}
			next = append(next, ref.ParentID)
		}
		all = idlist.Union(all, next)
		frontier = next
	}
	return all, nil
}

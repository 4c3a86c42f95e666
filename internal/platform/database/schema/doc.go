// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package schema holds the table and column names of the admin database.

Repositories build their SQL from these definitions instead of string literals,
so a renamed column is a compile-visible change. Each table exposes Columns(),
the projection its repository scans, in scan order.
*/
package schema

import "strings"

// Shared soft-delete and audit column names.
const (
	colEnabledFlag  = "enabled_flag"
	colCreatedBy    = "created_by"
	colUpdatedBy    = "updated_by"
	colCreationDate = "creation_date"
	colUpdationDate = "updation_date"
)

// Select joins columns into a SELECT list.
func Select(columns []string) string {
	return strings.Join(columns, ", ")
}

// SelectAs joins columns into a SELECT list qualified with a table alias.
func SelectAs(alias string, columns []string) string {
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}

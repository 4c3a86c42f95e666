// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// List endpoints receive page and pageSize in the JSON body and answer with a
// [Page] carrying rowTotal, pageSize, page, pageTotal and rows.
package pagination

const (
	// DefaultPageSize is the number of items per page if not specified.
	DefaultPageSize = 20
	// MaxPageSize is the upper bound for items per page.
	MaxPageSize = 1000
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Query holds the requested page and page size.
//
// Embed it in list request payloads.
type Query struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Normalize clamps invalid or excessive values to the defaults and returns
// the result.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// Offset returns the SQL OFFSET value derived from [Page] and [PageSize].
func (q Query) Offset() int {
	if q.Page <= 1 {
		return 0
	}
	return (q.Page - 1) * q.PageSize
}

// Limit returns the SQL LIMIT value.
func (q Query) Limit() int {
	return q.PageSize
}

// Page is one page of a list response.
type Page[T any] struct {
	RowTotal  int `json:"rowTotal"`
	PageSize  int `json:"pageSize"`
	Page      int `json:"page"`
	PageTotal int `json:"pageTotal"`
	Rows      []T `json:"rows"`
}

// NewPage builds a [Page] and calculates the page count.
//
// Rows is never nil so that empty pages serialise as [].
func NewPage[T any](query Query, total int, rows []T) Page[T] {
	pageTotal := 0
	if query.PageSize > 0 {
		pageTotal = (total + query.PageSize - 1) / query.PageSize
	}
	if rows == nil {
		rows = []T{}
	}

	return Page[T]{
		RowTotal:  total,
		PageSize:  query.PageSize,
		Page:      query.Page,
		PageTotal: pageTotal,
		Rows:      rows,
	}
}

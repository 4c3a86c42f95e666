// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package loginrecord

import (
	"context"
	"strings"

	"github.com/taibuivan/elementadmin/pkg/pagination"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (service *Service) List(context context.Context, query ListQuery) (pagination.Page[*Record], error) {
	page := query.Query.Normalize()
	filter := Filter{
		Code:     strings.TrimSpace(query.Code),
		UserName: strings.TrimSpace(query.UserName),
		LoginIP:  strings.TrimSpace(query.LoginIP),
	}

	records, total, err := service.repo.List(context, filter, page.Limit(), page.Offset())
	if err != nil {
		return pagination.Page[*Record]{}, err
	}
	return pagination.NewPage(page, total, records), nil
}

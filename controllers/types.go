package controllers

import "github.com/aleppo-guide/api-go/discovery"

type StandardResponse struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data,omitempty"`
	Meta       interface{}     `json:"meta,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Message    string          `json:"message,omitempty"`
}

type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

func paginationMeta(p discovery.Page) *PaginationMeta {
	return &PaginationMeta{
		CurrentPage: p.CurrentPage,
		PageSize:    p.PerPage,
		TotalItems:  int64(p.TotalItems),
		TotalPages:  p.TotalPages,
	}
}

// Package store 内存数组版实体存储：每类实体一把锁、一个自增计数器，
// 线性扫描 + 谓词 AND 过滤 + 1 基页码分页。进程重启即清空。
package store

import (
	"sync"
	"time"

	"go-graphql-marketplace/internal/domain"
)

type Store struct {
	usersMu  sync.RWMutex
	users    []domain.User
	nextUser int

	listingsMu  sync.RWMutex
	listings    []domain.Listing
	nextListing int

	ordersMu  sync.RWMutex
	orders    []domain.Order
	nextOrder int

	now func() time.Time
}

// New 由 main 构造并注入各处，不做包级单例，测试各起各的实例
func New() *Store {
	return &Store{
		nextUser:    1,
		nextListing: 1,
		nextOrder:   1,
		now:         time.Now,
	}
}

// Now 与实体时间戳同源的时钟（cancelledAt 等也走它），测试可替换
func (s *Store) Now() time.Time { return s.now() }

// Paginate 1 基页码切片：pages = ceil(total/limit)，越界页给空切片而不是报错
func Paginate[T any](items []T, page, limit int) ([]T, domain.PageInfo) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	total := len(items)
	pages := (total + limit - 1) / limit

	offset := (page - 1) * limit
	end := offset + limit
	var slice []T
	if offset < total {
		if end > total {
			end = total
		}
		slice = items[offset:end]
	} else {
		slice = []T{}
	}

	return slice, domain.PageInfo{
		Total:           total,
		Pages:           pages,
		CurrentPage:     page,
		HasNextPage:     page < pages,
		HasPreviousPage: page > 1 && total > 0,
	}
}

package model

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Paging struct {
	Total   int `json:"total"`
	Current int `json:"current"`
	Size    int `json:"size"`
}

// Pager is a 1-based page request.
type Pager struct {
	Current int
	Size    int
}

func NewPager(current, size int) Pager {
	if current < 1 {
		current = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if !OffsetFits(current, size) {
		current = math.MaxInt/size + 1
	}
	return Pager{Current: current, Size: size}
}

// OffsetFits reports whether (current-1)*size fits in an int.
func OffsetFits(current, size int) bool {
	return current-1 <= math.MaxInt/size
}

func (p Pager) Offset() uint64 {
	return uint64((p.Current - 1) * p.Size)
}

func (p Pager) Limit() uint64 {
	return uint64(p.Size)
}

func (p Pager) Paging(total int) Paging {
	return Paging{Total: total, Current: p.Current, Size: p.Size}
}

type UserIDs struct {
	IDs []int64 `json:"user_ids" validate:"required,min=1,dive,gt=0"`
}

type BookIDs struct {
	IDs []int64 `json:"book_ids" validate:"required,min=1,dive,gt=0"`
}

type Message struct {
	Message string `json:"message"`
}

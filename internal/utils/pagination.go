package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaginationParams carries the page window, sort key and optional search
// term parsed from list-endpoint query strings.
type PaginationParams struct {
	Page     int    `json:"page" form:"page"`
	PageSize int    `json:"page_size" form:"page_size"`
	Sort     string `json:"sort" form:"sort"`
	Order    string `json:"order" form:"order"`
	Search   string `json:"search" form:"search"`
}

type PaginationMeta struct {
	Page         int   `json:"page"`
	PageSize     int   `json:"page_size"`
	Total        int64 `json:"total"`
	TotalPages   int   `json:"total_pages"`
	HasNext      bool  `json:"has_next"`
	HasPrevious  bool  `json:"has_previous"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
}

// ParsePagination reads pagination query parameters, falling back to
// sane defaults and clamping the page size to the allowed range.
func ParsePagination(c *gin.Context) *PaginationParams {
	p := &PaginationParams{
		Sort:   c.DefaultQuery("sort", "created_at"),
		Order:  c.DefaultQuery("order", "desc"),
		Search: c.Query("search"),
	}

	p.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if p.Page < 1 {
		p.Page = 1
	}

	p.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	p.PageSize = clamp(p.PageSize, MinPageSize, MaxPageSize)

	if p.Order != "asc" {
		p.Order = "desc"
	}
	return p
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FindOptions translates the params into mongo find options: skip and
// limit for the page window plus a single-key sort.
func (p *PaginationParams) FindOptions() *options.FindOptions {
	dir := -1
	if p.Order == "asc" {
		dir = 1
	}
	return options.Find().
		SetSkip(int64((p.Page - 1) * p.PageSize)).
		SetLimit(int64(p.PageSize)).
		SetSort(bson.D{{Key: p.Sort, Value: dir}})
}

// SearchFilter builds a case-insensitive regex $or filter over the given
// fields, or an empty filter when no search term was supplied.
func (p *PaginationParams) SearchFilter(fields ...string) bson.M {
	if p.Search == "" || len(fields) == 0 {
		return bson.M{}
	}
	or := make([]bson.M, 0, len(fields))
	for _, field := range fields {
		or = append(or, bson.M{field: bson.M{"$regex": p.Search, "$options": "i"}})
	}
	return bson.M{"$or": or}
}

// NewPaginationMeta derives the response-envelope paging block from the
// request params and the matching document count.
func NewPaginationMeta(params *PaginationParams, total int64) *PaginationMeta {
	totalPages := int(math.Ceil(float64(total) / float64(params.PageSize)))

	meta := &PaginationMeta{
		Page:        params.Page,
		PageSize:    params.PageSize,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
	if meta.HasNext {
		next := params.Page + 1
		meta.NextPage = &next
	}
	if meta.HasPrevious {
		prev := params.Page - 1
		meta.PreviousPage = &prev
	}
	return meta
}

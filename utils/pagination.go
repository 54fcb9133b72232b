package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const MaxPageSize = 100

// PageParams is the clamped pagination window of a list request.
type PageParams struct {
	Page     int
	PageSize int
	Search   string
}

func (p PageParams) Offset() int { return (p.Page - 1) * p.PageSize }

// ParsePageParams reads page/pageSize plus the given search key from the
// query string. Page floors at 1, pageSize at 1 and caps at MaxPageSize.
func ParsePageParams(c *gin.Context, searchKey string, defaultSize int) PageParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.Query("pageSize"))
	if err != nil || size < 1 {
		size = defaultSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return PageParams{Page: page, PageSize: size, Search: c.Query(searchKey)}
}

// PageLinks builds the previous/next pair for the current request: base URL +
// request path + the current query string with the page number shifted.
// Previous is nil on page 1, Next is nil once the window covers the total.
func PageLinks(baseURL string, c *gin.Context, p PageParams, total int64) (previous, next *string) {
	build := func(page int) *string {
		q := url.Values{}
		for k, vs := range c.Request.URL.Query() {
			if k == "page" {
				continue
			}
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		if !q.Has("pageSize") {
			q.Set("pageSize", strconv.Itoa(p.PageSize))
		}
		q.Set("page", strconv.Itoa(page))
		link := fmt.Sprintf("%s%s?%s", strings.TrimSuffix(baseURL, "/"), c.Request.URL.Path, q.Encode())
		return &link
	}
	if p.Page > 1 {
		previous = build(p.Page - 1)
	}
	if int64(p.Page)*int64(p.PageSize) < total {
		next = build(p.Page + 1)
	}
	return previous, next
}

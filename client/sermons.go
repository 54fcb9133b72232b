package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/masjid-annour/mosquee-backend/models"
)

// SermonsService wraps the /sermons endpoints.
type SermonsService struct {
	c *Client
}

func (c *Client) Sermons() *SermonsService { return &SermonsService{c: c} }

func (s *SermonsService) List(ctx context.Context, search string, page, pageSize int) (*models.Paginated[models.Sermon], error) {
	q := url.Values{}
	if search != "" {
		q.Set("searchField", search)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	var out models.Paginated[models.Sermon]
	if err := s.c.do(ctx, http.MethodGet, "/sermons?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SermonsService) Get(ctx context.Context, id string) (*models.Sermon, error) {
	var out models.Sermon
	if err := s.c.do(ctx, http.MethodGet, "/sermons/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SermonsService) Create(ctx context.Context, in models.SermonInput) (*models.Sermon, error) {
	var out models.Sermon
	if err := s.c.do(ctx, http.MethodPost, "/sermons", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SermonsService) Update(ctx context.Context, id string, in models.SermonInput) (*models.Sermon, error) {
	var out models.Sermon
	if err := s.c.do(ctx, http.MethodPut, "/sermons/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SermonsService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/sermons/"+id, nil, nil)
}

// Page fetches sermons as a generic page for PagedSearch.
func (s *SermonsService) Page(ctx context.Context, q Query) (*Page[models.Sermon], error) {
	res, err := s.List(ctx, q.Search, q.Page, q.PageSize)
	if err != nil {
		return nil, err
	}
	return &Page[models.Sermon]{Total: res.Meta.Total, Items: res.Items}, nil
}

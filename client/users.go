package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/masjid-annour/mosquee-backend/models"
	"github.com/masjid-annour/mosquee-backend/utils"
)

// UsersService wraps the /users endpoints.
type UsersService struct {
	c *Client
}

func (c *Client) Users() *UsersService { return &UsersService{c: c} }

type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login",
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Register creates an account and stores the returned token.
func (c *Client) Register(ctx context.Context, in utils.UserInput) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", in, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

func (s *UsersService) List(ctx context.Context, search string, page, pageSize int) (*models.PaginatedUsers, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	var out models.PaginatedUsers
	if err := s.c.do(ctx, http.MethodGet, "/users?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsersService) Get(ctx context.Context, id string) (*models.User, error) {
	var out models.User
	if err := s.c.do(ctx, http.MethodGet, "/users/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsersService) Create(ctx context.Context, in utils.UserInput) (*models.User, error) {
	var out models.User
	if err := s.c.do(ctx, http.MethodPost, "/users", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update sends a PATCH carrying only the fields set on the patch.
func (s *UsersService) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	var out models.User
	if err := s.c.do(ctx, http.MethodPatch, "/users/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UsersService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, http.MethodDelete, "/users/"+id, nil, nil)
}

// Page fetches users as a generic page for PagedSearch.
func (s *UsersService) Page(ctx context.Context, q Query) (*Page[models.User], error) {
	res, err := s.List(ctx, q.Search, q.Page, q.PageSize)
	if err != nil {
		return nil, err
	}
	return &Page[models.User]{Total: res.Total, Items: res.Items}, nil
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/masjid-annour/mosquee-backend/httperr"
	"github.com/masjid-annour/mosquee-backend/models"
	"github.com/masjid-annour/mosquee-backend/store"
	"github.com/masjid-annour/mosquee-backend/utils"
)

type NewsController struct {
	store   *store.Store
	baseURL string
}

func NewNewsController(s *store.Store, baseURL string) *NewsController {
	return &NewsController{store: s, baseURL: baseURL}
}

func (nc *NewsController) List(c *gin.Context) {
	params := utils.ParsePageParams(c, "searchField", defaultSermonPageSize)

	items, total, err := nc.store.ListNews(params)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	previous, next := utils.PageLinks(nc.baseURL, c, params, total)
	c.JSON(http.StatusOK, models.Paginated[models.News]{
		Meta:  models.PageMeta{Total: total, Page: params.Page, PageSize: params.PageSize},
		Links: models.PageLinks{Previous: previous, Next: next},
		Items: items,
	})
}

// Get resolves by uuid first and falls back to the URL slug, so public pages
// can link either way.
func (nc *NewsController) Get(c *gin.Context) {
	param := c.Param("id")

	var item *models.News
	var err error
	if id, parseErr := uuid.Parse(param); parseErr == nil {
		item, err = nc.store.GetNews(id)
	} else {
		item, err = nc.store.GetNewsBySlug(param)
	}
	if err != nil {
		httperr.Respond(c, httperr.FromStore(err, "News not found", ""))
		return
	}
	c.JSON(http.StatusOK, item)
}

func (nc *NewsController) Create(c *gin.Context) {
	var in models.NewsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request body"))
		return
	}
	if errs := utils.ValidateNewsInput(in); len(errs) > 0 {
		httperr.Respond(c, httperr.Validation(errs...))
		return
	}

	item, err := nc.store.CreateNews(in)
	if err != nil {
		httperr.Respond(c, newsStoreError(err))
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (nc *NewsController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid news id"))
		return
	}

	var in models.NewsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request body"))
		return
	}
	if errs := utils.ValidateNewsInput(in); len(errs) > 0 {
		httperr.Respond(c, httperr.Validation(errs...))
		return
	}

	item, err := nc.store.UpdateNews(id, in)
	if err != nil {
		httperr.Respond(c, newsStoreError(err))
		return
	}
	c.JSON(http.StatusOK, item)
}

func (nc *NewsController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid news id"))
		return
	}
	if err := nc.store.DeleteNews(id); err != nil {
		httperr.Respond(c, httperr.FromStore(err, "News not found", ""))
		return
	}
	c.Status(http.StatusNoContent)
}

func newsStoreError(err error) error {
	if errors.Is(err, store.ErrMissingUserRef) {
		return httperr.Validation("publishedById must reference an existing user")
	}
	return httperr.FromStore(err, "News not found", "")
}

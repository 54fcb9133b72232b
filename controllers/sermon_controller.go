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

const defaultSermonPageSize = 10

type SermonController struct {
	store   *store.Store
	baseURL string
}

func NewSermonController(s *store.Store, baseURL string) *SermonController {
	return &SermonController{store: s, baseURL: baseURL}
}

// List is public: one page of sermons, ?searchField= matching any of the six
// topic/description language columns.
func (sc *SermonController) List(c *gin.Context) {
	params := utils.ParsePageParams(c, "searchField", defaultSermonPageSize)

	items, total, err := sc.store.ListSermons(params)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	previous, next := utils.PageLinks(sc.baseURL, c, params, total)
	c.JSON(http.StatusOK, models.Paginated[models.Sermon]{
		Meta:  models.PageMeta{Total: total, Page: params.Page, PageSize: params.PageSize},
		Links: models.PageLinks{Previous: previous, Next: next},
		Items: items,
	})
}

func (sc *SermonController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid sermon id"))
		return
	}
	sermon, err := sc.store.GetSermon(id)
	if err != nil {
		httperr.Respond(c, httperr.FromStore(err, "Sermon not found", ""))
		return
	}
	c.JSON(http.StatusOK, sermon)
}

// Create requires a fully trilingual topic and description plus existing
// preacher/publisher references. Admin-only at the route level.
func (sc *SermonController) Create(c *gin.Context) {
	var in models.SermonInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request body"))
		return
	}
	if errs := utils.ValidateSermonInput(in); len(errs) > 0 {
		httperr.Respond(c, httperr.Validation(errs...))
		return
	}

	sermon, err := sc.store.CreateSermon(in)
	if err != nil {
		httperr.Respond(c, sermonStoreError(err))
		return
	}
	c.JSON(http.StatusCreated, sermon)
}

func (sc *SermonController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid sermon id"))
		return
	}

	var in models.SermonInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request body"))
		return
	}
	if errs := utils.ValidateSermonInput(in); len(errs) > 0 {
		httperr.Respond(c, httperr.Validation(errs...))
		return
	}

	sermon, err := sc.store.UpdateSermon(id, in)
	if err != nil {
		httperr.Respond(c, sermonStoreError(err))
		return
	}
	c.JSON(http.StatusOK, sermon)
}

func (sc *SermonController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid sermon id"))
		return
	}
	if err := sc.store.DeleteSermon(id); err != nil {
		httperr.Respond(c, httperr.FromStore(err, "Sermon not found", ""))
		return
	}
	c.Status(http.StatusNoContent)
}

func sermonStoreError(err error) error {
	if errors.Is(err, store.ErrMissingUserRef) {
		return httperr.Validation("preachedById and publishedById must reference existing users")
	}
	return httperr.FromStore(err, "Sermon not found", "")
}

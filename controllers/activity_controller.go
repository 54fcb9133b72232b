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

type ActivityController struct {
	store   *store.Store
	baseURL string
}

func NewActivityController(s *store.Store, baseURL string) *ActivityController {
	return &ActivityController{store: s, baseURL: baseURL}
}

func (ac *ActivityController) List(c *gin.Context) {
	params := utils.ParsePageParams(c, "searchField", defaultSermonPageSize)

	items, total, err := ac.store.ListActivities(params)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	previous, next := utils.PageLinks(ac.baseURL, c, params, total)
	c.JSON(http.StatusOK, models.Paginated[models.Activity]{
		Meta:  models.PageMeta{Total: total, Page: params.Page, PageSize: params.PageSize},
		Links: models.PageLinks{Previous: previous, Next: next},
		Items: items,
	})
}

func (ac *ActivityController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid activity id"))
		return
	}
	item, err := ac.store.GetActivity(id)
	if err != nil {
		httperr.Respond(c, httperr.FromStore(err, "Activity not found", ""))
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ac *ActivityController) Create(c *gin.Context) {
	var in models.ActivityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request body"))
		return
	}
	if errs := utils.ValidateActivityInput(in); len(errs) > 0 {
		httperr.Respond(c, httperr.Validation(errs...))
		return
	}

	item, err := ac.store.CreateActivity(in)
	if err != nil {
		httperr.Respond(c, activityStoreError(err))
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (ac *ActivityController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid activity id"))
		return
	}

	var in models.ActivityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request body"))
		return
	}
	if errs := utils.ValidateActivityInput(in); len(errs) > 0 {
		httperr.Respond(c, httperr.Validation(errs...))
		return
	}

	item, err := ac.store.UpdateActivity(id, in)
	if err != nil {
		httperr.Respond(c, activityStoreError(err))
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ac *ActivityController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid activity id"))
		return
	}
	if err := ac.store.DeleteActivity(id); err != nil {
		httperr.Respond(c, httperr.FromStore(err, "Activity not found", ""))
		return
	}
	c.Status(http.StatusNoContent)
}

func activityStoreError(err error) error {
	if errors.Is(err, store.ErrMissingUserRef) {
		return httperr.Validation("createdById must reference an existing user")
	}
	return httperr.FromStore(err, "Activity not found", "")
}

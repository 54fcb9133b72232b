package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/masjid-annour/mosquee-backend/httperr"
	"github.com/masjid-annour/mosquee-backend/middleware"
	"github.com/masjid-annour/mosquee-backend/models"
	"github.com/masjid-annour/mosquee-backend/store"
	"github.com/masjid-annour/mosquee-backend/utils"
)

type DonationController struct {
	store   *store.Store
	baseURL string
}

func NewDonationController(s *store.Store, baseURL string) *DonationController {
	return &DonationController{store: s, baseURL: baseURL}
}

// Create records a gift from the authenticated caller.
func (dc *DonationController) Create(c *gin.Context) {
	var in models.DonationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request body"))
		return
	}
	if in.Amount <= 0 {
		httperr.Respond(c, httperr.Validation("Amount must be positive"))
		return
	}

	donor, err := uuid.Parse(c.GetString(middleware.CtxUserID))
	if err != nil {
		httperr.Respond(c, httperr.Auth("Invalid or expired token"))
		return
	}

	donation, err := dc.store.CreateDonation(donor, in)
	if err != nil {
		if errors.Is(err, store.ErrMissingProjectRef) {
			httperr.Respond(c, httperr.Validation("projectId must reference an existing project"))
			return
		}
		httperr.Respond(c, httperr.FromStore(err, "Donation not found", ""))
		return
	}
	c.JSON(http.StatusCreated, donation)
}

// List is admin-only.
func (dc *DonationController) List(c *gin.Context) {
	params := utils.ParsePageParams(c, "search", defaultUserPageSize)

	items, total, err := dc.store.ListDonations(params)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	previous, next := utils.PageLinks(dc.baseURL, c, params, total)
	c.JSON(http.StatusOK, models.Paginated[models.Donation]{
		Meta:  models.PageMeta{Total: total, Page: params.Page, PageSize: params.PageSize},
		Links: models.PageLinks{Previous: previous, Next: next},
		Items: items,
	})
}

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

type ProjectController struct {
	store   *store.Store
	baseURL string
}

func NewProjectController(s *store.Store, baseURL string) *ProjectController {
	return &ProjectController{store: s, baseURL: baseURL}
}

func (pc *ProjectController) List(c *gin.Context) {
	params := utils.ParsePageParams(c, "searchField", defaultSermonPageSize)

	items, total, err := pc.store.ListProjects(params)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	previous, next := utils.PageLinks(pc.baseURL, c, params, total)
	c.JSON(http.StatusOK, models.Paginated[models.Project]{
		Meta:  models.PageMeta{Total: total, Page: params.Page, PageSize: params.PageSize},
		Links: models.PageLinks{Previous: previous, Next: next},
		Items: items,
	})
}

func (pc *ProjectController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid project id"))
		return
	}
	item, err := pc.store.GetProject(id)
	if err != nil {
		httperr.Respond(c, httperr.FromStore(err, "Project not found", ""))
		return
	}
	c.JSON(http.StatusOK, item)
}

// Progress reports how much has been donated toward the project budget, for
// the public donation progress bar.
func (pc *ProjectController) Progress(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid project id"))
		return
	}
	project, err := pc.store.GetProject(id)
	if err != nil {
		httperr.Respond(c, httperr.FromStore(err, "Project not found", ""))
		return
	}
	donated, err := pc.store.ProjectDonationTotal(id)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"budget":  project.Budget,
		"donated": donated,
	})
}

func (pc *ProjectController) Create(c *gin.Context) {
	var in models.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request body"))
		return
	}
	if errs := utils.ValidateProjectInput(in); len(errs) > 0 {
		httperr.Respond(c, httperr.Validation(errs...))
		return
	}

	item, err := pc.store.CreateProject(in)
	if err != nil {
		httperr.Respond(c, projectStoreError(err))
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (pc *ProjectController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid project id"))
		return
	}

	var in models.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request body"))
		return
	}
	if errs := utils.ValidateProjectInput(in); len(errs) > 0 {
		httperr.Respond(c, httperr.Validation(errs...))
		return
	}

	item, err := pc.store.UpdateProject(id, in)
	if err != nil {
		httperr.Respond(c, projectStoreError(err))
		return
	}
	c.JSON(http.StatusOK, item)
}

func (pc *ProjectController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid project id"))
		return
	}
	if err := pc.store.DeleteProject(id); err != nil {
		httperr.Respond(c, httperr.FromStore(err, "Project not found", ""))
		return
	}
	c.Status(http.StatusNoContent)
}

func projectStoreError(err error) error {
	if errors.Is(err, store.ErrMissingUserRef) {
		return httperr.Validation("createdById must reference an existing user")
	}
	return httperr.FromStore(err, "Project not found", "")
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/masjid-annour/mosquee-backend/httperr"
	"github.com/masjid-annour/mosquee-backend/middleware"
	"github.com/masjid-annour/mosquee-backend/models"
	"github.com/masjid-annour/mosquee-backend/store"
	"github.com/masjid-annour/mosquee-backend/utils"
)

const defaultUserPageSize = 20

type UserController struct {
	store   *store.Store
	baseURL string
}

func NewUserController(s *store.Store, baseURL string) *UserController {
	return &UserController{store: s, baseURL: baseURL}
}

// List returns one page of users matching ?search= across name, firstnames,
// email and phone number. Passwords never appear in the payload.
func (uc *UserController) List(c *gin.Context) {
	params := utils.ParsePageParams(c, "search", defaultUserPageSize)

	items, total, err := uc.store.ListUsers(params)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	previous, next := utils.PageLinks(uc.baseURL, c, params, total)
	c.JSON(http.StatusOK, models.PaginatedUsers{
		Total:    total,
		Previous: previous,
		Next:     next,
		Items:    items,
	})
}

// Create inserts a user. The route is admin-gated unless the deployment
// opens public signup, but granting the admin flag always requires an admin
// caller.
func (uc *UserController) Create(c *gin.Context) {
	var in utils.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request body"))
		return
	}

	if in.IsAdmin && !c.GetBool(middleware.CtxIsAdmin) {
		httperr.Respond(c, httperr.Forbidden("Cannot set admin status"))
		return
	}

	if errs := utils.ValidateUserInput(in); len(errs) > 0 {
		httperr.Respond(c, httperr.Validation(errs...))
		return
	}

	user, err := uc.store.CreateUser(in)
	if err != nil {
		httperr.Respond(c, httperr.FromStore(err, "User not found", "User with this email already exists"))
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Get returns one user. Only the record owner and admins may read it.
func (uc *UserController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid user id"))
		return
	}

	if !uc.ownerOrAdmin(c, id) {
		httperr.Respond(c, httperr.Forbidden("Access denied"))
		return
	}

	user, err := uc.store.GetUser(id)
	if err != nil {
		httperr.Respond(c, httperr.FromStore(err, "User not found", ""))
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update handles PUT and PATCH identically: only fields present in the body
// change. Touching isAdmin is admin-only.
func (uc *UserController) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid user id"))
		return
	}

	if !uc.ownerOrAdmin(c, id) {
		httperr.Respond(c, httperr.Forbidden("Access denied"))
		return
	}

	var patch models.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request body"))
		return
	}

	if patch.IsAdmin != nil && !c.GetBool(middleware.CtxIsAdmin) {
		httperr.Respond(c, httperr.Forbidden("Cannot modify admin status"))
		return
	}

	if errs := utils.ValidateUserPatch(patch); len(errs) > 0 {
		httperr.Respond(c, httperr.Validation(errs...))
		return
	}

	user, err := uc.store.UpdateUser(id, patch)
	if err != nil {
		httperr.Respond(c, httperr.FromStore(err, "User not found", "User with this email already exists"))
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete removes a user. Admin-only at the route level.
func (uc *UserController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid user id"))
		return
	}

	if err := uc.store.DeleteUser(id); err != nil {
		httperr.Respond(c, httperr.FromStore(err, "User not found", ""))
		return
	}
	c.Status(http.StatusNoContent)
}

func (uc *UserController) ownerOrAdmin(c *gin.Context, id uuid.UUID) bool {
	return c.GetBool(middleware.CtxIsAdmin) || c.GetString(middleware.CtxUserID) == id.String()
}

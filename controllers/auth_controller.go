package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/masjid-annour/mosquee-backend/httperr"
	"github.com/masjid-annour/mosquee-backend/middleware"
	"github.com/masjid-annour/mosquee-backend/store"
	"github.com/masjid-annour/mosquee-backend/utils"
)

type AuthController struct {
	store     *store.Store
	jwtSecret string
}

func NewAuthController(s *store.Store, jwtSecret string) *AuthController {
	return &AuthController{store: s, jwtSecret: jwtSecret}
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a member account and signs them in. Registration never
// grants the admin flag; only an admin can set it afterwards.
func (ac *AuthController) Register(c *gin.Context) {
	var in utils.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Invalid request body"))
		return
	}
	in.IsAdmin = false

	if errs := utils.ValidateUserInput(in); len(errs) > 0 {
		httperr.Respond(c, httperr.Validation(errs...))
		return
	}

	user, err := ac.store.CreateUser(in)
	if err != nil {
		httperr.Respond(c, httperr.FromStore(err, "User not found", "This email is already in use."))
		return
	}

	token, err := utils.GenerateToken(ac.jwtSecret, user.ID.String(), user.IsAdmin)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully.",
		"token":   token,
	})
}

// Login verifies the credentials and issues a fresh 7-day token. Unknown
// email and wrong password answer the same generic 401.
func (ac *AuthController) Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Email and password are required."))
		return
	}

	user, err := ac.store.GetUserByEmail(in.Email)
	if err != nil || !ac.store.CheckPassword(user, in.Password) {
		httperr.Respond(c, httperr.Auth("Invalid credentials."))
		return
	}

	token, err := utils.GenerateToken(ac.jwtSecret, user.ID.String(), user.IsAdmin)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful.",
		"token":   token,
	})
}

type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

func (ac *AuthController) ChangePassword(c *gin.Context) {
	var in ChangePasswordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.BadRequest("Old and new passwords are required."))
		return
	}
	if !utils.ValidPassword(in.NewPassword) {
		httperr.Respond(c, httperr.Validation("Password must be at least 8 characters"))
		return
	}

	userID, err := uuid.Parse(c.GetString(middleware.CtxUserID))
	if err != nil {
		httperr.Respond(c, httperr.Auth("Invalid or expired token"))
		return
	}

	user, err := ac.store.GetUser(userID)
	if err != nil {
		httperr.Respond(c, httperr.FromStore(err, "User not found", ""))
		return
	}
	if !ac.store.CheckPassword(user, in.OldPassword) {
		httperr.Respond(c, httperr.Auth("Old password is incorrect."))
		return
	}

	if err := ac.store.UpdatePassword(userID, in.NewPassword); err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully."})
}

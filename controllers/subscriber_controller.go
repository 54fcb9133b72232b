package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masjid-annour/mosquee-backend/httperr"
	"github.com/masjid-annour/mosquee-backend/models"
	"github.com/masjid-annour/mosquee-backend/store"
	"github.com/masjid-annour/mosquee-backend/utils"
)

type SubscriberController struct {
	store   *store.Store
	baseURL string
	smtp    utils.SMTPConfig
}

func NewSubscriberController(s *store.Store, baseURL string, smtp utils.SMTPConfig) *SubscriberController {
	return &SubscriberController{store: s, baseURL: baseURL, smtp: smtp}
}

type SubscribeInput struct {
	Email string `json:"email" binding:"required"`
}

// Subscribe signs an email up for the newsletter and, when mail is
// configured, sends a confirmation without blocking the response.
func (sc *SubscriberController) Subscribe(c *gin.Context) {
	var in SubscribeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.Respond(c, httperr.Validation("Email is required"))
		return
	}
	if !utils.ValidEmail(in.Email) {
		httperr.Respond(c, httperr.Validation("Invalid email format"))
		return
	}

	sub, err := sc.store.CreateSubscriber(in.Email)
	if err != nil {
		httperr.Respond(c, httperr.FromStore(err, "", "This email is already subscribed"))
		return
	}

	if sc.smtp.Enabled() {
		go func(to string) {
			body := `<p>As-salamu alaykum,</p>
<p>Your subscription to the mosque newsletter is confirmed. You will receive
our announcements about prayers, sermons and activities.</p>`
			if err := utils.SendEmail(sc.smtp, to, "Newsletter subscription confirmed", body); err != nil {
				log.Printf("sending confirmation email failed: %v", err)
			}
		}(sub.Email)
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed successfully."})
}

// List is admin-only.
func (sc *SubscriberController) List(c *gin.Context) {
	params := utils.ParsePageParams(c, "search", defaultUserPageSize)

	items, total, err := sc.store.ListSubscribers(params)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	previous, next := utils.PageLinks(sc.baseURL, c, params, total)
	c.JSON(http.StatusOK, models.Paginated[models.Subscriber]{
		Meta:  models.PageMeta{Total: total, Page: params.Page, PageSize: params.PageSize},
		Links: models.PageLinks{Previous: previous, Next: next},
		Items: items,
	})
}

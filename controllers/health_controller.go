package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/masjid-annour/mosquee-backend/store"
)

type HealthController struct {
	store *store.Store
}

func NewHealthController(s *store.Store) *HealthController {
	return &HealthController{store: s}
}

func (hc *HealthController) Check(c *gin.Context) {
	response := gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Unix(),
		"db":        "ok",
	}

	if err := hc.store.Ping(); err != nil {
		response["db"] = "error: cannot connect to DB"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

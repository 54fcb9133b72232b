package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/masjid-annour/mosquee-backend/config"
	"github.com/masjid-annour/mosquee-backend/models"
	"github.com/masjid-annour/mosquee-backend/routes"
	"github.com/masjid-annour/mosquee-backend/store"
	"github.com/masjid-annour/mosquee-backend/utils"
)

const testSecret = "controller-test-secret"

// newTestAPI wires the full router against a fresh in-memory database.
func newTestAPI(t *testing.T) (*gin.Engine, *store.Store, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, config.Migrate(db))

	s := store.New(db)
	cfg := &config.Config{
		JWTSecret: testSecret,
		BaseURL:   "http://api.test",
	}
	r := routes.SetupRouter(gin.New(), s, cfg)
	return r, s, db
}

func doReq(t *testing.T, r http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func seedUser(t *testing.T, s *store.Store, email string, admin bool) (*models.User, string) {
	t.Helper()
	user, err := s.CreateUser(utils.UserInput{
		Name:        "Sanni",
		Firstnames:  "Karim",
		Email:       email,
		PhoneNumber: "+2290197000001",
		Password:    "correct-horse",
		IsAdmin:     admin,
	})
	require.NoError(t, err)

	token, err := utils.GenerateToken(testSecret, user.ID.String(), user.IsAdmin)
	require.NoError(t, err)
	return user, token
}

func countTexts(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.MultiLanguageText{}).Count(&n).Error)
	return n
}

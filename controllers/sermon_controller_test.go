package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masjid-annour/mosquee-backend/models"
)

func sermonBody(preacherID, publisherID string) map[string]any {
	return map[string]any{
		"topic":         map[string]string{"ar": "الصبر", "en": "Patience", "fr": "La patience"},
		"description":   map[string]string{"ar": "خطبة", "en": "A khutbah", "fr": "Un sermon"},
		"video":         "https://youtu.be/abc123",
		"preachedById":  preacherID,
		"publishedById": publisherID,
	}
}

func TestSermonCRUD(t *testing.T) {
	r, s, _ := newTestAPI(t)
	preacher, _ := seedUser(t, s, "imam@mosquee-annour.bj", false)
	admin, adminToken := seedUser(t, s, "admin@mosquee-annour.bj", true)

	w := doReq(t, r, http.MethodPost, "/en/api/sermons", adminToken,
		sermonBody(preacher.ID.String(), admin.ID.String()))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	topic, _ := created["topic"].(map[string]any)
	require.NotNil(t, topic)
	assert.Equal(t, "Patience", topic["en"])

	// Reads are public.
	w = doReq(t, r, http.MethodGet, "/en/api/sermons/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doReq(t, r, http.MethodGet, "/en/api/sermons", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)
	meta, _ := list["meta"].(map[string]any)
	require.NotNil(t, meta)
	assert.EqualValues(t, 1, meta["total"])
	assert.EqualValues(t, 1, meta["page"])
	assert.EqualValues(t, 10, meta["pageSize"])
	links, _ := list["links"].(map[string]any)
	require.NotNil(t, links)
	assert.Nil(t, links["previous"])
	assert.Nil(t, links["next"])
	assert.Len(t, list["items"], 1)

	body := sermonBody(preacher.ID.String(), admin.ID.String())
	body["video"] = "https://youtu.be/updated"
	w = doReq(t, r, http.MethodPut, "/en/api/sermons/"+id, adminToken, body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://youtu.be/updated", decode(t, w)["video"])

	w = doReq(t, r, http.MethodDelete, "/en/api/sermons/"+id, adminToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doReq(t, r, http.MethodGet, "/en/api/sermons/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Sermon not found", decode(t, w)["message"])
}

func TestSermonMutationsAdminOnly(t *testing.T) {
	r, s, _ := newTestAPI(t)
	preacher, memberToken := seedUser(t, s, "imam@mosquee-annour.bj", false)

	body := sermonBody(preacher.ID.String(), preacher.ID.String())

	w := doReq(t, r, http.MethodPost, "/en/api/sermons", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doReq(t, r, http.MethodPost, "/en/api/sermons", memberToken, body)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateSermonIncompleteTranslations(t *testing.T) {
	r, s, db := newTestAPI(t)
	preacher, _ := seedUser(t, s, "imam@mosquee-annour.bj", false)
	admin, adminToken := seedUser(t, s, "admin@mosquee-annour.bj", true)

	body := sermonBody(preacher.ID.String(), admin.ID.String())
	body["topic"] = map[string]string{"en": "Patience", "fr": "La patience"} // ar missing

	w := doReq(t, r, http.MethodPost, "/en/api/sermons", adminToken, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	errs, _ := resp["errors"].([]any)
	assert.Contains(t, errs, "topic.ar must be a non-empty string")

	// Nothing was written on the failed create.
	assert.EqualValues(t, 0, countTexts(t, db))
	var sermons int64
	require.NoError(t, db.Model(&models.Sermon{}).Count(&sermons).Error)
	assert.EqualValues(t, 0, sermons)
}

func TestCreateSermonUnknownReference(t *testing.T) {
	r, s, _ := newTestAPI(t)
	admin, adminToken := seedUser(t, s, "admin@mosquee-annour.bj", true)

	body := sermonBody("7b0e6f9c-0000-0000-0000-000000000000", admin.ID.String())
	w := doReq(t, r, http.MethodPost, "/en/api/sermons", adminToken, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSermonSearchField(t *testing.T) {
	r, s, _ := newTestAPI(t)
	preacher, _ := seedUser(t, s, "imam@mosquee-annour.bj", false)
	admin, adminToken := seedUser(t, s, "admin@mosquee-annour.bj", true)

	w := doReq(t, r, http.MethodPost, "/en/api/sermons", adminToken,
		sermonBody(preacher.ID.String(), admin.ID.String()))
	require.Equal(t, http.StatusCreated, w.Code)

	other := sermonBody(preacher.ID.String(), admin.ID.String())
	other["topic"] = map[string]string{"ar": "الشكر", "en": "Gratitude", "fr": "La gratitude"}
	other["description"] = map[string]string{"ar": "خطبة", "en": "Another khutbah", "fr": "Autre sermon"}
	w = doReq(t, r, http.MethodPost, "/en/api/sermons", adminToken, other)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doReq(t, r, http.MethodGet, "/en/api/sermons?searchField=gratitude", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)
	meta, _ := list["meta"].(map[string]any)
	assert.EqualValues(t, 1, meta["total"])
}

func TestUnknownLocaleIs404(t *testing.T) {
	r, _, _ := newTestAPI(t)

	w := doReq(t, r, http.MethodGet, "/de/api/sermons", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Unknown locale", decode(t, w)["message"])

	w = doReq(t, r, http.MethodGet, "/en/api/sermons", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	r, _, _ := newTestAPI(t)

	w := doReq(t, r, http.MethodPatch, "/en/api/sermons", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	allow := w.Header().Get("Allow")
	assert.Contains(t, allow, http.MethodGet)
	assert.Contains(t, allow, http.MethodPost)
}

func TestHealthEndpoint(t *testing.T) {
	r, _, _ := newTestAPI(t)

	w := doReq(t, r, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["db"])
}

func TestSubscribe(t *testing.T) {
	r, _, _ := newTestAPI(t)

	w := doReq(t, r, http.MethodPost, "/fr/api/subscribe", "", map[string]string{
		"email": "karim@mosquee-annour.bj",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doReq(t, r, http.MethodPost, "/fr/api/subscribe", "", map[string]string{
		"email": "karim@mosquee-annour.bj",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "This email is already subscribed", decode(t, w)["message"])
}

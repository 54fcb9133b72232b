package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerBody(email string) map[string]any {
	return map[string]any{
		"name":        "Sanni",
		"firstnames":  "Karim",
		"email":       email,
		"phoneNumber": "+2290197000001",
		"password":    "correct-horse",
	}
}

func TestRegisterThenLogin(t *testing.T) {
	r, _, _ := newTestAPI(t)

	w := doReq(t, r, http.MethodPost, "/fr/api/auth/register", "", registerBody("karim@mosquee-annour.bj"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "User created successfully.", body["message"])
	assert.NotEmpty(t, body["token"])

	w = doReq(t, r, http.MethodPost, "/fr/api/auth/login", "", map[string]string{
		"email":    "karim@mosquee-annour.bj",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "Login successful.", body["message"])
	assert.NotEmpty(t, body["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	r, s, _ := newTestAPI(t)
	seedUser(t, s, "karim@mosquee-annour.bj", false)

	w := doReq(t, r, http.MethodPost, "/fr/api/auth/login", "", map[string]string{
		"email":    "karim@mosquee-annour.bj",
		"password": "wrong-horse",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials.", decode(t, w)["message"])
}

func TestLoginUnknownEmailSameAnswer(t *testing.T) {
	r, _, _ := newTestAPI(t)

	w := doReq(t, r, http.MethodPost, "/fr/api/auth/login", "", map[string]string{
		"email":    "nobody@mosquee-annour.bj",
		"password": "whatever-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials.", decode(t, w)["message"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _, _ := newTestAPI(t)

	w := doReq(t, r, http.MethodPost, "/fr/api/auth/register", "", registerBody("karim@mosquee-annour.bj"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doReq(t, r, http.MethodPost, "/fr/api/auth/register", "", registerBody("karim@mosquee-annour.bj"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "This email is already in use.", decode(t, w)["message"])
}

func TestRegisterNeverGrantsAdmin(t *testing.T) {
	r, s, _ := newTestAPI(t)

	body := registerBody("karim@mosquee-annour.bj")
	body["isAdmin"] = true
	w := doReq(t, r, http.MethodPost, "/fr/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code)

	user, err := s.GetUserByEmail("karim@mosquee-annour.bj")
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)
}

func TestRegisterValidation(t *testing.T) {
	r, _, _ := newTestAPI(t)

	body := registerBody("not-an-email")
	body["password"] = "short"
	w := doReq(t, r, http.MethodPost, "/fr/api/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "Validation failed", resp["message"])
	errs, ok := resp["errors"].([]any)
	require.True(t, ok)
	assert.Contains(t, errs, "Invalid email format")
	assert.Contains(t, errs, "Password must be at least 8 characters")
}

func TestChangePassword(t *testing.T) {
	r, s, _ := newTestAPI(t)
	_, token := seedUser(t, s, "karim@mosquee-annour.bj", false)

	w := doReq(t, r, http.MethodPost, "/fr/api/auth/change-password", token, map[string]string{
		"oldPassword": "wrong-horse",
		"newPassword": "brand-new-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Old password is incorrect.", decode(t, w)["message"])

	w = doReq(t, r, http.MethodPost, "/fr/api/auth/change-password", token, map[string]string{
		"oldPassword": "correct-horse",
		"newPassword": "brand-new-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doReq(t, r, http.MethodPost, "/fr/api/auth/login", "", map[string]string{
		"email":    "karim@mosquee-annour.bj",
		"password": "brand-new-pass",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChangePasswordRequiresToken(t *testing.T) {
	r, _, _ := newTestAPI(t)

	w := doReq(t, r, http.MethodPost, "/fr/api/auth/change-password", "", map[string]string{
		"oldPassword": "a-password", "newPassword": "b-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

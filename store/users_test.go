package store_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/masjid-annour/mosquee-backend/models"
	"github.com/masjid-annour/mosquee-backend/utils"
)

func TestCreateUserNormalizesAndHashes(t *testing.T) {
	s, _ := newTestStore(t)

	user, err := s.CreateUser(utils.UserInput{
		Name:        "  Sanni ",
		Firstnames:  "Karim",
		Email:       " Karim@Mosquee-Annour.BJ ",
		PhoneNumber: "97000001",
		Password:    "correct-horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "Sanni", user.Name)
	assert.Equal(t, "karim@mosquee-annour.bj", user.Email)
	assert.NotEqual(t, "correct-horse", user.Password)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.IsAdmin)

	assert.True(t, s.CheckPassword(user, "correct-horse"))
	assert.False(t, s.CheckPassword(user, "wrong-horse"))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s, _ := newTestStore(t)
	seedUser(t, s, "karim@mosquee-annour.bj", false)

	_, err := s.CreateUser(utils.UserInput{
		Name:        "Other",
		Firstnames:  "Person",
		Email:       "KARIM@mosquee-annour.bj", // same after normalization
		PhoneNumber: "97000002",
		Password:    "another-pass",
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestGetUserByEmailNormalizes(t *testing.T) {
	s, _ := newTestStore(t)
	created := seedUser(t, s, "karim@mosquee-annour.bj", false)

	found, err := s.GetUserByEmail("  KARIM@mosquee-annour.bj ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = s.GetUserByEmail("nobody@mosquee-annour.bj")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListUsersPagination(t *testing.T) {
	s, _ := newTestStore(t)
	for i := 0; i < 5; i++ {
		seedUser(t, s, fmt.Sprintf("member%d@mosquee-annour.bj", i), false)
	}

	page1, total, err := s.ListUsers(utils.PageParams{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, page1, 2)

	page3, total, err := s.ListUsers(utils.PageParams{Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, page3, 1)

	beyond, total, err := s.ListUsers(utils.PageParams{Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Empty(t, beyond)
}

func TestListUsersSearch(t *testing.T) {
	s, _ := newTestStore(t)
	target := seedUser(t, s, "fatima@mosquee-annour.bj", false)
	patch := models.UserPatch{Name: strptr("Adjovi"), Firstnames: strptr("Fatima")}
	_, err := s.UpdateUser(target.ID, patch)
	require.NoError(t, err)
	seedUser(t, s, "other@mosquee-annour.bj", false)

	items, total, err := s.ListUsers(utils.PageParams{Page: 1, PageSize: 20, Search: "FATIMA"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, target.ID, items[0].ID)

	// Phone number column is searchable too.
	items, total, err = s.ListUsers(utils.PageParams{Page: 1, PageSize: 20, Search: "9700000"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, items, 2)
}

func TestUpdateUserOnlyChangesPresentFields(t *testing.T) {
	s, _ := newTestStore(t)
	user := seedUser(t, s, "karim@mosquee-annour.bj", false)

	updated, err := s.UpdateUser(user.ID, models.UserPatch{
		PhoneNumber: strptr("+2290197000002"),
	})
	require.NoError(t, err)
	assert.Equal(t, "+2290197000002", updated.PhoneNumber)

	reloaded, err := s.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Name, reloaded.Name)
	assert.Equal(t, user.Email, reloaded.Email)
	assert.False(t, reloaded.IsAdmin)
	assert.True(t, s.CheckPassword(reloaded, "correct-horse"))
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	s, _ := newTestStore(t)
	user := seedUser(t, s, "karim@mosquee-annour.bj", false)

	_, err := s.UpdateUser(user.ID, models.UserPatch{Password: strptr("new-password")})
	require.NoError(t, err)

	reloaded, err := s.GetUser(user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "new-password", reloaded.Password)
	assert.True(t, s.CheckPassword(reloaded, "new-password"))
	assert.False(t, s.CheckPassword(reloaded, "correct-horse"))
}

func TestUpdateUserMissing(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.UpdateUser(uuid.New(), models.UserPatch{Name: strptr("X")})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteUser(t *testing.T) {
	s, _ := newTestStore(t)
	user := seedUser(t, s, "karim@mosquee-annour.bj", false)

	require.NoError(t, s.DeleteUser(user.ID))
	_, err := s.GetUser(user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, s.DeleteUser(user.ID), gorm.ErrRecordNotFound)
}

func strptr(s string) *string { return &s }

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/masjid-annour/mosquee-backend/models"
)

func strptr(s string) *string { return &s }

func TestValidPhoneNumber(t *testing.T) {
	valid := []string{
		"97000001",
		"+2290197000001",
		"002290197000001",
	}
	for _, phone := range valid {
		assert.True(t, ValidPhoneNumber(phone), phone)
	}

	invalid := []string{
		"",
		"9700000",          // 7 digits
		"970000012",        // 9 digits
		"+22997000001",     // missing the 01 mobile prefix
		"+229019700000a",   // non-digit
		"+22901 97000001", // space
		"x97000001",       // junk prefix
	}
	for _, phone := range invalid {
		assert.False(t, ValidPhoneNumber(phone), phone)
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("karim@mosquee-annour.bj"))
	assert.False(t, ValidEmail("karim@"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail(""))
}

func TestValidateUserInput(t *testing.T) {
	errs := ValidateUserInput(UserInput{
		Name:        "Sanni",
		Firstnames:  "Karim",
		Email:       "karim@mosquee-annour.bj",
		PhoneNumber: "+2290197000001",
		Password:    "long-enough",
	})
	assert.Empty(t, errs)

	errs = ValidateUserInput(UserInput{
		Name:        " ",
		Firstnames:  "Karim",
		Email:       "bad-email",
		PhoneNumber: "123",
		Password:    "short",
	})
	assert.Contains(t, errs, "Name is required")
	assert.Contains(t, errs, "Invalid email format")
	assert.Contains(t, errs, "Invalid phone number format")
	assert.Contains(t, errs, "Password must be at least 8 characters")
}

func TestValidateUserPatchSkipsAbsentFields(t *testing.T) {
	assert.Empty(t, ValidateUserPatch(models.UserPatch{}))

	errs := ValidateUserPatch(models.UserPatch{Email: strptr("nope")})
	assert.Equal(t, []string{"Invalid email format"}, errs)

	errs = ValidateUserPatch(models.UserPatch{Name: strptr("  ")})
	assert.Equal(t, []string{"Name is required"}, errs)
}

func TestValidateMultiLanguage(t *testing.T) {
	full := models.MultiLanguageInput{Ar: "الصبر", En: "Patience", Fr: "La patience"}
	assert.Empty(t, ValidateMultiLanguage(full, "topic"))

	partial := models.MultiLanguageInput{En: "Patience", Fr: " "}
	errs := ValidateMultiLanguage(partial, "topic")
	assert.Equal(t, []string{
		"topic.ar must be a non-empty string",
		"topic.fr must be a non-empty string",
	}, errs)
}

func TestValidateSermonInput(t *testing.T) {
	full := models.MultiLanguageInput{Ar: "ع", En: "e", Fr: "f"}
	in := models.SermonInput{
		Topic:         full,
		Description:   full,
		Video:         "https://youtu.be/abc",
		PreachedByID:  "11111111-1111-1111-1111-111111111111",
		PublishedByID: "22222222-2222-2222-2222-222222222222",
	}
	assert.Empty(t, ValidateSermonInput(in))

	in.Video = ""
	in.PreachedByID = ""
	errs := ValidateSermonInput(in)
	assert.Contains(t, errs, "Video is required")
	assert.Contains(t, errs, "preachedById is required")
}

package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/masjid-annour/mosquee-backend/models"
)

var validate = validator.New()

// Benin mobile numbers: 8 digits, optional +22901 / 0022901 prefix.
var phoneRe = regexp.MustCompile(`^(?:\+22901|0022901)?[0-9]{8}$`)

const MinPasswordLen = 8

func ValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func ValidPhoneNumber(phone string) bool { return phoneRe.MatchString(phone) }

func ValidPassword(password string) bool { return len(password) >= MinPasswordLen }

// ValidateMultiLanguage checks a required trilingual field: all three
// languages present and non-blank. Returns one message per failing language.
func ValidateMultiLanguage(field models.MultiLanguageInput, name string) []string {
	var errs []string
	for _, l := range []struct{ code, value string }{
		{models.LangAr, field.Ar},
		{models.LangEn, field.En},
		{models.LangFr, field.Fr},
	} {
		if strings.TrimSpace(l.value) == "" {
			errs = append(errs, name+"."+l.code+" must be a non-empty string")
		}
	}
	return errs
}

// UserInput is the full create-user payload.
type UserInput struct {
	Name        string `json:"name"`
	Firstnames  string `json:"firstnames"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	IsAdmin     bool   `json:"isAdmin"`
}

// ValidateUserInput returns the field-level error list for a create payload.
func ValidateUserInput(in UserInput) []string {
	var errs []string
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "Name is required")
	}
	if strings.TrimSpace(in.Firstnames) == "" {
		errs = append(errs, "Firstnames are required")
	}
	if strings.TrimSpace(in.Email) == "" {
		errs = append(errs, "Email is required")
	} else if !ValidEmail(in.Email) {
		errs = append(errs, "Invalid email format")
	}
	if strings.TrimSpace(in.PhoneNumber) == "" {
		errs = append(errs, "Phone number is required")
	} else if !ValidPhoneNumber(strings.TrimSpace(in.PhoneNumber)) {
		errs = append(errs, "Invalid phone number format")
	}
	if in.Password == "" {
		errs = append(errs, "Password is required")
	} else if !ValidPassword(in.Password) {
		errs = append(errs, "Password must be at least 8 characters")
	}
	return errs
}

// ValidateUserPatch validates only the fields present in the payload.
func ValidateUserPatch(p models.UserPatch) []string {
	var errs []string
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, "Name is required")
	}
	if p.Firstnames != nil && strings.TrimSpace(*p.Firstnames) == "" {
		errs = append(errs, "Firstnames are required")
	}
	if p.Email != nil {
		if strings.TrimSpace(*p.Email) == "" {
			errs = append(errs, "Email is required")
		} else if !ValidEmail(*p.Email) {
			errs = append(errs, "Invalid email format")
		}
	}
	if p.PhoneNumber != nil {
		if strings.TrimSpace(*p.PhoneNumber) == "" {
			errs = append(errs, "Phone number is required")
		} else if !ValidPhoneNumber(strings.TrimSpace(*p.PhoneNumber)) {
			errs = append(errs, "Invalid phone number format")
		}
	}
	if p.Password != nil && !ValidPassword(*p.Password) {
		errs = append(errs, "Password must be at least 8 characters")
	}
	return errs
}

// ValidateNewsInput checks a news create/update payload.
func ValidateNewsInput(in models.NewsInput) []string {
	errs := ValidateMultiLanguage(in.Title, "title")
	errs = append(errs, ValidateMultiLanguage(in.Description, "description")...)
	if strings.TrimSpace(in.PublishedByID) == "" {
		errs = append(errs, "publishedById is required")
	}
	return errs
}

// ValidateActivityInput checks an activity create/update payload.
func ValidateActivityInput(in models.ActivityInput) []string {
	errs := ValidateMultiLanguage(in.Name, "name")
	errs = append(errs, ValidateMultiLanguage(in.Period, "period")...)
	errs = append(errs, ValidateMultiLanguage(in.Description, "description")...)
	if strings.TrimSpace(in.CreatedByID) == "" {
		errs = append(errs, "createdById is required")
	}
	return errs
}

// ValidateProjectInput checks a project create/update payload.
func ValidateProjectInput(in models.ProjectInput) []string {
	errs := ValidateMultiLanguage(in.Name, "name")
	errs = append(errs, ValidateMultiLanguage(in.Description, "description")...)
	if in.Budget < 0 {
		errs = append(errs, "Budget must not be negative")
	}
	if strings.TrimSpace(in.CreatedByID) == "" {
		errs = append(errs, "createdById is required")
	}
	return errs
}

// ValidateSermonInput checks a sermon create/update payload.
func ValidateSermonInput(in models.SermonInput) []string {
	errs := ValidateMultiLanguage(in.Topic, "topic")
	errs = append(errs, ValidateMultiLanguage(in.Description, "description")...)
	if strings.TrimSpace(in.Video) == "" {
		errs = append(errs, "Video is required")
	}
	if strings.TrimSpace(in.PreachedByID) == "" {
		errs = append(errs, "preachedById is required")
	}
	if strings.TrimSpace(in.PublishedByID) == "" {
		errs = append(errs, "publishedById is required")
	}
	return errs
}

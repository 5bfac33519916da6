package profile

import (
	"regexp"
	"strings"
)

const (
	MinExperienceYears = 0
	MaxExperienceYears = 50
)

// Context selects which fields are mandatory. Onboarding requires an industry
// and a specialization; the edit dialog leaves both optional.
type Context int

const (
	ContextOnboarding Context = iota
	ContextEdit
)

// FieldErrors maps a field name to its validation message. Fields are
// validated independently so multiple errors surface at once.
type FieldErrors map[string]string

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidateName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Name is required"
	}
	return ""
}

func ValidateEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return "Email is required"
	}
	if !emailRe.MatchString(email) {
		return "Invalid email address"
	}
	return ""
}

// ValidateExperience checks the inclusive [0, 50] bound. A nil value is
// valid: experience is optional in every context.
func ValidateExperience(years *int) string {
	if years == nil {
		return ""
	}
	if *years < MinExperienceYears || *years > MaxExperienceYears {
		return "Experience must be between 0 and 50 years"
	}
	return ""
}

// Validate applies the full field-level rule set to a submission-shaped
// record. Skills and bio carry no format constraint beyond being text.
func Validate(rec Record, vctx Context) FieldErrors {
	errs := FieldErrors{}

	if msg := ValidateName(rec.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := ValidateEmail(rec.Email); msg != "" {
		errs["email"] = msg
	}
	if msg := ValidateExperience(rec.ExperienceYears); msg != "" {
		errs["experience"] = msg
	}

	if rec.IndustryKey != nil {
		if key := strings.TrimSpace(*rec.IndustryKey); key != "" && !ValidIndustryKey(key) {
			errs["industry"] = "Invalid industry identifier"
		}
	}
	if vctx == ContextOnboarding {
		if rec.IndustryKey == nil || strings.TrimSpace(*rec.IndustryKey) == "" {
			errs["industry"] = "Please select an industry"
		}
	}

	return errs
}

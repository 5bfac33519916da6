package profile

import "testing"

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestValidateExperienceBounds(t *testing.T) {
	if msg := ValidateExperience(nil); msg != "" {
		t.Fatalf("nil experience should be valid, got %q", msg)
	}
	if msg := ValidateExperience(intPtr(0)); msg != "" {
		t.Fatalf("0 should be accepted, got %q", msg)
	}
	if msg := ValidateExperience(intPtr(50)); msg != "" {
		t.Fatalf("50 should be accepted, got %q", msg)
	}
	if msg := ValidateExperience(intPtr(-1)); msg == "" {
		t.Fatalf("-1 should be rejected")
	}
	if msg := ValidateExperience(intPtr(51)); msg == "" {
		t.Fatalf("51 should be rejected")
	}
}

func TestValidateEmail(t *testing.T) {
	if msg := ValidateEmail("ann@x.com"); msg != "" {
		t.Fatalf("valid email rejected: %q", msg)
	}
	for _, bad := range []string{"", "ann", "ann@", "@x.com", "ann@x", "a nn@x.com"} {
		if msg := ValidateEmail(bad); msg == "" {
			t.Fatalf("expected %q rejected", bad)
		}
	}
}

func TestValidateFieldsIndependent(t *testing.T) {
	rec := Record{
		Name:            "",
		Email:           "not-an-email",
		ExperienceYears: intPtr(99),
	}
	errs := Validate(rec, ContextEdit)
	for _, f := range []string{"name", "email", "experience"} {
		if _, ok := errs[f]; !ok {
			t.Fatalf("expected error for %s, got %v", f, errs)
		}
	}
}

func TestValidateIndustryByContext(t *testing.T) {
	rec := Record{Name: "Ann", Email: "ann@x.com"}

	if errs := Validate(rec, ContextEdit); !errs.Empty() {
		t.Fatalf("industry should be optional in edit context, got %v", errs)
	}
	errs := Validate(rec, ContextOnboarding)
	if _, ok := errs["industry"]; !ok {
		t.Fatalf("industry should be required in onboarding context, got %v", errs)
	}

	rec.IndustryKey = strPtr("Tech-Software")
	errs = Validate(rec, ContextEdit)
	if _, ok := errs["industry"]; !ok {
		t.Fatalf("malformed industry key should be rejected, got %v", errs)
	}

	rec.IndustryKey = strPtr("tech-software-development")
	if errs := Validate(rec, ContextEdit); !errs.Empty() {
		t.Fatalf("well-formed key should pass, got %v", errs)
	}
}

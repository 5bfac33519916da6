package profile

import (
	"regexp"
	"strings"
)

// NormalizeSkills splits a comma-separated skill string into trimmed tokens,
// dropping empty ones. Order is preserved as entered; duplicates are allowed.
func NormalizeSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// TrimSkills trims each token of an already-split skill list, dropping empties.
func TrimSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// JoinSkills renders a skill list back into the single editable text field.
func JoinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}

// SlugifySpecialization lowercases a specialization name and replaces spaces
// with hyphens, e.g. "Software Development" -> "software-development".
func SlugifySpecialization(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// ComposeIndustryKey builds the composite "<industryId>-<specialization-slug>"
// identifier. Empty industry yields an empty key.
func ComposeIndustryKey(industryID, specialization string) string {
	industryID = strings.TrimSpace(industryID)
	if industryID == "" {
		return ""
	}
	slug := SlugifySpecialization(specialization)
	if slug == "" {
		return industryID
	}
	return industryID + "-" + slug
}

var industryKeyRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidIndustryKey checks the composite key format only. Membership in the
// reference table is a client concern; stored keys must survive table edits.
func ValidIndustryKey(key string) bool {
	return industryKeyRe.MatchString(key)
}

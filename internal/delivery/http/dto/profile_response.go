package dto

import (
	"time"

	"profile-sync/internal/domain/profile"
)

// ProfileResponse is the wire shape of a ProfileRecord. Optional fields are
// emitted as null so clients can distinguish "unset" from empty text.
type ProfileResponse struct {
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	IndustryKey     *string   `json:"industryKey"`
	ExperienceYears *int      `json:"experienceYears"`
	Skills          []string  `json:"skills"`
	Bio             *string   `json:"bio"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func NewProfileResponse(rec profile.Record) ProfileResponse {
	skills := rec.Skills
	if skills == nil {
		skills = []string{}
	}
	return ProfileResponse{
		Name:            rec.Name,
		Email:           rec.Email,
		IndustryKey:     rec.IndustryKey,
		ExperienceYears: rec.ExperienceYears,
		Skills:          skills,
		Bio:             rec.Bio,
		UpdatedAt:       rec.UpdatedAt,
	}
}

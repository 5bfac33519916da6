package profile

import (
	"time"

	"github.com/google/uuid"
)

// Record is the server-owned professional profile, one per user identity.
// A POST is an upsert: the whole record is replaced under last-write-wins.
type Record struct {
	UserID          uuid.UUID
	Name            string
	Email           string
	IndustryKey     *string
	ExperienceYears *int
	Skills          []string
	Bio             *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DefaultRecord is the well-formed empty record returned when a caller has
// no stored profile yet. The onboarding path depends on this never erroring.
func DefaultRecord(userID uuid.UUID) Record {
	return Record{
		UserID: userID,
		Skills: []string{},
	}
}

package profile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"profile-sync/internal/domain/industry"
	"profile-sync/internal/domain/profile"
	"profile-sync/internal/infrastructure/cache"

	"github.com/google/uuid"
)

var ErrInternal = errors.New("internal error")

// ValidationError carries the per-field messages of a rejected payload.
// No partial write happens when it is returned.
type ValidationError struct {
	Fields profile.FieldErrors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// UpdateInput is the submission shape of a POST: skills already split into
// tokens, industry key already composed by the client.
type UpdateInput struct {
	Name            string
	Email           string
	IndustryKey     *string
	ExperienceYears *int
	Skills          []string
	Bio             *string
}

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type IndustryLister interface {
	List(ctx context.Context) (industry.Table, error)
}

type Service struct {
	profiles   profile.Repository
	industries IndustryLister
	cache      Cache
	logger     *log.Logger
}

func NewService(profiles profile.Repository, industries IndustryLister, c Cache, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{profiles: profiles, industries: industries, cache: c, logger: logger}
}

// Get returns the caller's stored record, or a well-formed default record
// when none exists yet. The onboarding path depends on this never erroring
// for an empty profile.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (profile.Record, error) {
	if s.cache != nil {
		var cached profile.Record
		if ok, _ := s.cache.GetJSON(ctx, cache.ProfileKey(userID), &cached); ok {
			return cached, nil
		}
	}

	rec, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.DefaultRecord(userID), nil
		}
		s.logger.Printf("[Profile] get failed user_id=%s: %v", userID, err)
		return profile.Record{}, ErrInternal
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, cache.ProfileKey(userID), rec, 0)
	}
	return rec, nil
}

// Update re-validates the payload at the trust boundary, normalizes it, and
// replaces the caller's record in one atomic upsert. The stored record is
// echoed back; on validation failure nothing is written.
func (s *Service) Update(ctx context.Context, userID uuid.UUID, in UpdateInput) (profile.Record, error) {
	rec := profile.Record{
		UserID:          userID,
		Name:            strings.TrimSpace(in.Name),
		Email:           normalizeEmail(in.Email),
		IndustryKey:     normalizeOptional(in.IndustryKey),
		ExperienceYears: in.ExperienceYears,
		Skills:          profile.TrimSkills(in.Skills),
		Bio:             normalizeOptional(in.Bio),
	}

	if errs := profile.Validate(rec, profile.ContextEdit); !errs.Empty() {
		return profile.Record{}, &ValidationError{Fields: errs}
	}

	stored, err := s.profiles.Upsert(ctx, rec)
	if err != nil {
		s.logger.Printf("[Profile] upsert failed user_id=%s: %v", userID, err)
		return profile.Record{}, ErrInternal
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, cache.ProfileKey(userID))
	}
	return stored, nil
}

// Industries returns the reference table, cached under a shared key since it
// changes only when an operator edits it.
func (s *Service) Industries(ctx context.Context) (industry.Table, error) {
	if s.cache != nil {
		var cached industry.Table
		if ok, _ := s.cache.GetJSON(ctx, cache.IndustriesKey, &cached); ok && len(cached) > 0 {
			return cached, nil
		}
	}

	table, err := s.industries.List(ctx)
	if err != nil {
		s.logger.Printf("[Profile] list industries failed: %v", err)
		return nil, ErrInternal
	}

	if s.cache != nil && len(table) > 0 {
		_ = s.cache.SetJSON(ctx, cache.IndustriesKey, table, 0)
	}
	return table, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeOptional(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}

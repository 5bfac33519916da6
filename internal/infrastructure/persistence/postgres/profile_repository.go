package postgres

import (
	"context"
	"database/sql"
	"errors"

	"profile-sync/internal/database"
	"profile-sync/internal/domain/profile"

	"github.com/google/uuid"
)

type ProfileRepository struct {
	db database.DB
}

func NewProfileRepository(db database.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Get(ctx context.Context, userID uuid.UUID) (profile.Record, error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT user_id, name, email, industry_key, experience_years, skills, bio, created_at, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	)
	return scanRecord(row)
}

// Upsert replaces the caller's record in a single atomic statement. Concurrent
// writers for the same identity race under last-write-wins.
func (r *ProfileRepository) Upsert(ctx context.Context, rec profile.Record) (profile.Record, error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO profiles (user_id, name, email, industry_key, experience_years, skills, bio)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO UPDATE SET
		   name = EXCLUDED.name,
		   email = EXCLUDED.email,
		   industry_key = EXCLUDED.industry_key,
		   experience_years = EXCLUDED.experience_years,
		   skills = EXCLUDED.skills,
		   bio = EXCLUDED.bio,
		   updated_at = now()
		 RETURNING user_id, name, email, industry_key, experience_years, skills, bio, created_at, updated_at`,
		rec.UserID, rec.Name, rec.Email, rec.IndustryKey, rec.ExperienceYears, rec.Skills, rec.Bio,
	)
	return scanRecord(row)
}

func scanRecord(row database.Row) (profile.Record, error) {
	var rec profile.Record
	err := row.Scan(
		&rec.UserID,
		&rec.Name,
		&rec.Email,
		&rec.IndustryKey,
		&rec.ExperienceYears,
		&rec.Skills,
		&rec.Bio,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profile.Record{}, profile.ErrNotFound
		}
		return profile.Record{}, err
	}
	if rec.Skills == nil {
		rec.Skills = []string{}
	}
	return rec, nil
}

var _ profile.Repository = (*ProfileRepository)(nil)

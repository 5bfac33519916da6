package seeder

import (
	"context"

	"profile-sync/internal/database"
)

// ProfilesSchemaSeeder seeds no data; it verifies the profiles table matches
// what the repositories expect before the server starts taking writes.
type ProfilesSchemaSeeder struct{}

func (ProfilesSchemaSeeder) Name() string { return "profiles-schema" }

func (ProfilesSchemaSeeder) Run(ctx context.Context, db database.DB) error {
	return EnsureTableColumns(
		ctx, db, "profiles",
		"user_id", "name", "email", "industry_key", "experience_years", "skills", "bio",
		"created_at", "updated_at",
	)
}

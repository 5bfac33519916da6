package seeder

import (
	"context"
	"fmt"

	"profile-sync/internal/database"
	"profile-sync/internal/domain/industry"
)

// IndustriesSeeder inserts the built-in industry reference table. Existing
// rows are left alone so operator edits survive restarts.
type IndustriesSeeder struct {
	Table industry.Table
}

func (s IndustriesSeeder) Name() string { return "industries" }

func (s IndustriesSeeder) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	if err := EnsureTableColumns(ctx, db, "industries", "id", "name", "specializations", "position"); err != nil {
		return err
	}

	table := s.Table
	if len(table) == 0 {
		table = industry.Defaults()
	}

	for i, ind := range table {
		_, err := db.Exec(
			ctx,
			`INSERT INTO industries (id, name, specializations, position)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (id) DO NOTHING`,
			ind.ID, ind.Name, ind.Specializations, i,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

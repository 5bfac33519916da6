package postgres

import (
	"context"

	"profile-sync/internal/database"
	"profile-sync/internal/domain/industry"
)

type IndustryRepository struct {
	db database.DB
}

func NewIndustryRepository(db database.DB) *IndustryRepository {
	return &IndustryRepository{db: db}
}

func (r *IndustryRepository) List(ctx context.Context) (industry.Table, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, specializations FROM industries ORDER BY position ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(industry.Table, 0)
	for rows.Next() {
		var ind industry.Industry
		if err := rows.Scan(&ind.ID, &ind.Name, &ind.Specializations); err != nil {
			return nil, err
		}
		if ind.Specializations == nil {
			ind.Specializations = []string{}
		}
		out = append(out, ind)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

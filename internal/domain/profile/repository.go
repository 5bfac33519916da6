package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("profile not found")

type Repository interface {
	Get(ctx context.Context, userID uuid.UUID) (Record, error)
	Upsert(ctx context.Context, rec Record) (Record, error)
}

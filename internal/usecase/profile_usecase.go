package usecase

import (
	"context"
	"log"

	"profile-sync/internal/domain/industry"
	"profile-sync/internal/domain/profile"
	ucprofile "profile-sync/internal/usecase/profile"

	"github.com/google/uuid"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (profile.Record, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ucprofile.UpdateInput) (profile.Record, error)
	Industries(ctx context.Context) (industry.Table, error)
}

type Profile struct {
	svc *ucprofile.Service
}

func NewProfileUsecase(profiles profile.Repository, industries ucprofile.IndustryLister, c ucprofile.Cache, logger *log.Logger) *Profile {
	return &Profile{svc: ucprofile.NewService(profiles, industries, c, logger)}
}

func (p *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (profile.Record, error) {
	return p.svc.Get(ctx, userID)
}

func (p *Profile) UpdateProfile(ctx context.Context, userID uuid.UUID, in ucprofile.UpdateInput) (profile.Record, error) {
	return p.svc.Update(ctx, userID, in)
}

func (p *Profile) Industries(ctx context.Context) (industry.Table, error) {
	return p.svc.Industries(ctx)
}

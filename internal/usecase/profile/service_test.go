package profile

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"profile-sync/internal/domain/industry"
	"profile-sync/internal/domain/profile"

	"github.com/google/uuid"
)

type fakeRepo struct {
	recs    map[uuid.UUID]profile.Record
	getErr  error
	saveErr error
	upserts int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{recs: map[uuid.UUID]profile.Record{}}
}

func (f *fakeRepo) Get(_ context.Context, userID uuid.UUID) (profile.Record, error) {
	if f.getErr != nil {
		return profile.Record{}, f.getErr
	}
	rec, ok := f.recs[userID]
	if !ok {
		return profile.Record{}, profile.ErrNotFound
	}
	return rec, nil
}

func (f *fakeRepo) Upsert(_ context.Context, rec profile.Record) (profile.Record, error) {
	if f.saveErr != nil {
		return profile.Record{}, f.saveErr
	}
	f.upserts++
	stored, existed := f.recs[rec.UserID]
	if existed {
		rec.CreatedAt = stored.CreatedAt
	} else {
		rec.CreatedAt = time.Now().UTC()
	}
	rec.UpdatedAt = time.Now().UTC()
	f.recs[rec.UserID] = rec
	return rec, nil
}

type fakeIndustries struct {
	table industry.Table
	err   error
}

func (f fakeIndustries) List(context.Context) (industry.Table, error) {
	return f.table, f.err
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestGet_ReturnsDefaultRecordWhenMissing(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeIndustries{}, nil, nil)

	userID := uuid.New()
	rec, err := svc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("expected default record, got error %v", err)
	}
	if rec.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, rec.UserID)
	}
	if rec.Skills == nil || len(rec.Skills) != 0 {
		t.Fatalf("expected empty skills slice, got %v", rec.Skills)
	}
}

func TestGet_StoreFailureSurfacesInternal(t *testing.T) {
	repo := newFakeRepo()
	repo.getErr = errors.New("connection refused")
	svc := NewService(repo, fakeIndustries{}, nil, nil)

	if _, err := svc.Get(context.Background(), uuid.New()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestUpdate_ValidationFailureWritesNothing(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeIndustries{}, nil, nil)

	_, err := svc.Update(context.Background(), uuid.New(), UpdateInput{
		Name:            "",
		Email:           "bad",
		ExperienceYears: intPtr(51),
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, f := range []string{"name", "email", "experience"} {
		if _, ok := verr.Fields[f]; !ok {
			t.Fatalf("expected field error for %s, got %v", f, verr.Fields)
		}
	}
	if repo.upserts != 0 {
		t.Fatalf("expected no write, got %d upserts", repo.upserts)
	}
}

func TestUpdate_NormalizesAndEchoes(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeIndustries{}, nil, nil)

	userID := uuid.New()
	rec, err := svc.Update(context.Background(), userID, UpdateInput{
		Name:        "  Ann  ",
		Email:       " Ann@X.com ",
		IndustryKey: strPtr("tech-software-development"),
		Skills:      []string{" Go ", "", "Rust"},
		Bio:         strPtr("   "),
	})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if rec.Name != "Ann" {
		t.Fatalf("expected trimmed name, got %q", rec.Name)
	}
	if rec.Email != "ann@x.com" {
		t.Fatalf("expected lowercased email, got %q", rec.Email)
	}
	if !reflect.DeepEqual(rec.Skills, []string{"Go", "Rust"}) {
		t.Fatalf("expected trimmed skills, got %v", rec.Skills)
	}
	if rec.Bio != nil {
		t.Fatalf("expected blank bio stored as nil, got %q", *rec.Bio)
	}

	got, err := svc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if got.Name != rec.Name || got.Email != rec.Email || !reflect.DeepEqual(got.Skills, rec.Skills) {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, rec)
	}
}

func TestUpdate_UpsertIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeIndustries{}, nil, nil)

	userID := uuid.New()
	in := UpdateInput{
		Name:            "Ann",
		Email:           "ann@x.com",
		IndustryKey:     strPtr("tech-software-development"),
		ExperienceYears: intPtr(5),
		Skills:          []string{"Go", "Rust"},
		Bio:             strPtr("..."),
	}

	first, err := svc.Update(context.Background(), userID, in)
	if err != nil {
		t.Fatalf("first update: %v", err)
	}
	second, err := svc.Update(context.Background(), userID, in)
	if err != nil {
		t.Fatalf("second update: %v", err)
	}

	first.UpdatedAt = time.Time{}
	second.UpdatedAt = time.Time{}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("upsert not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestIndustries_StoreFailure(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeIndustries{err: errors.New("down")}, nil, nil)
	if _, err := svc.Industries(context.Background()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestIndustries_ReturnsTable(t *testing.T) {
	table := industry.Defaults()
	svc := NewService(newFakeRepo(), fakeIndustries{table: table}, nil, nil)

	got, err := svc.Industries(context.Background())
	if err != nil {
		t.Fatalf("industries error: %v", err)
	}
	if len(got) != len(table) {
		t.Fatalf("expected %d industries, got %d", len(table), len(got))
	}
	if _, ok := got.FindByID("tech"); !ok {
		t.Fatalf("expected tech industry present")
	}
}

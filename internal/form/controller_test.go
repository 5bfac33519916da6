package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"profile-sync/internal/domain/industry"
	"profile-sync/internal/domain/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	record   profile.Record
	fetchErr error
	saveErr  error
	saved    []Submission
	onSave   func(Submission) (profile.Record, error)
}

func (f *fakeClient) FetchProfile(context.Context) (profile.Record, error) {
	if f.fetchErr != nil {
		return profile.Record{}, f.fetchErr
	}
	return f.record, nil
}

func (f *fakeClient) SaveProfile(_ context.Context, sub Submission) (profile.Record, error) {
	f.saved = append(f.saved, sub)
	if f.onSave != nil {
		return f.onSave(sub)
	}
	if f.saveErr != nil {
		return profile.Record{}, f.saveErr
	}
	// Echo like the server: normalized payload becomes the stored record.
	rec := profile.Record{
		Name:            sub.Name,
		Email:           sub.Email,
		ExperienceYears: sub.ExperienceYears,
		Skills:          sub.Skills,
		UpdatedAt:       time.Now().UTC(),
	}
	if sub.IndustryKey != "" {
		k := sub.IndustryKey
		rec.IndustryKey = &k
	}
	if sub.Bio != "" {
		b := sub.Bio
		rec.Bio = &b
	}
	f.record = rec
	return rec, nil
}

func testTable() industry.Table {
	return industry.Table{
		{ID: "tech", Name: "Technology", Specializations: []string{"Software Development", "Data Science"}},
		{ID: "finance", Name: "Finance", Specializations: []string{"Accounting"}},
	}
}

func openOnboarding(t *testing.T, c SyncClient) *Controller {
	t.Helper()
	ctl := NewController(c, testTable(), profile.ContextOnboarding)
	require.NoError(t, ctl.Open(context.Background()))
	require.Equal(t, StateReady, ctl.State())
	return ctl
}

func TestOpen_EditHydratesFromRecord(t *testing.T) {
	key := "tech-software-development"
	years := 5
	bio := "backend things"
	fc := &fakeClient{record: profile.Record{
		Name:            "Ann",
		Email:           "ann@x.com",
		IndustryKey:     &key,
		ExperienceYears: &years,
		Skills:          []string{"Go", "Rust"},
		Bio:             &bio,
	}}

	ctl := NewController(fc, testTable(), profile.ContextEdit)
	require.NoError(t, ctl.Open(context.Background()))

	st := ctl.Form()
	assert.Equal(t, "Ann", st.Name)
	assert.Equal(t, "Go, Rust", st.SkillsText)
	assert.Equal(t, key, st.IndustryKey)
	require.NotNil(t, st.ExperienceYears)
	assert.Equal(t, 5, *st.ExperienceYears)
	assert.Equal(t, "backend things", st.Bio)
}

func TestOpen_FetchFailureFallsBackToDefaults(t *testing.T) {
	fc := &fakeClient{fetchErr: errors.New("boom")}
	ctl := NewController(fc, testTable(), profile.ContextEdit)

	err := ctl.Open(context.Background())
	require.ErrorIs(t, err, ErrDefaultsInUse)
	assert.Equal(t, StateReady, ctl.State(), "form must stay usable on defaults")
	assert.Empty(t, ctl.Form().Name)
}

func TestSelectIndustry_PopulatesAndClearsSpecialization(t *testing.T) {
	ctl := openOnboarding(t, &fakeClient{})

	require.NoError(t, ctl.SelectIndustry("tech"))
	assert.Equal(t, []string{"Software Development", "Data Science"}, ctl.Specializations())

	require.NoError(t, ctl.SelectSpecialization("Data Science"))
	assert.Equal(t, "Data Science", ctl.Form().Specialization)

	// Changing industry invalidates the old specialization.
	require.NoError(t, ctl.SelectIndustry("finance"))
	assert.Empty(t, ctl.Form().Specialization)
	assert.Equal(t, []string{"Accounting"}, ctl.Specializations())

	// Clearing the industry clears both.
	require.NoError(t, ctl.SelectIndustry(""))
	assert.Empty(t, ctl.Form().IndustryID)
	assert.Empty(t, ctl.Specializations())
}

func TestSelectIndustry_UnknownID(t *testing.T) {
	ctl := openOnboarding(t, &fakeClient{})
	assert.ErrorIs(t, ctl.SelectIndustry("nope"), ErrUnknownIndustry)
}

func TestSelectSpecialization_RequiresIndustry(t *testing.T) {
	ctl := openOnboarding(t, &fakeClient{})
	assert.Error(t, ctl.SelectSpecialization("Software Development"))
}

func TestSetField_ErrorsAreIndependent(t *testing.T) {
	ctl := openOnboarding(t, &fakeClient{})

	require.NoError(t, ctl.SetField("email", "not-an-email"))
	require.NoError(t, ctl.SetField("experience", "99"))
	require.NoError(t, ctl.SetField("bio", "still editable"))

	st := ctl.Form()
	assert.Contains(t, st.Errors, "email")
	assert.Contains(t, st.Errors, "experience")
	assert.Equal(t, "still editable", st.Bio)

	require.NoError(t, ctl.SetField("email", "ann@x.com"))
	assert.NotContains(t, ctl.Form().Errors, "email")
}

func TestSetField_ExperienceParsing(t *testing.T) {
	ctl := openOnboarding(t, &fakeClient{})

	require.NoError(t, ctl.SetField("experience", "0"))
	st := ctl.Form()
	require.NotNil(t, st.ExperienceYears)
	assert.Equal(t, 0, *st.ExperienceYears)
	assert.NotContains(t, st.Errors, "experience")

	require.NoError(t, ctl.SetField("experience", "abc"))
	assert.Contains(t, ctl.Form().Errors, "experience")

	require.NoError(t, ctl.SetField("experience", ""))
	st = ctl.Form()
	assert.Nil(t, st.ExperienceYears)
	assert.NotContains(t, st.Errors, "experience")
}

func TestCompletionPercentage_OnboardingTotals(t *testing.T) {
	ctl := openOnboarding(t, &fakeClient{})

	// 4 tracked fields until an industry is chosen.
	assert.Equal(t, 0, ctl.CompletionPercentage())

	require.NoError(t, ctl.SetField("skills", "Go"))
	assert.Equal(t, 25, ctl.CompletionPercentage())

	// Choosing an industry expands the total to 5 while adding one filled.
	require.NoError(t, ctl.SelectIndustry("tech"))
	assert.Equal(t, 40, ctl.CompletionPercentage())

	require.NoError(t, ctl.SelectSpecialization("Software Development"))
	assert.Equal(t, 60, ctl.CompletionPercentage())

	require.NoError(t, ctl.SetField("experience", "0"))
	assert.Equal(t, 80, ctl.CompletionPercentage())

	require.NoError(t, ctl.SetField("bio", "hello"))
	assert.Equal(t, 100, ctl.CompletionPercentage())
}

func TestCompletionPercentage_MonotonicAsFieldsFill(t *testing.T) {
	ctl := NewController(&fakeClient{}, testTable(), profile.ContextEdit)
	require.NoError(t, ctl.Open(context.Background()))

	prev := ctl.CompletionPercentage()
	steps := []struct{ field, value string }{
		{"name", "Ann"},
		{"email", "ann@x.com"},
		{"industry", "tech-software-development"},
		{"experience", "3"},
		{"skills", "Go"},
		{"bio", "hi"},
	}
	for _, s := range steps {
		require.NoError(t, ctl.SetField(s.field, s.value))
		cur := ctl.CompletionPercentage()
		assert.GreaterOrEqual(t, cur, prev, "filling %s must not decrease completion", s.field)
		prev = cur
	}
	assert.Equal(t, 100, prev)
}

func TestSubmit_ValidationFailureHasNoNetworkEffect(t *testing.T) {
	fc := &fakeClient{}
	ctl := openOnboarding(t, fc)

	_, err := ctl.Submit(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "industry")
	assert.Empty(t, fc.saved, "no POST may happen on validation failure")
	assert.Equal(t, StateReady, ctl.State())
}

func TestSubmit_ComposesKeyAndNormalizesSkills(t *testing.T) {
	fc := &fakeClient{}
	ctl := openOnboarding(t, fc)

	require.NoError(t, ctl.SetField("name", "Ann"))
	require.NoError(t, ctl.SetField("email", "ann@x.com"))
	require.NoError(t, ctl.SelectIndustry("tech"))
	require.NoError(t, ctl.SelectSpecialization("Software Development"))
	require.NoError(t, ctl.SetField("skills", "Python, JavaScript,  , Go"))

	rec, err := ctl.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, fc.saved, 1)
	sub := fc.saved[0]
	assert.Equal(t, "tech-software-development", sub.IndustryKey)
	assert.Equal(t, []string{"Python", "JavaScript", "Go"}, sub.Skills)

	// Server echo is authoritative and merged back into the form.
	assert.Equal(t, StateReady, ctl.State())
	assert.Equal(t, "Python, JavaScript, Go", ctl.Form().SkillsText)
	require.NotNil(t, rec.IndustryKey)
	assert.Equal(t, "tech-software-development", *rec.IndustryKey)
}

func TestSubmit_TransportFailureIsRetryable(t *testing.T) {
	fc := &fakeClient{saveErr: errors.New("connection reset")}
	ctl := openOnboarding(t, fc)

	require.NoError(t, ctl.SetField("name", "Ann"))
	require.NoError(t, ctl.SetField("email", "ann@x.com"))
	require.NoError(t, ctl.SelectIndustry("tech"))
	require.NoError(t, ctl.SelectSpecialization("Software Development"))
	require.NoError(t, ctl.SetField("skills", "Go"))

	_, err := ctl.Submit(context.Background())
	require.ErrorIs(t, err, ErrRetryable)
	assert.Equal(t, StateError, ctl.State())
	assert.Equal(t, "Go", ctl.Form().SkillsText, "form state preserved for retry")

	// Retrying verbatim succeeds once the transport recovers.
	fc.saveErr = nil
	rec, err := ctl.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ann", rec.Name)
	assert.Len(t, fc.saved, 2)
	assert.Equal(t, fc.saved[0], fc.saved[1], "retry must resend the identical payload")
}

func TestSubmit_ServerValidationSurfacesPerField(t *testing.T) {
	fc := &fakeClient{}
	fc.onSave = func(Submission) (profile.Record, error) {
		return profile.Record{}, &ValidationError{Fields: profile.FieldErrors{"email": "Invalid email address"}}
	}
	ctl := openOnboarding(t, fc)

	require.NoError(t, ctl.SetField("name", "Ann"))
	require.NoError(t, ctl.SetField("email", "ann@x.com"))
	require.NoError(t, ctl.SelectIndustry("tech"))
	require.NoError(t, ctl.SelectSpecialization("Software Development"))

	_, err := ctl.Submit(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, ctl.Form().Errors, "email")
}

func TestSubmit_BlocksReentrantSubmit(t *testing.T) {
	fc := &fakeClient{}
	var ctl *Controller
	var nested error
	fc.onSave = func(sub Submission) (profile.Record, error) {
		_, nested = ctl.Submit(context.Background())
		return profile.Record{Name: sub.Name, Email: sub.Email, Skills: sub.Skills}, nil
	}

	ctl = openOnboarding(t, fc)
	require.NoError(t, ctl.SetField("name", "Ann"))
	require.NoError(t, ctl.SetField("email", "ann@x.com"))
	require.NoError(t, ctl.SelectIndustry("tech"))
	require.NoError(t, ctl.SelectSpecialization("Software Development"))

	_, err := ctl.Submit(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, nested, ErrSubmitInProgress)
}

func TestClose_DiscardsState(t *testing.T) {
	ctl := openOnboarding(t, &fakeClient{})
	require.NoError(t, ctl.SetField("bio", "draft"))

	ctl.Close()
	assert.Equal(t, StateClosed, ctl.State())
	assert.Empty(t, ctl.Form().Bio)
	assert.ErrorIs(t, ctl.SetField("bio", "x"), ErrNotOpen)
}

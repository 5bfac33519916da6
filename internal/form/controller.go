// Package form implements the client half of the profile synchronization
// protocol: transient editing state, field validation, derived completion
// metrics, and normalized submission to the sync endpoint.
package form

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"profile-sync/internal/domain/industry"
	"profile-sync/internal/domain/profile"
)

// SessionState is the editing-session lifecycle. Transitions happen only
// inside controller methods, never through ambient flags.
type SessionState int

const (
	StateClosed SessionState = iota
	StateLoading
	StateReady
	StateSubmitting
	StateError
)

func (s SessionState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

var (
	// ErrDefaultsInUse signals that the current record could not be loaded
	// and the form was seeded from DefaultRecord. The form stays editable.
	ErrDefaultsInUse = errors.New("could not load profile, using defaults")

	// ErrSubmitInProgress rejects a re-entrant Submit. Serializing
	// submissions from one client keeps an older payload from overwriting
	// a newer one.
	ErrSubmitInProgress = errors.New("submit already in progress")

	// ErrRetryable wraps transport failures. FormState is untouched, so the
	// caller may re-invoke Submit verbatim; the upsert is idempotent.
	ErrRetryable = errors.New("retryable submit failure")

	ErrNotOpen         = errors.New("editing session not open")
	ErrUnknownIndustry = errors.New("unknown industry")
)

// ValidationError carries field messages from a failed Submit. It is also
// produced when the server rejects a payload, so both sides surface
// identically.
type ValidationError struct {
	Fields profile.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%d field(s) failed validation", len(e.Fields))
}

// Submission is the normalized payload sent to the sync endpoint.
type Submission struct {
	Name            string
	Email           string
	IndustryKey     string
	ExperienceYears *int
	Skills          []string
	Bio             string
}

// SyncClient is the endpoint collaborator. Implementations live in
// internal/client; tests supply fakes.
type SyncClient interface {
	FetchProfile(ctx context.Context) (profile.Record, error)
	SaveProfile(ctx context.Context, sub Submission) (profile.Record, error)
}

// State is the transient, client-owned working copy of the profile fields.
// Skills are held as a single comma-separated text field while editing.
type State struct {
	Name            string
	Email           string
	IndustryID      string
	Specialization  string
	IndustryKey     string
	ExperienceYears *int
	SkillsText      string
	Bio             string

	Errors profile.FieldErrors
}

type Controller struct {
	client    SyncClient
	reference industry.Table
	fctx      profile.Context

	state           SessionState
	form            State
	specializations []string
}

// NewController builds a controller over the externally supplied industry
// reference table. fctx selects onboarding or edit-dialog rules.
func NewController(client SyncClient, reference industry.Table, fctx profile.Context) *Controller {
	return &Controller{
		client:    client,
		reference: reference,
		fctx:      fctx,
		state:     StateClosed,
		form:      State{Errors: profile.FieldErrors{}},
	}
}

func (c *Controller) State() SessionState { return c.state }

// Form returns a copy of the current state; errors map included by value.
func (c *Controller) Form() State {
	cp := c.form
	cp.Errors = profile.FieldErrors{}
	for k, v := range c.form.Errors {
		cp.Errors[k] = v
	}
	return cp
}

// Specializations lists the valid specializations for the selected industry.
func (c *Controller) Specializations() []string {
	return append([]string(nil), c.specializations...)
}

// Open starts the editing session. Onboarding starts empty; the edit dialog
// hydrates from the current record. A failed fetch seeds DefaultRecord and
// returns ErrDefaultsInUse so the caller can show a notice; the session is
// Ready either way.
func (c *Controller) Open(ctx context.Context) error {
	c.state = StateLoading
	c.form = State{Errors: profile.FieldErrors{}}
	c.specializations = nil

	if c.fctx == profile.ContextOnboarding || c.client == nil {
		c.state = StateReady
		return nil
	}

	rec, err := c.client.FetchProfile(ctx)
	if err != nil {
		c.hydrate(profile.DefaultRecord(rec.UserID))
		c.state = StateReady
		return ErrDefaultsInUse
	}

	c.hydrate(rec)
	c.state = StateReady
	return nil
}

// Close discards the session regardless of unsaved changes.
func (c *Controller) Close() {
	c.state = StateClosed
	c.form = State{Errors: profile.FieldErrors{}}
	c.specializations = nil
}

func (c *Controller) hydrate(rec profile.Record) {
	c.form = State{
		Name:            rec.Name,
		Email:           rec.Email,
		SkillsText:      profile.JoinSkills(rec.Skills),
		ExperienceYears: rec.ExperienceYears,
		Errors:          profile.FieldErrors{},
	}
	if rec.IndustryKey != nil {
		c.form.IndustryKey = *rec.IndustryKey
	}
	if rec.Bio != nil {
		c.form.Bio = *rec.Bio
	}
}

// SelectIndustry sets the industry, repopulates the valid specializations,
// and clears any previous specialization since it may no longer apply.
// An empty id clears both selections.
func (c *Controller) SelectIndustry(id string) error {
	if !c.editable() {
		return ErrNotOpen
	}

	id = strings.TrimSpace(id)
	if id == "" {
		c.form.IndustryID = ""
		c.form.Specialization = ""
		c.specializations = nil
		return nil
	}

	ind, ok := c.reference.FindByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownIndustry, id)
	}

	c.form.IndustryID = ind.ID
	c.form.Specialization = ""
	c.specializations = append([]string(nil), ind.Specializations...)
	delete(c.form.Errors, "industry")
	c.recover()
	return nil
}

// SelectSpecialization is only meaningful after SelectIndustry.
func (c *Controller) SelectSpecialization(name string) error {
	if !c.editable() {
		return ErrNotOpen
	}
	if c.form.IndustryID == "" {
		return fmt.Errorf("%w: select an industry first", ErrUnknownIndustry)
	}

	c.form.Specialization = strings.TrimSpace(name)
	delete(c.form.Errors, "specialization")
	c.recover()
	return nil
}

// SetField is the generic setter for the free-form fields. Field-level
// validation runs immediately; an error on one field never blocks edits to
// the others.
func (c *Controller) SetField(name, value string) error {
	if !c.editable() {
		return ErrNotOpen
	}

	switch name {
	case "name":
		c.form.Name = value
		c.setFieldError("name", profile.ValidateName(value))
	case "email":
		c.form.Email = value
		c.setFieldError("email", profile.ValidateEmail(value))
	case "experience":
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			c.form.ExperienceYears = nil
			c.setFieldError("experience", "")
			break
		}
		years, err := strconv.Atoi(trimmed)
		if err != nil {
			c.setFieldError("experience", "Experience must be a whole number")
			break
		}
		c.form.ExperienceYears = &years
		c.setFieldError("experience", profile.ValidateExperience(&years))
	case "skills":
		c.form.SkillsText = value
	case "bio":
		c.form.Bio = value
	case "industry":
		// Edit-dialog path: the composite key is edited as plain text.
		c.form.IndustryKey = strings.TrimSpace(value)
		if c.form.IndustryKey != "" && !profile.ValidIndustryKey(c.form.IndustryKey) {
			c.setFieldError("industry", "Invalid industry identifier")
		} else {
			c.setFieldError("industry", "")
		}
	default:
		return fmt.Errorf("unknown field: %s", name)
	}

	c.recover()
	return nil
}

func (c *Controller) setFieldError(field, msg string) {
	if msg == "" {
		delete(c.form.Errors, field)
		return
	}
	c.form.Errors[field] = msg
}

// editable reports whether field mutation is allowed. The Error state stays
// editable so a failed submit never locks the user out of their input.
func (c *Controller) editable() bool {
	return c.state == StateReady || c.state == StateError
}

// recover flips Error back to Ready once the user edits again.
func (c *Controller) recover() {
	if c.state == StateError {
		c.state = StateReady
	}
}

// CompletionPercentage is a pure function over the current form state.
// Onboarding tracks {industry, specialization, experience, skills, bio} with
// specialization only counting once an industry is chosen; the edit dialog
// tracks {name, email, industry, experience, skills, bio}. An experience of
// zero counts as filled.
func (c *Controller) CompletionPercentage() int {
	filled := 0
	total := 0

	industryChosen := c.form.IndustryID != "" || c.form.IndustryKey != ""

	if c.fctx == profile.ContextOnboarding {
		total = 4
		if c.form.IndustryID != "" {
			total = 5
			filled++
			if c.form.Specialization != "" {
				filled++
			}
		}
	} else {
		total = 6
		if strings.TrimSpace(c.form.Name) != "" {
			filled++
		}
		if strings.TrimSpace(c.form.Email) != "" {
			filled++
		}
		if industryChosen {
			filled++
		}
	}

	if c.form.ExperienceYears != nil {
		filled++
	}
	if strings.TrimSpace(c.form.SkillsText) != "" {
		filled++
	}
	if strings.TrimSpace(c.form.Bio) != "" {
		filled++
	}

	return int(math.Round(100 * float64(filled) / float64(total)))
}

// Submit validates every field, normalizes the payload, and sends it to the
// sync endpoint. On transport failure the form state is left untouched and
// the returned error wraps ErrRetryable. On success the server echo is
// merged back as the authoritative record.
func (c *Controller) Submit(ctx context.Context) (profile.Record, error) {
	if c.state == StateSubmitting {
		return profile.Record{}, ErrSubmitInProgress
	}
	if !c.editable() {
		return profile.Record{}, ErrNotOpen
	}

	if errs := c.validateAll(); !errs.Empty() {
		c.form.Errors = errs
		return profile.Record{}, &ValidationError{Fields: errs}
	}

	sub := Submission{
		Name:            strings.TrimSpace(c.form.Name),
		Email:           strings.TrimSpace(c.form.Email),
		IndustryKey:     c.composedIndustryKey(),
		ExperienceYears: c.form.ExperienceYears,
		Skills:          profile.NormalizeSkills(c.form.SkillsText),
		Bio:             strings.TrimSpace(c.form.Bio),
	}

	c.state = StateSubmitting
	rec, err := c.client.SaveProfile(ctx, sub)
	if err != nil {
		c.state = StateError
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.form.Errors = verr.Fields
			return profile.Record{}, verr
		}
		return profile.Record{}, fmt.Errorf("%w: %v", ErrRetryable, err)
	}

	c.hydrate(rec)
	c.state = StateReady
	return rec, nil
}

// composedIndustryKey prefers a fresh industry/specialization selection and
// falls back to the key carried from the stored record (edit dialog).
func (c *Controller) composedIndustryKey() string {
	if c.form.IndustryID != "" {
		return profile.ComposeIndustryKey(c.form.IndustryID, c.form.Specialization)
	}
	return c.form.IndustryKey
}

func (c *Controller) validateAll() profile.FieldErrors {
	errs := profile.FieldErrors{}

	if msg := profile.ValidateName(c.form.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := profile.ValidateEmail(c.form.Email); msg != "" {
		errs["email"] = msg
	}
	if msg := profile.ValidateExperience(c.form.ExperienceYears); msg != "" {
		errs["experience"] = msg
	}

	if c.fctx == profile.ContextOnboarding {
		if c.form.IndustryID == "" {
			errs["industry"] = "Please select an industry"
		} else if c.form.Specialization == "" {
			errs["specialization"] = "Please select a specialization"
		}
	}

	if c.form.IndustryID == "" && c.form.IndustryKey != "" && !profile.ValidIndustryKey(c.form.IndustryKey) {
		errs["industry"] = "Invalid industry identifier"
	}

	return errs
}

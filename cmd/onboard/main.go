// Command onboard drives the profile form controller against a running
// profile-sync server: it loads the industry reference table, fills the form
// from flags, prints completion progress, and submits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"profile-sync/internal/client"
	"profile-sync/internal/domain/profile"
	"profile-sync/internal/form"
)

func main() {
	var (
		baseURL        = flag.String("base-url", "http://localhost:8080", "server base URL")
		token          = flag.String("token", os.Getenv("PROFILE_SYNC_TOKEN"), "bearer access token")
		edit           = flag.Bool("edit", false, "edit-dialog mode: hydrate from the stored record")
		name           = flag.String("name", "", "full name")
		email          = flag.String("email", "", "email address")
		industryID     = flag.String("industry", "", "industry id, e.g. tech")
		specialization = flag.String("specialization", "", "specialization name, e.g. 'Software Development'")
		experience     = flag.String("experience", "", "years of experience (0-50)")
		skills         = flag.String("skills", "", "comma-separated skills")
		bio            = flag.String("bio", "", "professional bio")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sc := client.New(*baseURL, *token, logger)

	table, err := sc.FetchIndustries(ctx)
	if err != nil {
		logger.Fatalf("load industries: %v", err)
	}

	fctx := profile.ContextOnboarding
	if *edit {
		fctx = profile.ContextEdit
	}

	ctl := form.NewController(sc, table, fctx)
	if err := ctl.Open(ctx); err != nil {
		if errors.Is(err, form.ErrDefaultsInUse) {
			fmt.Fprintln(os.Stderr, "could not load profile, showing defaults")
		} else {
			logger.Fatalf("open session: %v", err)
		}
	}

	if *industryID != "" {
		if err := ctl.SelectIndustry(*industryID); err != nil {
			logger.Fatalf("select industry: %v", err)
		}
	}
	if *specialization != "" {
		if err := ctl.SelectSpecialization(*specialization); err != nil {
			logger.Fatalf("select specialization: %v", err)
		}
	}

	setField(ctl, logger, "name", *name)
	setField(ctl, logger, "email", *email)
	setField(ctl, logger, "experience", *experience)
	setField(ctl, logger, "skills", *skills)
	setField(ctl, logger, "bio", *bio)

	fmt.Printf("profile completion: %d%%\n", ctl.CompletionPercentage())

	rec, err := ctl.Submit(ctx)
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			fields := make([]string, 0, len(verr.Fields))
			for f := range verr.Fields {
				fields = append(fields, f)
			}
			sort.Strings(fields)
			for _, f := range fields {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", f, verr.Fields[f])
			}
			os.Exit(1)
		}
		if errors.Is(err, form.ErrRetryable) {
			logger.Fatalf("submit failed, safe to retry: %v", err)
		}
		logger.Fatalf("submit: %v", err)
	}

	fmt.Printf("profile saved: name=%q email=%q", rec.Name, rec.Email)
	if rec.IndustryKey != nil {
		fmt.Printf(" industry=%s", *rec.IndustryKey)
	}
	if rec.ExperienceYears != nil {
		fmt.Printf(" experience=%d", *rec.ExperienceYears)
	}
	fmt.Printf(" skills=%v\n", rec.Skills)
}

func setField(ctl *form.Controller, logger *log.Logger, field, value string) {
	if value == "" {
		return
	}
	if err := ctl.SetField(field, value); err != nil {
		logger.Fatalf("set %s: %v", field, err)
	}
}

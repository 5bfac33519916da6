// Package client implements the HTTP side of form.SyncClient against the
// profile sync endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"profile-sync/internal/domain/industry"
	"profile-sync/internal/domain/profile"
	"profile-sync/internal/form"
)

type SyncClient struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *log.Logger
}

type profilePayload struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	IndustryKey     *string  `json:"industryKey"`
	ExperienceYears *int     `json:"experienceYears"`
	Skills          []string `json:"skills"`
	Bio             *string  `json:"bio"`
}

type errorEnvelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data"`
}

func New(baseURL, token string, logger *log.Logger) *SyncClient {
	return &SyncClient{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:   strings.TrimSpace(token),
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

func (c *SyncClient) FetchProfile(ctx context.Context) (profile.Record, error) {
	var out profilePayload
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &out); err != nil {
		return profile.Record{}, err
	}
	return toRecord(out), nil
}

func (c *SyncClient) SaveProfile(ctx context.Context, sub form.Submission) (profile.Record, error) {
	payload := profilePayload{
		Name:            sub.Name,
		Email:           sub.Email,
		ExperienceYears: sub.ExperienceYears,
		Skills:          sub.Skills,
	}
	if sub.IndustryKey != "" {
		payload.IndustryKey = &sub.IndustryKey
	}
	if sub.Bio != "" {
		payload.Bio = &sub.Bio
	}

	var out profilePayload
	if err := c.do(ctx, http.MethodPost, "/api/users", payload, &out); err != nil {
		return profile.Record{}, err
	}
	return toRecord(out), nil
}

func (c *SyncClient) FetchIndustries(ctx context.Context) (industry.Table, error) {
	var out industry.Table
	if err := c.do(ctx, http.MethodGet, "/api/industries", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SyncClient) do(ctx context.Context, method, path string, in, out any) error {
	if c == nil || c.client == nil {
		return errors.New("nil sync client")
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(method, path, resp)
	}

	if out == nil {
		return nil
	}
	dec := json.NewDecoder(resp.Body)
	return dec.Decode(out)
}

// decodeError turns a non-2xx response into a typed error. A 400 with field
// data becomes a form.ValidationError so server-side rejections surface
// per-field exactly like client-side ones.
func (c *SyncClient) decodeError(method, path string, resp *http.Response) error {
	rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if c.logger != nil {
		c.logger.Printf("[Sync] %s %s failed status=%d body=%q", method, path, resp.StatusCode, strings.TrimSpace(string(rb)))
	}

	var env errorEnvelope
	if err := json.Unmarshal(rb, &env); err == nil && resp.StatusCode == http.StatusBadRequest && len(env.Data) > 0 {
		fields := profile.FieldErrors{}
		for k, v := range env.Data {
			fields[k] = v
		}
		return &form.ValidationError{Fields: fields}
	}

	msg := env.Message
	if msg == "" {
		msg = strings.TrimSpace(string(rb))
	}
	return fmt.Errorf("%s %s: status=%d %s", method, path, resp.StatusCode, msg)
}

func toRecord(p profilePayload) profile.Record {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return profile.Record{
		Name:            p.Name,
		Email:           p.Email,
		IndustryKey:     p.IndustryKey,
		ExperienceYears: p.ExperienceYears,
		Skills:          skills,
		Bio:             p.Bio,
	}
}

var _ form.SyncClient = (*SyncClient)(nil)

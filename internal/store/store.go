package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adomaitisc/gupy-automation/internal/apperr"
	"github.com/adomaitisc/gupy-automation/internal/models"
)

const DefaultPath = "output.json"

// Store persists the job list of the last fetch run as one JSON array.
// There is no locking: a fetch and an apply run sharing a path must not
// overlap.
type Store struct {
	Path string
}

func New(path string) *Store {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	return &Store{Path: path}
}

// Write replaces the file content with jobs.
func (s *Store) Write(jobs []models.Job) error {
	if jobs == nil {
		jobs = []models.Job{}
	}
	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.Path, err)
	}
	return nil
}

// Read loads the jobs written by the last fetch run.
func (s *Store) Read() ([]models.Job, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.Wrapf(err, apperr.KindNotFound, "job file %s not found (run fetch first)", s.Path)
		}
		return nil, err
	}

	var records []storedJob
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, apperr.Wrapf(err, apperr.KindDataFormat, "decode %s", s.Path)
	}
	if records == nil {
		return nil, apperr.DataFormatf("decode %s: expected a JSON array", s.Path)
	}

	jobs := make([]models.Job, 0, len(records))
	for idx, record := range records {
		job, err := record.job()
		if err != nil {
			return nil, apperr.Wrapf(err, apperr.KindDataFormat, "%s[%d]", s.Path, idx)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

type storedJob struct {
	ID             *int64  `json:"id"`
	Title          *string `json:"title"`
	Company        *string `json:"company"`
	Remote         *bool   `json:"isRemote"`
	URL            *string `json:"url"`
	ApplicationURL *string `json:"applicationUrl"`
}

func (r storedJob) job() (models.Job, error) {
	switch {
	case r.Title == nil:
		return models.Job{}, apperr.MissingField("job", "title")
	case r.Company == nil:
		return models.Job{}, apperr.MissingField("job", "company")
	case r.Remote == nil:
		return models.Job{}, apperr.MissingField("job", "isRemote")
	case r.URL == nil:
		return models.Job{}, apperr.MissingField("job", "url")
	case r.ApplicationURL != nil && r.ID == nil:
		return models.Job{}, apperr.MissingField("job", "id")
	}

	job := models.Job{
		ID:      r.ID,
		Title:   *r.Title,
		Company: *r.Company,
		Remote:  *r.Remote,
		URL:     *r.URL,
	}
	if r.ApplicationURL != nil {
		job.ApplicationURL = *r.ApplicationURL
	}
	return job, nil
}

package store

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/adomaitisc/gupy-automation/internal/apperr"
	"github.com/adomaitisc/gupy-automation/internal/models"
)

func int64Ptr(v int64) *int64 { return &v }

func TestWriteReadRoundTrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "output.json"))

	jobs := []models.Job{
		{
			ID:             int64Ptr(42),
			Title:          "Estagio Front End",
			Company:        "Acme",
			Remote:         true,
			URL:            "https://acme.gupy.io/job/42",
			ApplicationURL: "https://acme.gupy.io/candidates/jobs/42/apply?jobBoardSource=gupy_portal",
		},
		{Title: "Desenvolvedor Junior", Company: "Beta", URL: "https://beta.gupy.io/job/7"},
		{Title: "Desenvolvedor Junior", Company: "Beta", URL: "https://beta.gupy.io/job/7"},
	}
	if err := s.Write(jobs); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(got, jobs) {
		t.Fatalf("Read() = %#v, want %#v", got, jobs)
	}
}

func TestWriteTruncates(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "output.json"))

	first := []models.Job{
		{Title: "a", Company: "x", URL: "u1"},
		{Title: "b", Company: "y", URL: "u2"},
	}
	if err := s.Write(first); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := s.Write(nil); err != nil {
		t.Fatalf("Write(nil) error = %v", err)
	}

	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list after overwrite, got %d", len(got))
	}
}

func TestWriteUsesOriginalKeys(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "output.json"))
	if err := s.Write([]models.Job{{ID: int64Ptr(1), Title: "t", Company: "c", URL: "u", ApplicationURL: "a"}}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, key := range []string{`"id"`, `"title"`, `"company"`, `"isRemote"`, `"url"`, `"applicationUrl"`} {
		if !strings.Contains(string(data), key) {
			t.Fatalf("expected key %s in %s", key, data)
		}
	}
}

func TestReadMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing.json"))
	_, err := s.Read()
	if !apperr.IsNotFound(err) {
		t.Fatalf("Read() error = %v, want not found", err)
	}
}

func TestReadMalformed(t *testing.T) {
	cases := map[string]string{
		"empty file":           "",
		"not json":             "not json",
		"object root":          `{"title":"a"}`,
		"null root":            `null`,
		"array of numbers":     `[1,2]`,
		"missing title":        `[{"company":"c","isRemote":false,"url":"u"}]`,
		"wrong type":           `[{"title":1,"company":"c","isRemote":false,"url":"u"}]`,
		"application url only": `[{"title":"t","company":"c","isRemote":false,"url":"u","applicationUrl":"a"}]`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "output.json")
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
			_, err := New(path).Read()
			if !apperr.IsDataFormat(err) {
				t.Fatalf("Read() error = %v, want data format error", err)
			}
		})
	}
}

func TestNewDefaultsPath(t *testing.T) {
	if got := New("  ").Path; got != DefaultPath {
		t.Fatalf("New().Path = %q, want %q", got, DefaultPath)
	}
}

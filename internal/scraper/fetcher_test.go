package scraper

import (
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/adomaitisc/gupy-automation/internal/apperr"
	"github.com/adomaitisc/gupy-automation/internal/models"
	"github.com/adomaitisc/gupy-automation/internal/network"
	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/rs/zerolog"
)

type fakeResponse struct {
	status int
	body   string
	err    error
}

type fakeDoer struct {
	responses map[string]fakeResponse
	requested []string
}

func (f *fakeDoer) Do(req *fhttp.Request) (*fhttp.Response, error) {
	target := req.URL.String()
	f.requested = append(f.requested, target)
	res, ok := f.responses[target]
	if !ok {
		return nil, errors.New("unexpected request: " + target)
	}
	if res.err != nil {
		return nil, res.err
	}
	return &fhttp.Response{
		StatusCode: res.status,
		Header:     fhttp.Header{},
		Body:       io.NopCloser(strings.NewReader(res.body)),
	}, nil
}

const mixedListings = `{"data":[
  {"id":1,"name":"Front End","careerPageName":"Acme","isRemoteWork":true,"jobUrl":"https://acme.gupy.io/job/1"},
  {"id":2,"name":"Back End","careerPageName":"Beta","isRemoteWork":false,"jobUrl":"https://beta.gupy.io/job/2"},
  {"id":3,"name":"Mobile","careerPageName":"Gamma","isRemoteWork":true,"jobUrl":"https://gamma.gupy.io/job/3"}
]}`

func newTestFetcher(doer Doer, enrich bool) *Fetcher {
	return NewFetcher(doer, Mapper{ApplyTemplate: DefaultApplyURL, Enrich: enrich}, zerolog.Nop())
}

func titles(jobs []models.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.Title)
	}
	return out
}

func TestFetchRemoteFilter(t *testing.T) {
	doer := &fakeDoer{responses: map[string]fakeResponse{
		"https://example.test/a": {status: 200, body: mixedListings},
	}}

	all, err := newTestFetcher(doer, false).Fetch(context.Background(), []string{"https://example.test/a"}, false)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if want := []string{"Front End", "Back End", "Mobile"}; !reflect.DeepEqual(titles(all), want) {
		t.Fatalf("unfiltered titles = %v, want %v", titles(all), want)
	}

	remote, err := newTestFetcher(doer, false).Fetch(context.Background(), []string{"https://example.test/a"}, true)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if want := []string{"Front End", "Mobile"}; !reflect.DeepEqual(titles(remote), want) {
		t.Fatalf("remote titles = %v, want %v", titles(remote), want)
	}
}

func TestFetchConcatenatesInURLOrderWithoutDedupe(t *testing.T) {
	second := `{"data":[{"id":1,"name":"Front End","careerPageName":"Acme","isRemoteWork":true,"jobUrl":"https://acme.gupy.io/job/1"}]}`
	doer := &fakeDoer{responses: map[string]fakeResponse{
		"https://example.test/a": {status: 200, body: mixedListings},
		"https://example.test/b": {status: 200, body: second},
	}}

	jobs, err := newTestFetcher(doer, true).Fetch(context.Background(), []string{"https://example.test/a", "https://example.test/b"}, false)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if want := []string{"Front End", "Back End", "Mobile", "Front End"}; !reflect.DeepEqual(titles(jobs), want) {
		t.Fatalf("titles = %v, want %v", titles(jobs), want)
	}
	if jobs[3].ApplicationURL != "https://acme.gupy.io/candidates/jobs/1/apply?jobBoardSource=gupy_portal" {
		t.Fatalf("unexpected application url: %q", jobs[3].ApplicationURL)
	}
	if want := []string{"https://example.test/a", "https://example.test/b"}; !reflect.DeepEqual(doer.requested, want) {
		t.Fatalf("requested = %v, want %v", doer.requested, want)
	}
}

func TestFetchFailures(t *testing.T) {
	cases := []struct {
		name       string
		res        fakeResponse
		dataFormat bool
	}{
		{"malformed json", fakeResponse{status: 200, body: `<html>login</html>`}, true},
		{"missing data key", fakeResponse{status: 200, body: `{"message":"unauthorized"}`}, true},
		{"data not an array", fakeResponse{status: 200, body: `{"data":{}}`}, true},
		{"missing listing field", fakeResponse{status: 200, body: `{"data":[{"id":1}]}`}, true},
		{"job url without delimiter", fakeResponse{status: 200, body: `{"data":[{"id":1,"name":"a","careerPageName":"b","isRemoteWork":true,"jobUrl":"https://acme.gupy.io/vagas/1"}]}`}, true},
		{"http error", fakeResponse{status: 403, body: `{}`}, false},
		{"transport error", fakeResponse{err: errors.New("connection reset")}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doer := &fakeDoer{responses: map[string]fakeResponse{
				"https://example.test/a": {status: 200, body: mixedListings},
				"https://example.test/b": tc.res,
			}}
			jobs, err := newTestFetcher(doer, true).Fetch(context.Background(), []string{"https://example.test/a", "https://example.test/b"}, false)
			if err == nil {
				t.Fatalf("Fetch() error = nil, want error")
			}
			if jobs != nil {
				t.Fatalf("expected no partial result, got %d jobs", len(jobs))
			}
			if apperr.IsDataFormat(err) != tc.dataFormat {
				t.Fatalf("IsDataFormat(%v) = %v, want %v", err, !tc.dataFormat, tc.dataFormat)
			}
		})
	}
}

func TestFetchRemoteOnlyIgnoresMalformedOnsiteListings(t *testing.T) {
	body := `{"data":[
  {"id":1,"name":"Front End","careerPageName":"Acme","isRemoteWork":true,"jobUrl":"https://acme.gupy.io/job/1"},
  {"id":2,"isRemoteWork":false}
]}`
	doer := &fakeDoer{responses: map[string]fakeResponse{
		"https://example.test/a": {status: 200, body: body},
	}}

	jobs, err := newTestFetcher(doer, true).Fetch(context.Background(), []string{"https://example.test/a"}, true)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if want := []string{"Front End"}; !reflect.DeepEqual(titles(jobs), want) {
		t.Fatalf("titles = %v, want %v", titles(jobs), want)
	}

	_, err = newTestFetcher(doer, true).Fetch(context.Background(), []string{"https://example.test/a"}, false)
	if !apperr.IsDataFormat(err) {
		t.Fatalf("Fetch(remoteOnly=false) error = %v, want data format error", err)
	}
}

func TestFetchRemoteOnlyRequiresRemoteFlag(t *testing.T) {
	doer := &fakeDoer{responses: map[string]fakeResponse{
		"https://example.test/a": {status: 200, body: `{"data":[{"id":1,"name":"a"}]}`},
	}}
	_, err := newTestFetcher(doer, false).Fetch(context.Background(), []string{"https://example.test/a"}, true)
	if !apperr.IsDataFormat(err) || !strings.Contains(err.Error(), `"isRemoteWork"`) {
		t.Fatalf("Fetch() error = %v, want missing isRemoteWork", err)
	}
}

func TestFetchHTTPErrorWrapsRequestFailed(t *testing.T) {
	doer := &fakeDoer{responses: map[string]fakeResponse{
		"https://example.test/a": {status: 500, body: ""},
	}}
	_, err := newTestFetcher(doer, false).Fetch(context.Background(), []string{"https://example.test/a"}, false)
	if !errors.Is(err, network.ErrRequestFailed) {
		t.Fatalf("Fetch() error = %v, want ErrRequestFailed", err)
	}
}

func TestGupySearch(t *testing.T) {
	doer := &fakeDoer{responses: map[string]fakeResponse{
		"https://portal.api.gupy.io/api/job?name=Estagio%20Mobile&offset=0&limit=3": {status: 200, body: mixedListings},
	}}
	params := models.SearchParams{
		QueryTemplate: DefaultQueryURL,
		ApplyTemplate: DefaultApplyURL,
		Queries:       []string{"Estagio Mobile"},
		Limit:         3,
		RemoteOnly:    true,
		Enrich:        true,
	}

	jobs, err := NewGupy(doer, zerolog.Nop()).Search(context.Background(), params)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("len(jobs) = %d, want 2", len(jobs))
	}
	if jobs[1].ID == nil || *jobs[1].ID != 3 {
		t.Fatalf("expected id 3, got %v", jobs[1].ID)
	}
}

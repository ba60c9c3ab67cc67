package network

import (
	"reflect"
	"testing"

	"github.com/adomaitisc/gupy-automation/internal/apperr"
	fhttp "github.com/bogdanfinn/fhttp"
)

func TestParseCookies(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"single", "session=abc", map[string]string{"session": "abc"}},
		{"multiple", "k1=v1; k2=v2", map[string]string{"k1": "v1", "k2": "v2"}},
		{"no space separator", "k1=v1;k2=v2", map[string]string{"k1": "v1", "k2": "v2"}},
		{"quoted value", `token="xyz"; id=7`, map[string]string{"token": "xyz", "id": "7"}},
		{"quoted value with space", `a="q v"; b=x`, map[string]string{"a": "q v", "b": "x"}},
		{"duplicate last wins", "a=1; b=2; a=3", map[string]string{"a": "3", "b": "2"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseCookies(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseCookies(%q) = %#v, want %#v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestUnquoteCookieValue(t *testing.T) {
	cases := map[string]string{
		`"xyz"`: "xyz",
		`""`:    "",
		`"`:     `"`,
		`x"y"`:  `x"y"`,
		`"a"b"`: `a"b`,
		"plain": "plain",
	}
	for in, want := range cases {
		if got := unquoteCookieValue(in); got != want {
			t.Fatalf("unquoteCookieValue(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCookiesFromEnvMissing(t *testing.T) {
	lookup := func(string) (string, bool) { return "", false }
	got, err := CookiesFromEnv(DefaultCookieEnv, lookup)
	if !apperr.IsConfiguration(err) {
		t.Fatalf("CookiesFromEnv() error = %v, want configuration error", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty cookie set, got %#v", got)
	}
}

func TestCookiesFromEnvPresent(t *testing.T) {
	lookup := func(key string) (string, bool) {
		if key != "GUPY_TEST_COOKIES" {
			return "", false
		}
		return "a=1; b=2", true
	}
	got, err := CookiesFromEnv("GUPY_TEST_COOKIES", lookup)
	if err != nil {
		t.Fatalf("CookiesFromEnv() error = %v", err)
	}
	want := map[string]string{"a": "1", "b": "2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CookiesFromEnv() = %#v, want %#v", got, want)
	}
}

func TestPrepareRequestAttachesSessionCookies(t *testing.T) {
	req, err := fhttp.NewRequest(fhttp.MethodGet, "https://portal.api.gupy.io/api/job", nil)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	req.AddCookie(&fhttp.Cookie{Name: "b", Value: "explicit"})

	prepareRequest(req, sessionCookies(map[string]string{"a": "1", "b": "2"}))

	a, err := req.Cookie("a")
	if err != nil || a.Value != "1" {
		t.Fatalf("cookie a = %v, %v; want 1", a, err)
	}
	b, err := req.Cookie("b")
	if err != nil || b.Value != "explicit" {
		t.Fatalf("cookie b = %v, %v; want explicit", b, err)
	}
	if req.Header.Get("User-Agent") == "" {
		t.Fatalf("expected default User-Agent")
	}
}

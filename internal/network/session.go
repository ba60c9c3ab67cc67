package network

import (
	"os"
	"sort"
	"strings"

	"github.com/adomaitisc/gupy-automation/internal/apperr"
	fhttp "github.com/bogdanfinn/fhttp"
)

// DefaultCookieEnv holds the cookie string copied from a logged-in browser
// (document.cookie).
const DefaultCookieEnv = "RAW_COOKIES"

// ParseCookies splits a raw "k1=v1; k2=v2" string into a name to value map.
// Quoted values are unquoted, malformed pairs are dropped and later
// duplicates win.
func ParseCookies(raw string) map[string]string {
	cookies := map[string]string{}
	if strings.TrimSpace(raw) == "" {
		return cookies
	}

	req := &fhttp.Request{Header: fhttp.Header{"Cookie": {raw}}}
	for _, cookie := range req.Cookies() {
		cookies[cookie.Name] = unquoteCookieValue(cookie.Value)
	}
	return cookies
}

// unquoteCookieValue strips one pair of surrounding double quotes, which the
// header parser keeps.
func unquoteCookieValue(value string) string {
	if len(value) > 1 && value[0] == '"' && value[len(value)-1] == '"' {
		return value[1 : len(value)-1]
	}
	return value
}

// CookiesFromEnv parses the cookie string held by key. A missing variable
// yields an empty map and a configuration error; callers may carry on
// unauthenticated.
func CookiesFromEnv(key string, lookup func(string) (string, bool)) (map[string]string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	raw, ok := lookup(key)
	if !ok {
		return map[string]string{}, apperr.Configurationf("environment variable %s is not set", key)
	}
	return ParseCookies(raw), nil
}

func sessionCookies(cookies map[string]string) []*fhttp.Cookie {
	names := make([]string, 0, len(cookies))
	for name := range cookies {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*fhttp.Cookie, 0, len(names))
	for _, name := range names {
		out = append(out, &fhttp.Cookie{Name: name, Value: cookies[name]})
	}
	return out
}

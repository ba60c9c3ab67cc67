package network

import (
	"errors"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	fhttpcookiejar "github.com/bogdanfinn/fhttp/cookiejar"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

var ErrRequestFailed = errors.New("request failed")

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Options configures the shared HTTP client of a run.
type Options struct {
	Timeout time.Duration
	Proxy   string
}

// Client is the single HTTP session used for every request of a run.
// Session cookies are set once before the first request and only read after.
type Client struct {
	http    tls_client.HttpClient
	cookies []*fhttp.Cookie
}

func NewClient(opts Options) (*Client, error) {
	jar, _ := fhttpcookiejar.New(nil)

	timeout := int(opts.Timeout / time.Second)
	if timeout <= 0 {
		timeout = 30
	}

	clientOpts := []tls_client.HttpClientOption{
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithTimeoutSeconds(timeout),
		tls_client.WithCookieJar(jar),
	}
	if opts.Proxy != "" {
		clientOpts = append(clientOpts, tls_client.WithProxyUrl(opts.Proxy))
	}

	client, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), clientOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{http: client}, nil
}

// SetSessionCookies attaches cookies to every subsequent request.
func (c *Client) SetSessionCookies(cookies map[string]string) {
	c.cookies = sessionCookies(cookies)
}

func (c *Client) Do(req *fhttp.Request) (*fhttp.Response, error) {
	prepareRequest(req, c.cookies)
	return c.http.Do(req)
}

func prepareRequest(req *fhttp.Request, cookies []*fhttp.Cookie) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", defaultUserAgent)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json, text/plain, */*")
	}
	for _, cookie := range cookies {
		if _, err := req.Cookie(cookie.Name); err == nil {
			continue
		}
		req.AddCookie(cookie)
	}
}

package scraper

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	TitleToken = "TITLE"
	LimitToken = "LIMIT"
)

// queryUnescaper restores the bytes QueryEscape encodes differently from the
// portal's own links: spaces are %20 and slashes stay literal.
var queryUnescaper = strings.NewReplacer("+", "%20", "%2F", "/")

// EncodeQuery percent-encodes a phrase for a query component, spaces as %20.
func EncodeQuery(phrase string) string {
	return queryUnescaper.Replace(url.QueryEscape(phrase))
}

// BuildSearchURLs returns one search URL per phrase, in phrase order.
func BuildSearchURLs(template string, phrases []string, limit int) []string {
	urls := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		r := strings.NewReplacer(TitleToken, EncodeQuery(phrase), LimitToken, strconv.Itoa(limit))
		urls = append(urls, r.Replace(template))
	}
	return urls
}

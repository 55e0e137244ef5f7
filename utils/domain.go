package utils

import (
	"net"
	"strings"
)

// SlugFromHost extracts the portfolio slug from a subdomain request host,
// e.g. "alice.cuthours.com" with base domain "cuthours.com" yields "alice".
// Returns "" for the apex, "www", or hosts outside the base domain.
func SlugFromHost(host, baseDomain string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(host)
	baseDomain = strings.ToLower(baseDomain)

	if host == baseDomain || baseDomain == "" {
		return ""
	}
	suffix := "." + baseDomain
	if !strings.HasSuffix(host, suffix) {
		return ""
	}
	slug := strings.TrimSuffix(host, suffix)
	if slug == "www" || strings.Contains(slug, ".") {
		return ""
	}
	return slug
}

// PortfolioURL renders the public address of a portfolio slug.
func PortfolioURL(slug, baseDomain string) string {
	return slug + "." + baseDomain
}

package utils

import (
	"net/http"
	"strings"
)

// Proxy headers consulted for the real client address, in priority order.
var ipHeaders = []string{
	"X-Forwarded-For",
	"X-Real-Ip",
	"Cf-Connecting-Ip",
	"X-Client-Ip",
}

// ClientIP extracts the visitor's IP from proxy headers, first non-empty
// wins. X-Forwarded-For may carry a chain; only the first hop counts.
func ClientIP(r *http.Request) string {
	for _, h := range ipHeaders {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		if h == "X-Forwarded-For" {
			v = strings.TrimSpace(strings.Split(v, ",")[0])
		}
		if v != "" {
			return v
		}
	}
	return "Unknown"
}

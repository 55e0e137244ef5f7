package document

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// LinkType is one entry of the fixed contact-link catalog. Users enter only
// the suffix value (a handle, a number, a meeting id); the prefix completes
// the destination.
type LinkType struct {
	Type   string
	Label  string
	Prefix string
}

var linkTypes = []LinkType{
	{"email", "Email", "mailto:"},
	{"phone", "Phone", "tel:"},
	{"linkedin", "LinkedIn", "https://linkedin.com/in/"},
	{"github", "GitHub", "https://github.com/"},
	{"twitter", "Twitter", "https://twitter.com/"},
	{"instagram", "Instagram", "https://instagram.com/"},
	{"facebook", "Facebook", "https://facebook.com/"},
	{"youtube", "YouTube", "https://youtube.com/@"},
	{"twitch", "Twitch", "https://twitch.tv/"},
	{"discord", "Discord", "https://discord.gg/"},
	{"zoom", "Zoom", "https://zoom.us/j/"},
	{"calendly", "Calendly", "https://calendly.com/"},
	{"website", "Website", ""},
	{"custom", "Custom", ""},
}

var (
	emailRe     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe     = regexp.MustCompile(`^[1-9][0-9]{0,15}$`)
	linkedinRe  = regexp.MustCompile(`^[a-zA-Z0-9-]{3,100}$`)
	githubRe    = regexp.MustCompile(`^[a-zA-Z0-9-]{1,39}$`)
	twitterRe   = regexp.MustCompile(`^[a-zA-Z0-9_]{1,15}$`)
	instagramRe = regexp.MustCompile(`^[a-zA-Z0-9._]{1,30}$`)
	facebookRe  = regexp.MustCompile(`^[a-zA-Z0-9.]{5,50}$`)
	twitchRe    = regexp.MustCompile(`^[a-zA-Z0-9_]{4,25}$`)
	discordRe   = regexp.MustCompile(`^[a-zA-Z0-9]{2,32}$`)
	zoomRe      = regexp.MustCompile(`^[0-9]{9,11}$`)
	calendlyRe  = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	nonDigitRe  = regexp.MustCompile(`[^0-9]`)
)

// LinkTypes returns the catalog in display order.
func LinkTypes() []LinkType {
	return linkTypes
}

func lookupLinkType(t string) (LinkType, bool) {
	for _, lt := range linkTypes {
		if lt.Type == t {
			return lt, true
		}
	}
	return LinkType{}, false
}

// ValidateContactLink checks the user-entered suffix value against the rule
// of its link type. Unknown types are rejected; the custom type accepts
// anything non-empty.
func ValidateContactLink(l ContactLink) error {
	lt, ok := lookupLinkType(l.Type)
	if !ok {
		return fmt.Errorf("unknown contact link type %q", l.Type)
	}
	if strings.TrimSpace(l.URL) == "" {
		return fmt.Errorf("%s value is required", lt.Label)
	}

	switch l.Type {
	case "email":
		if !emailRe.MatchString(l.URL) {
			return fmt.Errorf("invalid email address")
		}
	case "phone":
		if !phoneRe.MatchString(nonDigitRe.ReplaceAllString(l.URL, "")) {
			return fmt.Errorf("invalid phone number")
		}
	case "linkedin":
		if !linkedinRe.MatchString(l.URL) {
			return fmt.Errorf("invalid LinkedIn username")
		}
	case "github":
		if !githubRe.MatchString(l.URL) {
			return fmt.Errorf("invalid GitHub username")
		}
	case "twitter":
		if !twitterRe.MatchString(l.URL) {
			return fmt.Errorf("invalid Twitter username")
		}
	case "instagram":
		if !instagramRe.MatchString(l.URL) {
			return fmt.Errorf("invalid Instagram username")
		}
	case "facebook":
		if !facebookRe.MatchString(l.URL) {
			return fmt.Errorf("invalid Facebook username")
		}
	case "twitch":
		if !twitchRe.MatchString(l.URL) {
			return fmt.Errorf("invalid Twitch username")
		}
	case "discord":
		if !discordRe.MatchString(l.URL) {
			return fmt.Errorf("invalid Discord invite code")
		}
	case "zoom":
		if !zoomRe.MatchString(nonDigitRe.ReplaceAllString(l.URL, "")) {
			return fmt.Errorf("invalid Zoom meeting ID")
		}
	case "calendly":
		if !calendlyRe.MatchString(l.URL) {
			return fmt.Errorf("invalid Calendly username")
		}
	case "website":
		if _, err := url.Parse(EnsureHTTPS(l.URL)); err != nil {
			return fmt.Errorf("invalid URL")
		}
	}
	return nil
}

// ResolveContactURL combines the type prefix with the user-entered suffix to
// form the destination a visitor is sent to.
func ResolveContactURL(l ContactLink) string {
	lt, ok := lookupLinkType(l.Type)
	if !ok || lt.Prefix == "" {
		return EnsureHTTPS(l.URL)
	}
	return lt.Prefix + l.URL
}

// EnsureHTTPS prepends https:// to bare URLs. mailto: and tel: links pass
// through untouched.
func EnsureHTTPS(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return u
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") ||
		strings.HasPrefix(u, "mailto:") || strings.HasPrefix(u, "tel:") {
		return u
	}
	return "https://" + u
}

var portfolioIDRe = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidPortfolioID reports whether a public slug is acceptable: lowercase
// alphanumerics and hyphens, non-empty.
func ValidPortfolioID(id string) bool {
	return portfolioIDRe.MatchString(id)
}

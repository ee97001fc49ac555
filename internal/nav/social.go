package nav

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"

	"git.home.luguber.info/inful/sitenav/internal/foundation/normalization"
)

// Icon names a social icon the generator knows how to draw.
type Icon string

// Built-in icons.
const (
	IconBitbucket Icon = "bitbucket"
	IconDiscord   Icon = "discord"
	IconFacebook  Icon = "facebook"
	IconGitHub    Icon = "github"
	IconGitLab    Icon = "gitlab"
	IconInstagram Icon = "instagram"
	IconLinkedIn  Icon = "linkedin"
	IconMastodon  Icon = "mastodon"
	IconNPM       Icon = "npm"
	IconSlack     Icon = "slack"
	IconTwitter   Icon = "twitter"
	IconX         Icon = "x"
	IconYouTube   Icon = "youtube"
)

var builtinIcons = normalization.NewNormalizer(map[string]Icon{
	"bitbucket": IconBitbucket,
	"discord":   IconDiscord,
	"facebook":  IconFacebook,
	"github":    IconGitHub,
	"gitlab":    IconGitLab,
	"instagram": IconInstagram,
	"linkedin":  IconLinkedIn,
	"mastodon":  IconMastodon,
	"npm":       IconNPM,
	"slack":     IconSlack,
	"twitter":   IconTwitter,
	"x":         IconX,
	"youtube":   IconYouTube,
}, "")

// IconSet returns the icons accepted under opts.
func IconSet(opts Options) *normalization.Normalizer[Icon] {
	if len(opts.ExtraIcons) == 0 {
		return builtinIcons
	}
	extra := make(map[string]Icon, len(opts.ExtraIcons))
	for _, name := range opts.ExtraIcons {
		if key := normalization.Key(name); key != "" {
			extra[key] = Icon(key)
		}
	}
	return builtinIcons.With(extra)
}

// SocialLink is an off-site URL rendered with an icon.
type SocialLink struct {
	Icon Icon   `json:"icon" yaml:"icon"`
	Link string `json:"link" yaml:"link"`
}

// RawSocialLink is a social link as written by the author.
type RawSocialLink struct {
	Icon string `json:"icon" yaml:"icon"`
	Link string `json:"link" yaml:"link"`
}

func checkSocialLink(loc Location, raw RawSocialLink, icons *normalization.Normalizer[Icon]) (SocialLink, Violations) {
	var vs Violations
	icon, ok := icons.Lookup(raw.Icon)
	if !ok {
		msg := fmt.Sprintf("unknown icon %q (known: %s)", raw.Icon, strings.Join(icons.ValidKeys(), ", "))
		if isBlank(raw.Icon) {
			msg = "icon is empty"
		}
		vs = append(vs, Violation{
			Location: loc,
			Kind:     KindUnknownIcon,
			Severity: SeverityError,
			Message:  msg,
		})
	}
	if reason := checkAbsoluteURL(raw.Link); reason != "" {
		vs = append(vs, Violation{
			Location: loc,
			Kind:     KindMalformedSocialLink,
			Severity: SeverityError,
			Message:  fmt.Sprintf("link %q %s", raw.Link, reason),
		})
	}
	return SocialLink{Icon: icon, Link: raw.Link}, vs
}

// checkAbsoluteURL returns why s is not an absolute URL with scheme and host, or "".
func checkAbsoluteURL(s string) string {
	if isBlank(s) {
		return "is empty"
	}
	if strings.TrimSpace(s) != s {
		return "has surrounding whitespace"
	}
	u, err := url.Parse(s)
	if err != nil {
		return "does not parse: " + unwrapURLError(err)
	}
	if u.Scheme == "" {
		return "has no scheme"
	}
	host := u.Hostname()
	if host == "" {
		return "has no host"
	}
	if net.ParseIP(host) != nil {
		return ""
	}
	if _, err := idna.Lookup.ToASCII(host); err != nil {
		return fmt.Sprintf("has an invalid host %q", host)
	}
	return ""
}

func unwrapURLError(err error) string {
	if ue, ok := err.(*url.Error); ok {
		return ue.Err.Error()
	}
	return err.Error()
}

package nav

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Entry is a single navigable item: a display label and a root-relative path.
// Sidebar entries for generated content conventionally end in "/", naming a
// directory whose index document the generator resolves at build time.
type Entry struct {
	Label string `json:"label" yaml:"text"`
	Path  string `json:"path" yaml:"link"`
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (%s)", e.Label, e.Path)
}

// ValidateEntry checks a single entry in isolation. It returns the first
// problem as a Violation, or nil. Label problems are reported before path
// problems; Build reports both.
func ValidateEntry(e Entry, opts Options) error {
	if vs := checkEntry("", e, opts); len(vs) > 0 {
		return vs[0]
	}
	return nil
}

func checkEntry(loc Location, e Entry, opts Options) Violations {
	var vs Violations
	if isBlank(e.Label) {
		vs = append(vs, Violation{
			Location: loc,
			Kind:     KindEmptyLabel,
			Severity: SeverityError,
			Message:  "label is empty",
		})
	}
	if reason := checkPath(e.Path, opts.AllowSpacesInPath); reason != "" {
		vs = append(vs, Violation{
			Location: loc,
			Kind:     KindMalformedPath,
			Severity: SeverityError,
			Message:  fmt.Sprintf("path %q %s", e.Path, reason),
		})
	}
	return vs
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// checkPath returns why p is not a well-formed root-relative path, or "".
func checkPath(p string, allowSpaces bool) string {
	if p == "" {
		return "is empty"
	}
	if !strings.HasPrefix(p, "/") {
		return `must start with "/"`
	}
	for _, r := range p {
		switch {
		case r == ' ':
			if !allowSpaces {
				return "contains a literal space"
			}
		case unicode.IsControl(r):
			return fmt.Sprintf("contains control character %U", r)
		case unicode.IsSpace(r):
			return fmt.Sprintf("contains whitespace %U", r)
		case r == '?' || r == '#':
			return fmt.Sprintf("contains %q; query strings and fragments are not paths", r)
		case r == '\\':
			return `contains "\"`
		}
	}
	segments := strings.Split(p[1:], "/")
	for i, seg := range segments {
		decoded, err := url.PathUnescape(seg)
		if err != nil {
			return "contains an invalid percent-escape"
		}
		switch {
		case seg == "" && i < len(segments)-1:
			return "contains an empty segment"
		case decoded == "." || decoded == "..":
			return fmt.Sprintf("contains a relative segment %q", seg)
		case strings.ContainsAny(decoded, `/\`):
			return fmt.Sprintf("segment %q encodes a path separator", seg)
		case strings.ContainsFunc(decoded, unicode.IsControl):
			return fmt.Sprintf("segment %q encodes a control character", seg)
		}
	}
	return ""
}

// canonicalPath is the comparison form used for duplicate detection, so that
// "/a b/", "/a%20b/" and differently composed Unicode spellings collide.
// Segments are decoded one at a time; an encoded "/" stays encoded and never
// merges two segments.
func canonicalPath(p string) string {
	segments := strings.Split(p, "/")
	for i, seg := range segments {
		if decoded, err := url.PathUnescape(seg); err == nil {
			segments[i] = strings.ReplaceAll(decoded, "/", "%2F")
		}
	}
	return norm.NFC.String(strings.Join(segments, "/"))
}

package nav

import (
	"fmt"
	"strings"
)

// Kind identifies the rule a Violation broke.
type Kind string

const (
	KindEmptyLabel          Kind = "empty-label"
	KindMalformedPath       Kind = "malformed-path"
	KindDuplicatePath       Kind = "duplicate-path"
	KindMalformedSocialLink Kind = "malformed-social-link"
	KindUnknownIcon         Kind = "unknown-icon"
	KindMissingField        Kind = "missing-field"
	KindDuplicateLabel      Kind = "duplicate-label"
	KindNestedNav           Kind = "nested-nav"
	KindNavTooLong          Kind = "nav-too-long"
	KindEmptyGroup          Kind = "empty-group"
)

// Severity indicates whether a Violation blocks the build.
type Severity int

const (
	// SeverityWarning is reported but does not fail Build.
	SeverityWarning Severity = iota
	// SeverityError fails Build.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText renders the severity by name in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Location is an index path into the raw configuration, e.g. "sidebar[1].items[0]".
type Location string

// Index appends an element index.
func (l Location) Index(i int) Location {
	return Location(fmt.Sprintf("%s[%d]", l, i))
}

// Field appends a field name.
func (l Location) Field(name string) Location {
	if l == "" {
		return Location(name)
	}
	return l + "." + Location(name)
}

// Roots of the locations produced by Build.
const (
	LocTitle       Location = "title"
	LocDescription Location = "description"
	LocNav         Location = "nav"
	LocSidebar     Location = "sidebar"
	LocSocialLinks Location = "social_links"
)

// Violation is a single authoring problem found while building a Site.
type Violation struct {
	Location Location `json:"location"`
	Kind     Kind     `json:"kind"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	// Related points at the other party of a conflict, such as the first
	// occurrence of a duplicated path.
	Related Location `json:"related,omitempty"`
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s: %s", v.Location, v.Kind, v.Message)
}

// Violations is the batch result of a failed Build. It satisfies error so it can
// travel through ordinary error returns and be recovered with errors.As.
type Violations []Violation

func (vs Violations) Error() string {
	switch len(vs) {
	case 0:
		return "no violations"
	case 1:
		return vs[0].Error()
	}
	msgs := make([]string, len(vs))
	for i, v := range vs {
		msgs[i] = v.Error()
	}
	return fmt.Sprintf("%d violations: %s", len(vs), strings.Join(msgs, "; "))
}

// Errors returns the violations that block the build.
func (vs Violations) Errors() Violations {
	return vs.filter(SeverityError)
}

// Warnings returns the violations that do not block the build.
func (vs Violations) Warnings() Violations {
	return vs.filter(SeverityWarning)
}

// HasErrors reports whether any violation has error severity.
func (vs Violations) HasErrors() bool {
	for _, v := range vs {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns how many violations are of the given kind.
func (vs Violations) Count(kind Kind) int {
	n := 0
	for _, v := range vs {
		if v.Kind == kind {
			n++
		}
	}
	return n
}

func (vs Violations) filter(sev Severity) Violations {
	var out Violations
	for _, v := range vs {
		if v.Severity == sev {
			out = append(out, v)
		}
	}
	return out
}

package report

import "git.home.luguber.info/inful/sitenav/internal/nav"

// Severity indicates the importance level of a reported issue.
type Severity int

const (
	// SeverityInfo marks purely informational findings.
	SeverityInfo Severity = iota
	// SeverityWarning marks issues that should be fixed but do not fail the build.
	SeverityWarning
	// SeverityError marks issues that fail the build.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Issue is a single reported problem.
type Issue struct {
	Location string   // Index path into the config, e.g. "sidebar[1].items[0]"
	Severity Severity // Issue severity level
	Rule     string   // Rule identifier (e.g., "duplicate-path")
	Message  string   // Brief description of the issue
	Related  string   // Other location involved, if any
}

// Result contains all issues found for one configuration file.
type Result struct {
	Source  string // Config file the issues refer to
	Entries int    // Sidebar entries checked
	Issues  []Issue
}

// FromViolations converts navigation violations into report issues.
func FromViolations(vs nav.Violations) []Issue {
	issues := make([]Issue, 0, len(vs))
	for _, v := range vs {
		sev := SeverityWarning
		if v.Severity == nav.SeverityError {
			sev = SeverityError
		}
		issues = append(issues, Issue{
			Location: string(v.Location),
			Severity: sev,
			Rule:     string(v.Kind),
			Message:  v.Message,
			Related:  string(v.Related),
		})
	}
	return issues
}

// HasErrors returns true if any error-level issues exist.
func (r *Result) HasErrors() bool {
	return r.count(SeverityError) > 0
}

// HasWarnings returns true if any warning-level issues exist.
func (r *Result) HasWarnings() bool {
	return r.count(SeverityWarning) > 0
}

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int {
	return r.count(SeverityError)
}

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int {
	return r.count(SeverityWarning)
}

// InfoCount returns the number of informational issues.
func (r *Result) InfoCount() int {
	return r.count(SeverityInfo)
}

func (r *Result) count(sev Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			n++
		}
	}
	return n
}

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter formats results for output.
type Formatter interface {
	Format(w io.Writer, result *Result) error
}

// TextFormatter formats results as human-readable text.
type TextFormatter struct{}

// NewTextFormatter creates a text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format outputs results in human-readable text format.
func (f *TextFormatter) Format(w io.Writer, result *Result) error {
	if _, err := fmt.Fprintf(w, "Checking site navigation in: %s\n", result.Source); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("━", 60)); err != nil {
		return err
	}

	// Errors first, then warnings, then info; declaration order within each.
	for _, sev := range []Severity{SeverityError, SeverityWarning, SeverityInfo} {
		for _, issue := range result.Issues {
			if issue.Severity != sev {
				continue
			}
			if err := f.formatIssue(w, issue); err != nil {
				return err
			}
		}
	}
	if len(result.Issues) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	// Summary
	if _, err := fmt.Fprintln(w, strings.Repeat("━", 60)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Results:\n  %d sidebar entr%s\n", result.Entries, plural(result.Entries, "y", "ies")); err != nil {
		return err
	}
	if n := result.ErrorCount(); n > 0 {
		if _, err := fmt.Fprintf(w, "  %d error%s (blocks build)\n", n, plural(n, "", "s")); err != nil {
			return err
		}
	}
	if n := result.WarningCount(); n > 0 {
		if _, err := fmt.Fprintf(w, "  %d warning%s (should fix)\n", n, plural(n, "", "s")); err != nil {
			return err
		}
	}
	if n := result.InfoCount(); n > 0 {
		if _, err := fmt.Fprintf(w, "  %d info\n", n); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, finalMessage(result))
	return err
}

func finalMessage(result *Result) string {
	switch {
	case result.HasErrors():
		return "✗ Site navigation has errors; the site cannot be built."
	case result.HasWarnings():
		return "⚠ Site navigation has warnings. Consider fixing before publishing."
	case len(result.Issues) > 0:
		return "ℹ All issues are informational."
	default:
		return "✓ Site navigation is valid."
	}
}

func (f *TextFormatter) formatIssue(w io.Writer, issue Issue) error {
	var icon string
	switch issue.Severity {
	case SeverityError:
		icon = "✗"
	case SeverityWarning:
		icon = "⚠"
	case SeverityInfo:
		icon = "ℹ"
	}

	if _, err := fmt.Fprintf(w, "%s %s [%s]\n", icon, issue.Location, issue.Rule); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  %s: %s\n", issue.Severity, issue.Message); err != nil {
		return err
	}
	if issue.Related != "" {
		if _, err := fmt.Fprintf(w, "  See also: %s\n", issue.Related); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// JSONOutput represents the JSON output structure.
type JSONOutput struct {
	Source       string      `json:"source"`
	Entries      int         `json:"entries"`
	Valid        bool        `json:"valid"`
	ErrorCount   int         `json:"error_count"`
	WarningCount int         `json:"warning_count"`
	InfoCount    int         `json:"info_count"`
	Issues       []JSONIssue `json:"issues"`
}

// JSONIssue represents a single issue in JSON format.
type JSONIssue struct {
	Location string `json:"location"`
	Severity string `json:"severity"`
	Rule     string `json:"rule"`
	Message  string `json:"message"`
	Related  string `json:"related,omitempty"`
}

// Format outputs results in JSON format.
func (f *JSONFormatter) Format(w io.Writer, result *Result) error {
	output := JSONOutput{
		Source:       result.Source,
		Entries:      result.Entries,
		Valid:        !result.HasErrors(),
		ErrorCount:   result.ErrorCount(),
		WarningCount: result.WarningCount(),
		InfoCount:    result.InfoCount(),
		Issues:       make([]JSONIssue, 0, len(result.Issues)),
	}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, JSONIssue{
			Location: issue.Location,
			Severity: issue.Severity.String(),
			Rule:     issue.Rule,
			Message:  issue.Message,
			Related:  issue.Related,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// NewFormatter creates the appropriate formatter based on format string.
func NewFormatter(format string) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter()
	default:
		return NewTextFormatter()
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

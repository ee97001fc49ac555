// Package contentcheck cross-checks a site's sidebar against the markdown
// documents it links to.
package contentcheck

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/foundation/normalization"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
	"git.home.luguber.info/inful/sitenav/internal/nav"
	"git.home.luguber.info/inful/sitenav/internal/report"
)

// Rule identifiers reported by Check.
const (
	RuleMissingDocument = "missing-document"
	RuleTitleMismatch   = "title-mismatch"
)

// Check resolves every sidebar leaf to a markdown file under root. Leaves with
// no document are errors; documents whose title differs from the sidebar
// label are informational.
func Check(root string, site *nav.Site) ([]report.Issue, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, ferrors.NotFoundError("content root is not a directory").
			WithContext(logfields.KeyPath, root).
			Build()
	}

	var issues []report.Issue
	for loc, entry := range site.Sidebar().All() {
		candidates := Candidates(entry.Path)
		file, content, err := readFirst(root, candidates)
		if err != nil {
			return nil, err
		}
		if file == "" {
			issues = append(issues, report.Issue{
				Location: string(loc),
				Severity: report.SeverityError,
				Rule:     RuleMissingDocument,
				Message:  fmt.Sprintf("no document for %s (tried %s)", entry.Path, strings.Join(candidates, ", ")),
			})
			continue
		}

		title, ok := documentTitle(content)
		if ok && normalization.Key(title) != normalization.Key(entry.Label) {
			issues = append(issues, report.Issue{
				Location: string(loc),
				Severity: report.SeverityInfo,
				Rule:     RuleTitleMismatch,
				Message:  fmt.Sprintf("label %q differs from document title %q in %s", entry.Label, title, file),
			})
		}
	}
	return issues, nil
}

// Candidates lists the slash-separated files, relative to the content root,
// that can serve a site path, in lookup order.
func Candidates(sitePath string) []string {
	p := sitePath
	if decoded, err := url.PathUnescape(p); err == nil {
		p = decoded
	}
	p = strings.TrimPrefix(p, "/")

	switch {
	case p == "" || strings.HasSuffix(p, "/"):
		return []string{p + "index.md"}
	case strings.HasSuffix(p, ".html"):
		return []string{strings.TrimSuffix(p, ".html") + ".md"}
	case strings.HasSuffix(p, ".md"):
		return []string{p}
	default:
		return []string{p + ".md", path.Join(p, "index.md")}
	}
}

// readFirst returns the first candidate that exists under root. Candidates
// that would resolve outside root are skipped.
func readFirst(root string, candidates []string) (string, []byte, error) {
	for _, c := range candidates {
		rel := filepath.FromSlash(c)
		if !filepath.IsLocal(rel) {
			continue
		}
		full := filepath.Join(root, rel)
		content, err := os.ReadFile(full)
		if err == nil {
			return c, content, nil
		}
		if errors.Is(err, fs.ErrNotExist) || isDirError(full) {
			continue
		}
		return "", nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read document").
			WithContext(logfields.KeyPath, full).
			Build()
	}
	return "", nil, nil
}

func isDirError(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

package contentcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/nav"
	"git.home.luguber.info/inful/sitenav/internal/report"
)

func writeDoc(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"/", []string{"index.md"}},
		{"/article/kmp/", []string{"article/kmp/index.md"}},
		{"/guide", []string{"guide.md", "guide/index.md"}},
		{"/guide.html", []string{"guide.md"}},
		{"/notes/a.md", []string{"notes/a.md"}},
		{"/article/KMP%E7%AE%97%E6%B3%95/", []string{"article/KMP算法/index.md"}},
		{"/My Notes/", []string{"My Notes/index.md"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Candidates(tt.path))
		})
	}
}

func TestCheck(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "article/KMP算法及其在项目中的应用/index.md", "# KMP算法\n\nBody.\n")
	writeDoc(t, root, "guide.md", "---\ntitle: Getting Started\n---\n# Ignored heading\n")
	writeDoc(t, root, "plain/index.md", "No heading here.\n")

	site, err := nav.Build(nav.Raw{
		Title:       "t",
		Description: "d",
		Sidebar: []nav.RawNode{
			{Text: "KMP算法", Link: "/article/KMP算法及其在项目中的应用/"},
			{Text: "Guide", Link: "/guide"},
			{Text: "More", Items: []nav.RawNode{
				{Text: "Plain", Link: "/plain/"},
				{Text: "Missing", Link: "/missing/"},
			}},
		},
	}, nav.DefaultOptions())
	require.NoError(t, err)

	issues, err := Check(root, site)
	require.NoError(t, err)
	require.Len(t, issues, 2)

	assert.Equal(t, "sidebar[1]", issues[0].Location)
	assert.Equal(t, RuleTitleMismatch, issues[0].Rule)
	assert.Equal(t, report.SeverityInfo, issues[0].Severity)
	assert.Contains(t, issues[0].Message, `"Getting Started"`)

	assert.Equal(t, "sidebar[2].items[1]", issues[1].Location)
	assert.Equal(t, RuleMissingDocument, issues[1].Rule)
	assert.Equal(t, report.SeverityError, issues[1].Severity)
	assert.Contains(t, issues[1].Message, "missing/index.md")
}

func TestCheck_MissingRoot(t *testing.T) {
	site, err := nav.Build(nav.Raw{Title: "t", Description: "d"}, nav.DefaultOptions())
	require.NoError(t, err)

	_, err = Check(filepath.Join(t.TempDir(), "absent"), site)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}

func TestCheck_RejectsEncodedTraversal(t *testing.T) {
	_, err := nav.Build(nav.Raw{
		Title:       "t",
		Description: "d",
		Sidebar:     []nav.RawNode{{Text: "Outside", Link: "/%2E%2E/secret/"}},
	}, nav.DefaultOptions())

	var vs nav.Violations
	require.ErrorAs(t, err, &vs)
	assert.Equal(t, 1, vs.Count(nav.KindMalformedPath))
}

func TestReadFirst_StaysUnderRoot(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "content")
	writeDoc(t, parent, "secret/index.md", "# Outside\n")
	writeDoc(t, root, "inside/index.md", "# Inside\n")

	assert.Equal(t, []string{"../secret/index.md"}, Candidates("/%2E%2E/secret/"))

	file, content, err := readFirst(root, Candidates("/%2E%2E/secret/"))
	require.NoError(t, err)
	assert.Empty(t, file)
	assert.Nil(t, content)

	file, _, err = readFirst(root, []string{"../secret/index.md", "inside/index.md"})
	require.NoError(t, err)
	assert.Equal(t, "inside/index.md", file)
}

func TestDocumentTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		ok      bool
	}{
		{"heading", "# Hello *World*\n", "Hello World", true},
		{"second level ignored", "## Sub\n\n# Main\n", "Main", true},
		{"setext", "Title\n=====\n", "Title", true},
		{"frontmatter wins", "---\ntitle: From FM\n---\n# Heading\n", "From FM", true},
		{"blank frontmatter title", "---\ntitle: \"\"\n---\n# Heading\n", "Heading", true},
		{"empty frontmatter", "---\n---\n# Heading\n", "Heading", true},
		{"crlf", "---\r\ntitle: CRLF\r\n---\r\nbody\r\n", "CRLF", true},
		{"code span", "# Using `go test`\n", "Using go test", true},
		{"none", "just text\n", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := documentTitle([]byte(tt.content))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

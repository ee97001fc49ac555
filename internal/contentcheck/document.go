package contentcheck

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

var markdown = goldmark.New()

// documentTitle returns the title a generator would show for a markdown
// document: the frontmatter title if set, otherwise the first level-one
// heading. ok is false when the document has neither.
func documentTitle(content []byte) (title string, ok bool) {
	fm, body := splitFrontmatter(content)
	if len(fm) > 0 {
		var fields struct {
			Title string `yaml:"title"`
		}
		if err := yaml.Unmarshal(fm, &fields); err == nil && strings.TrimSpace(fields.Title) != "" {
			return strings.TrimSpace(fields.Title), true
		}
	}
	return firstHeading(body)
}

// splitFrontmatter separates `---` delimited YAML frontmatter from the body.
// A document without a closing delimiter is treated as all body.
func splitFrontmatter(content []byte) (frontmatter, body []byte) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return nil, content
	}
	rest := content[len("---\n"):]
	if bytes.HasPrefix(rest, []byte("---\n")) {
		return nil, rest[len("---\n"):]
	}
	idx := bytes.Index(rest, []byte("\n---\n"))
	if idx < 0 {
		return nil, content
	}
	return rest[:idx+1], rest[idx+len("\n---\n"):]
}

func firstHeading(body []byte) (string, bool) {
	root := markdown.Parser().Parse(text.NewReader(body))

	var title string
	found := false
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, isHeading := n.(*gmast.Heading)
		if !isHeading || h.Level != 1 {
			return gmast.WalkContinue, nil
		}
		title = strings.TrimSpace(inlineText(h, body))
		found = true
		return gmast.WalkStop, nil
	})
	return title, found
}

// inlineText concatenates the literal text below n, dropping markup.
func inlineText(n gmast.Node, source []byte) string {
	var sb strings.Builder
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *gmast.String:
			sb.Write(t.Value)
		}
		return gmast.WalkContinue, nil
	})
	return sb.String()
}

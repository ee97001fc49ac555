package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/hugo"
	"git.home.luguber.info/inful/sitenav/internal/report"
)

const duplicateConfig = `title: Engineering Notes
description: Articles
nav:
  - text: Home
    link: /
sidebar:
  - text: KMP算法
    link: /article/KMP算法及其在项目中的应用/
  - text: KMP (copy)
    link: /article/KMP算法及其在项目中的应用/
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("sitenav"),
		kong.Exit(func(code int) { t.Fatalf("unexpected exit with code %d", code) }),
		kong.Vars{"version": "test"},
	)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	err = ctx.Run(&Global{Stdout: &stdout, Stderr: &stderr}, &cli)
	return stdout.String(), stderr.String(), err
}

func initConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sitenav.yaml")
	_, _, err := run(t, "-c", path, "init")
	require.NoError(t, err)
	return path
}

func TestInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitenav.yaml")

	out, _, err := run(t, "-c", path, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote example configuration to "+path)
	assert.FileExists(t, path)

	_, _, err = run(t, "-c", path, "init")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))

	_, _, err = run(t, "-c", path, "init", "--force")
	assert.NoError(t, err)
}

func TestValidateCmd(t *testing.T) {
	path := initConfig(t)

	out, _, err := run(t, "-c", path, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Site navigation is valid.")
	assert.Contains(t, out, "2 sidebar entries")
}

func TestValidateCmd_IsDefault(t *testing.T) {
	path := initConfig(t)

	out, _, err := run(t, "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Site navigation is valid.")
}

func TestValidateCmd_Violations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitenav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(duplicateConfig), 0o644))

	out, _, err := run(t, "-c", path, "validate", "--format", "json")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
	assert.Equal(t, 2, ferrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))

	var res report.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Valid)
	assert.Equal(t, 2, res.Entries)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "sidebar[1]", res.Issues[0].Location)
	assert.Equal(t, "duplicate-path", res.Issues[0].Rule)
	assert.Equal(t, "sidebar[0]", res.Issues[0].Related)
}

func TestValidateCmd_MissingConfig(t *testing.T) {
	_, _, err := run(t, "-c", filepath.Join(t.TempDir(), "absent.yaml"), "validate")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}

func TestTreeCmd(t *testing.T) {
	path := initConfig(t)

	out, _, err := run(t, "-c", path, "tree")
	require.NoError(t, err)
	assert.Equal(t, "Engineering Notes\n"+
		"├── KMP算法  /article/KMP算法及其在项目中的应用/\n"+
		"└── Algorithms\n"+
		"    └── Trie  /article/trie/\n"+
		"\n2 entries, depth 2\n", out)

	out, _, err = run(t, "-c", path, "tree", "--no-paths")
	require.NoError(t, err)
	assert.Contains(t, out, "├── KMP算法\n")
}

func TestTreeCmd_PrintsReportOnViolations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitenav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(duplicateConfig), 0o644))

	out, errOut, err := run(t, "-c", path, "tree")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "[duplicate-path]")
	assert.Contains(t, err.Error(), "has 1 error")
}

func TestExportCmd(t *testing.T) {
	path := initConfig(t)

	out, _, err := run(t, "-c", path, "export")
	require.NoError(t, err)
	var cfg hugo.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "Engineering Notes", cfg.Title)
	assert.Len(t, cfg.Menus[hugo.MenuSidebar], 3)

	target := filepath.Join(t.TempDir(), "menus.yaml")
	out, _, err = run(t, "-c", path, "export", "-o", target)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.FileExists(t, target)
}

func TestCheckContentCmd(t *testing.T) {
	path := initConfig(t)
	content := t.TempDir()
	doc := filepath.Join(content, "article", "trie", "index.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(doc), 0o755))
	require.NoError(t, os.WriteFile(doc, []byte("# Trie\n"), 0o644))

	out, _, err := run(t, "-c", path, "check-content", "--root", content)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
	assert.Contains(t, out, "[missing-document]")
	assert.Contains(t, out, "sidebar[0]")
	assert.NotContains(t, out, "sidebar[1].items[0]")
}

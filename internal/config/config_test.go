package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/nav"
)

const sampleYAML = `title: Engineering Notes
description: Articles on algorithms
validation:
  strict_labels: true
nav:
  - text: Home
    link: /
sidebar:
  - text: KMP算法
    link: /article/KMP算法及其在项目中的应用/
  - text: Algorithms
    items:
      - text: Trie
        link: /article/trie/
social_links:
  - icon: github
    link: https://github.com/example
`

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "sitenav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), sampleYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Engineering Notes", cfg.Title)
	require.Len(t, cfg.Sidebar, 2)
	assert.Equal(t, "/article/KMP算法及其在项目中的应用/", cfg.Sidebar[0].Link)
	require.Len(t, cfg.Sidebar[1].Items, 1)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)

	opts := cfg.Options()
	assert.True(t, opts.AllowSpacesInPath)
	assert.True(t, opts.StrictLabels)
	assert.Equal(t, nav.DefaultMaxNavItems, opts.MaxNavItems)

	site, err := nav.Build(cfg.Raw(), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, site.Sidebar().Len())
}

func TestLoad_ExplicitZeroValuesOverrideDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`title: t
description: d
validation:
  allow_spaces_in_path: false
  max_nav_items: 0
  extra_icons: [bluesky]
`))
	require.NoError(t, err)

	opts := cfg.Options()
	assert.False(t, opts.AllowSpacesInPath)
	assert.Equal(t, 0, opts.MaxNavItems)
	assert.Equal(t, []string{"bluesky"}, opts.ExtraIcons)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}

func TestLoad_UnknownKeysAreRejected(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "title: t\nsidebar:\n  - text: A\n    url: /a/\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
	assert.Contains(t, err.Error(), "url")
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Title)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SITENAV_TEST_TITLE", "From Process")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("SITENAV_TEST_TITLE=From DotEnv\nSITENAV_TEST_DESCRIPTION=From DotEnv\n"), 0o644))
	path := writeConfig(t, dir, "title: ${SITENAV_TEST_TITLE}\ndescription: ${SITENAV_TEST_DESCRIPTION}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "From Process", cfg.Title, "process environment wins over .env")
	assert.Equal(t, "From DotEnv", cfg.Description)
}

func TestLoad_RereadsEnvFiles(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("SITENAV_TEST_RELOAD=first\n"), 0o644))
	path := writeConfig(t, dir, "title: ${SITENAV_TEST_RELOAD}\ndescription: d\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.Title)
	_, set := os.LookupEnv("SITENAV_TEST_RELOAD")
	assert.False(t, set, "env files must not leak into the process environment")

	require.NoError(t, os.WriteFile(envPath, []byte("SITENAV_TEST_RELOAD=second\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Title)
}

func TestLoad_EnvLocalOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SITENAV_TEST_LAYER=base\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("SITENAV_TEST_LAYER=local\n"), 0o644))
	path := writeConfig(t, dir, "title: ${SITENAV_TEST_LAYER}\ndescription: d\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Title)
}

func TestParse_DollarSignsInPathsStayLiteral(t *testing.T) {
	t.Setenv("HOME", "/root")
	t.Setenv("SITENAV_TEST_SECTION", "guides")
	cfg, err := Parse([]byte(`title: t
description: d
sidebar:
  - text: Price
    link: /price$5/
  - text: Shell
    link: /shell/$HOME/
  - text: Escaped
    link: /cost/$${SITENAV_TEST_SECTION}/
  - text: Expanded
    link: /${SITENAV_TEST_SECTION}/
  - text: Unclosed
    link: /a${b/
`))
	require.NoError(t, err)

	links := make([]string, 0, len(cfg.Sidebar))
	for _, n := range cfg.Sidebar {
		links = append(links, n.Link)
	}
	assert.Equal(t, []string{
		"/price$5/",
		"/shell/$HOME/",
		"/cost/${SITENAV_TEST_SECTION}/",
		"/guides/",
		"/a${b/",
	}, links)

	_, err = nav.Build(cfg.Raw(), cfg.Options())
	require.NoError(t, err)
}

func TestExpandEnv(t *testing.T) {
	lookup := func(name string) (string, bool) {
		if name == "X" {
			return "v", true
		}
		return "", false
	}
	tests := []struct{ in, want string }{
		{"plain", "plain"},
		{"${X}", "v"},
		{"a${X}b${X}", "avbv"},
		{"${UNSET}", ""},
		{"$X", "$X"},
		{"$$", "$"},
		{"$${X}", "${X}"},
		{"trailing$", "trailing$"},
		{"${}", "${}"},
		{"${1X}", "${1X}"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, expandEnv(tt.in, lookup), tt.in)
	}
}

func TestNormalize(t *testing.T) {
	cfg := &Config{
		Title:   "Cafe\u0301",
		Sidebar: []nav.RawNode{{Text: "G", Items: []nav.RawNode{{Text: "Cafe\u0301", Link: "/cafe\u0301/"}}}},
		SocialLinks: []nav.RawSocialLink{
			{Icon: " github ", Link: "https://github.com/example"},
		},
		Logging: LoggingConfig{Level: "WARNING", Format: "JSON"},
	}

	warnings := Normalize(cfg)

	assert.Equal(t, "Caf\u00e9", cfg.Title)
	assert.Equal(t, "Caf\u00e9", cfg.Sidebar[0].Items[0].Text)
	assert.Equal(t, "/caf\u00e9/", cfg.Sidebar[0].Items[0].Link)
	assert.Equal(t, "github", cfg.SocialLinks[0].Icon)
	assert.Equal(t, LogLevelWarn, cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
	assert.Len(t, warnings, 2)
}

func TestNormalize_MakesEquivalentPathsCollide(t *testing.T) {
	cfg, err := Parse([]byte("title: t\ndescription: d\nsidebar:\n  - text: A\n    link: /caf\u00e9/\n  - text: B\n    link: /cafe\u0301/\n"))
	require.NoError(t, err)

	_, err = nav.Build(cfg.Raw(), cfg.Options())
	var vs nav.Violations
	require.ErrorAs(t, err, &vs)
	assert.Equal(t, 1, vs.Count(nav.KindDuplicatePath))
}

func TestLoadSite(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), sampleYAML)
		cfg, site, err := LoadSite(path)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "Engineering Notes", site.Title())
	})

	t.Run("violations", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "title: t\ndescription: d\nsidebar:\n  - text: A\n    link: /a/\n  - text: B\n    link: /a/\n")
		cfg, site, err := LoadSite(path)
		require.Error(t, err)
		assert.NotNil(t, cfg)
		assert.Nil(t, site)
		assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))

		var vs nav.Violations
		require.True(t, errors.As(err, &vs))
		assert.Len(t, vs, 1)
	})
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitenav.yaml")

	require.NoError(t, Init(path, false))
	_, site, err := LoadSite(path)
	require.NoError(t, err)
	assert.Equal(t, Example().Title, site.Title())
	assert.Equal(t, 2, site.Sidebar().Len())

	err = Init(path, false)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))

	assert.NoError(t, Init(path, true))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LoggingConfig{Level: LogLevelWarn, Format: LogFormatJSON}, false)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	logger = NewLogger(&buf, LoggingConfig{Level: LogLevelError}, true)
	logger.Debug("debug enabled by verbose")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

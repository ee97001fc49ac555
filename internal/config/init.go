package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
	"git.home.luguber.info/inful/sitenav/internal/nav"
)

// Example returns the configuration written by Init.
func Example() *Config {
	allowSpaces := true
	maxNav := nav.DefaultMaxNavItems
	return &Config{
		Title:       "Engineering Notes",
		Description: "Articles on algorithms and the projects that use them",
		Validation: ValidationConfig{
			AllowSpacesInPath: &allowSpaces,
			MaxNavItems:       &maxNav,
		},
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
		Nav: []nav.RawNode{
			{Text: "Home", Link: "/"},
		},
		Sidebar: []nav.RawNode{
			{Text: "KMP算法", Link: "/article/KMP算法及其在项目中的应用/"},
			{Text: "Algorithms", Items: []nav.RawNode{
				{Text: "Trie", Link: "/article/trie/"},
			}},
		},
		SocialLinks: []nav.RawSocialLink{
			{Icon: string(nav.IconGitHub), Link: "https://github.com/example"},
		},
	}
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext(logfields.KeyConfigPath, configPath).
			Build()
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to stat config file").Build()
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Example()); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := enc.Close(); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal config").Build()
	}

	if err := os.WriteFile(configPath, buf.Bytes(), 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write config file").
			WithContext(logfields.KeyConfigPath, configPath).
			Build()
	}
	return nil
}

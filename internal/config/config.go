package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
	"git.home.luguber.info/inful/sitenav/internal/nav"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "sitenav.yaml"

// Config is the on-disk site navigation descriptor.
type Config struct {
	Title       string              `yaml:"title"`
	Description string              `yaml:"description"`
	Validation  ValidationConfig    `yaml:"validation,omitempty"`
	Logging     LoggingConfig       `yaml:"logging,omitempty"`
	Nav         []nav.RawNode       `yaml:"nav"`
	Sidebar     []nav.RawNode       `yaml:"sidebar"`
	SocialLinks []nav.RawSocialLink `yaml:"social_links,omitempty"`
}

// ValidationConfig controls validation strictness. Pointer fields distinguish
// "omitted" (take the default) from an explicit zero.
type ValidationConfig struct {
	AllowSpacesInPath *bool    `yaml:"allow_spaces_in_path,omitempty"`
	StrictLabels      bool     `yaml:"strict_labels,omitempty"`
	MaxNavItems       *int     `yaml:"max_nav_items,omitempty"` // 0 disables the check
	ExtraIcons        []string `yaml:"extra_icons,omitempty"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// Load reads, expands, decodes and normalizes the configuration file at path.
// ${VAR} references resolve against the process environment first and then
// against .env and .env.local next to the file, which are re-read on every call.
func Load(path string) (*Config, error) {
	fileVars, loaded := readEnvFiles(path)
	if len(loaded) > 0 {
		slog.Debug("Loaded environment files", slog.Any("files", loaded))
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ferrors.NotFoundError("configuration file not found").
			WithContext(logfields.KeyConfigPath, path).
			Build()
	}
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read config file").
			WithContext(logfields.KeyConfigPath, path).
			Build()
	}

	cfg, err := decode(data, lookupWith(fileVars))
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to decode config").
			Fatal().
			WithContext(logfields.KeyConfigPath, path).
			Build()
	}
	return cfg, nil
}

// Parse decodes configuration bytes. ${VAR} references are expanded from the
// process environment and unknown keys are rejected so typos surface instead
// of being ignored.
func Parse(data []byte) (*Config, error) {
	cfg, err := decode(data, os.LookupEnv)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to decode config").Fatal().Build()
	}
	return cfg, nil
}

func decode(data []byte, lookup envLookup) (*Config, error) {
	expanded := expandEnv(string(data), lookup)

	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	for _, w := range Normalize(&cfg) {
		slog.Warn("config normalization", slog.String("detail", w))
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Raw returns the navigation data for nav.Build.
func (c *Config) Raw() nav.Raw {
	return nav.Raw{
		Title:       c.Title,
		Description: c.Description,
		Nav:         c.Nav,
		Sidebar:     c.Sidebar,
		SocialLinks: c.SocialLinks,
	}
}

// Options returns the validation options, with defaults for omitted fields.
func (c *Config) Options() nav.Options {
	opts := nav.DefaultOptions()
	v := c.Validation
	if v.AllowSpacesInPath != nil {
		opts.AllowSpacesInPath = *v.AllowSpacesInPath
	}
	if v.MaxNavItems != nil {
		opts.MaxNavItems = *v.MaxNavItems
	}
	opts.StrictLabels = v.StrictLabels
	opts.ExtraIcons = v.ExtraIcons
	return opts
}

// LoadSite loads the file at path and builds the site it describes. A site
// with violations is returned together with its Config as a validation error
// wrapping nav.Violations.
func LoadSite(path string) (*Config, *nav.Site, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	site, err := nav.Build(cfg.Raw(), cfg.Options())
	if err != nil {
		var vs nav.Violations
		if errors.As(err, &vs) {
			return cfg, nil, ferrors.WrapError(vs, ferrors.CategoryValidation, "site navigation has violations").
				Fatal().
				WithContext(logfields.KeyConfigPath, path).
				WithContext(logfields.KeyViolations, len(vs.Errors())).
				Build()
		}
		return cfg, nil, err
	}
	return cfg, site, nil
}

package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"git.home.luguber.info/inful/sitenav/internal/nav"
)

// Normalize canonicalizes the configuration in place. Labels, paths and
// display strings are converted to Unicode NFC so that identical-looking paths
// typed with different input methods compare equal; enumerations are
// case-folded. It returns notes about enumeration values that changed.
func Normalize(cfg *Config) []string {
	var warnings []string
	note := func(field, before, after string) {
		if before != after {
			warnings = append(warnings, fmt.Sprintf("normalized %s from %q to %q", field, before, after))
		}
	}

	cfg.Title = norm.NFC.String(cfg.Title)
	cfg.Description = norm.NFC.String(cfg.Description)
	normalizeNodes(cfg.Nav)
	normalizeNodes(cfg.Sidebar)
	for i := range cfg.SocialLinks {
		cfg.SocialLinks[i].Icon = strings.TrimSpace(cfg.SocialLinks[i].Icon)
	}

	if cfg.Logging.Level != "" {
		lvl := NormalizeLogLevel(string(cfg.Logging.Level))
		note("logging.level", string(cfg.Logging.Level), string(lvl))
		cfg.Logging.Level = lvl
	}
	if cfg.Logging.Format != "" {
		f := NormalizeLogFormat(string(cfg.Logging.Format))
		note("logging.format", string(cfg.Logging.Format), string(f))
		cfg.Logging.Format = f
	}
	return warnings
}

func normalizeNodes(nodes []nav.RawNode) {
	for i := range nodes {
		nodes[i].Text = norm.NFC.String(nodes[i].Text)
		nodes[i].Link = norm.NFC.String(nodes[i].Link)
		normalizeNodes(nodes[i].Items)
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
}

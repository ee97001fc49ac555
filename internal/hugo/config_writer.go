package hugo

import (
	"io"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitenav/internal/nav"
)

// Config is the exported Hugo configuration fragment.
type Config struct {
	Title  string                `yaml:"title"`
	Params Params                `yaml:"params"`
	Menus  map[string][]MenuItem `yaml:"menus"`
}

// Params holds site parameters consumed by theme templates.
type Params struct {
	Description string         `yaml:"description"`
	Social      []SocialParams `yaml:"social,omitempty"`
}

// SocialParams is one social link in the params block.
type SocialParams struct {
	Icon string `yaml:"icon"`
	URL  string `yaml:"url"`
}

// NewConfig assembles the configuration fragment for site.
func NewConfig(site *nav.Site) Config {
	links := site.SocialLinks()
	social := make([]SocialParams, 0, len(links))
	for _, l := range links {
		social = append(social, SocialParams{Icon: string(l.Icon), URL: l.Link})
	}
	return Config{
		Title: site.Title(),
		Params: Params{
			Description: site.Description(),
			Social:      social,
		},
		Menus: Menus(site),
	}
}

// WriteConfig writes the configuration fragment for site to w as YAML.
func WriteConfig(w io.Writer, site *nav.Site) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewConfig(site)); err != nil {
		return err
	}
	return enc.Close()
}

package site

import (
	"fmt"

	"akhil.cc/mdsite/gen/html"
	"github.com/BurntSushi/toml"
)

// Config describes where a site's sources live and where it is written.
type Config struct {
	Content  string `toml:"content"`  // markdown sources
	Static   string `toml:"static"`   // assets copied as is
	Public   string `toml:"public"`   // output directory
	Template string `toml:"template"` // page template

	HeadingIDs   bool `toml:"heading_ids"`
	CodeLanguage bool `toml:"code_language"`
}

// DefaultConfig returns the layout used when no configuration file is given.
func DefaultConfig() Config {
	return Config{
		Content:  "content",
		Static:   "static",
		Public:   "public",
		Template: "template.html",
	}
}

// LoadConfig reads a TOML configuration file. Keys missing from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		tracer().Infof("config %s: unknown key %q", path, key.String())
	}
	return c, nil
}

// Builder returns the document tree builder selected by c.
func (c Config) Builder() html.Builder {
	return html.Builder{
		HeadingIDs:   c.HeadingIDs,
		CodeLanguage: c.CodeLanguage,
	}
}

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"gopkg.in/yaml.v3"
)

// Conf is a configuration read from YAML, held by koanf. Keys are paths into
// the YAML document, separated by dots.
type Conf struct {
	*koanfadapter.KConf
}

var _ schuko.Configuration = &Conf{}

// Defaults holds the values InitDefaults sets for missing keys.
var Defaults = map[string]interface{}{
	"tracing.adapter":        "go",
	"tracelevel.root":        "Error",
	"layout.maxdepth":        256,
	"layout.viewport.width":  800,
	"layout.viewport.height": 600,
}

// New creates an empty configuration.
func New() *Conf {
	return &Conf{KConf: koanfadapter.New(koanf.New("."), "", nil)}
}

// Load reads a YAML configuration. Defaults are set for keys missing from
// the input. An empty input results in the default configuration.
func Load(r io.Reader) (*Conf, error) {
	var doc map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: cannot decode YAML: %w", err)
	}
	c := New()
	// nested maps are merged as they are; keys containing dots stay intact
	if len(doc) > 0 {
		if err := c.Koanf().Load(confmap.Provider(doc, ""), nil); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	c.InitDefaults()
	return c, nil
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Conf, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// InitDefaults sets default values for all keys in Defaults which are not
// set already.
func (c *Conf) InitDefaults() {
	missing := make(map[string]interface{}, len(Defaults))
	for k, v := range Defaults {
		if !c.IsSet(k) {
			missing[k] = v
		}
	}
	if len(missing) > 0 {
		c.Koanf().Load(confmap.Provider(missing, "."), nil)
	}
}

// Keys returns all keys of the configuration, sorted.
func (c *Conf) Keys() []string {
	return c.Koanf().Keys()
}

// IsInteractive is part of interface schuko.Configuration. Configurations
// read from files are never interactive.
func (c *Conf) IsInteractive() bool {
	return false
}

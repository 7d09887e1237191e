package favix

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// AppMeta is the application metadata embedded into the webmanifest.
type AppMeta struct {
	Name            string `yaml:"name"`
	ShortName       string `yaml:"short_name"`
	StartURL        string `yaml:"start_url"`
	Display         string `yaml:"display"`
	ThemeColor      string `yaml:"theme_color"`
	BackgroundColor string `yaml:"background_color"`
}

// DefaultAppMeta returns the metadata used when no configuration file is given.
func DefaultAppMeta() AppMeta {
	return AppMeta{
		Name:            "My App",
		ShortName:       "App",
		StartURL:        "/",
		Display:         "standalone",
		ThemeColor:      "#ffffff",
		BackgroundColor: "#ffffff",
	}
}

// LoadAppMeta parses the YAML metadata document. Keys missing from the document
// keep their default values.
func LoadAppMeta(data []byte) (AppMeta, error) {
	meta := DefaultAppMeta()
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return AppMeta{}, fmt.Errorf("parsing the app metadata: %w", err)
	}
	return meta, nil
}

package favix

import (
	"encoding/json"
	"fmt"
)

// ManifestIcon is one entry of the webmanifest icons array.
type ManifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// Manifest is the minimal web app manifest shipped next to the generated icons.
type Manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Icons           []ManifestIcon `json:"icons"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	ThemeColor      string         `json:"theme_color"`
	BackgroundColor string         `json:"background_color"`
}

// BuildManifest assembles the webmanifest from the app metadata and the
// generated assets. Only the android and installable app icons are listed,
// the browser picks up the classic favicons through the <link> tags.
func BuildManifest(meta AppMeta, assets []IconAsset) Manifest {
	var icons []ManifestIcon
	for _, asset := range assets {
		if asset.Spec.Purpose != PurposeAndroid && asset.Spec.Purpose != PurposePwa {
			continue
		}
		icons = append(icons, ManifestIcon{
			Src:   FileName(asset.Spec),
			Sizes: fmt.Sprintf("%dx%d", asset.Spec.Width, asset.Spec.Height),
			Type:  "image/png",
		})
	}

	return Manifest{
		Name:            meta.Name,
		ShortName:       meta.ShortName,
		Icons:           icons,
		StartURL:        meta.StartURL,
		Display:         meta.Display,
		ThemeColor:      meta.ThemeColor,
		BackgroundColor: meta.BackgroundColor,
	}
}

// Encode renders the manifest as indented JSON.
func (m Manifest) Encode() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

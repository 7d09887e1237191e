package favix

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testReport(t *testing.T) *Report {
	t.Helper()

	src := loadRasterFixture(t, 512, 512, red)
	report, err := (&Generator{}).Generate(src, TierRecommended)
	if err != nil {
		t.Fatalf("could not generate the test report: %v", err)
	}
	return report
}

func TestManifest_Build(t *testing.T) {
	assert := assert.New(t)

	report := testReport(t)
	manifest := BuildManifest(DefaultAppMeta(), report.Assets)

	assert.Equal("My App", manifest.Name)
	assert.Equal("App", manifest.ShortName)
	assert.Equal("standalone", manifest.Display)

	// The recommended tier carries one android icon and the 128/512 app icons.
	sources := make(map[string]string)
	for _, icon := range manifest.Icons {
		sources[icon.Src] = icon.Sizes
		assert.Equal("image/png", icon.Type)
	}
	assert.Equal(map[string]string{
		"android-chrome-192x192.png": "192x192",
		"icon-128x128.png":           "128x128",
		"icon-512x512.png":           "512x512",
	}, sources)
}

func TestManifest_Encode(t *testing.T) {
	assert := assert.New(t)

	data, err := BuildManifest(DefaultAppMeta(), testReport(t).Assets).Encode()
	assert.NoError(err)

	var decoded map[string]any
	assert.NoError(json.Unmarshal(data, &decoded))
	assert.Equal("My App", decoded["name"])
	assert.Contains(decoded, "short_name")
	assert.Contains(decoded, "icons")
	assert.Contains(decoded, "theme_color")
}

func TestConfig_LoadAppMeta(t *testing.T) {
	assert := assert.New(t)

	meta, err := LoadAppMeta([]byte("name: Demo\nshort_name: Dm\ntheme_color: \"#336699\"\n"))
	assert.NoError(err)
	assert.Equal("Demo", meta.Name)
	assert.Equal("Dm", meta.ShortName)
	assert.Equal("#336699", meta.ThemeColor)

	// Missing keys keep their defaults.
	assert.Equal("/", meta.StartURL)
	assert.Equal("standalone", meta.Display)

	_, err = LoadAppMeta([]byte("name: [unbalanced"))
	assert.Error(err)
}

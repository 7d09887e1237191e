package favix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExec_FileNameRouting(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		spec     TargetSpec
		expected string
	}{
		{TargetSpec{16, 16, PurposeFavicon}, "favicon-16x16.png"},
		{TargetSpec{180, 180, PurposeApple}, "apple-touch-icon-180x180.png"},
		{TargetSpec{192, 192, PurposeAndroid}, "android-chrome-192x192.png"},
		{TargetSpec{512, 512, PurposePwa}, "icon-512x512.png"},
		{TargetSpec{256, 256, PurposeWindows}, "mstile-256x256.png"},
	}
	for _, tc := range testCases {
		assert.Equal(tc.expected, FileName(tc.spec))
	}
}

func TestExec_WritesOutputs(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	source := filepath.Join(dir, "logo.png")
	assert.NoError(os.WriteFile(source, encodeTestPNG(t, 512, 512, red), 0644))

	outDir := filepath.Join(dir, "out")
	op := &Ops{
		Source:      source,
		Output:      outDir,
		Tier:        TierRequired,
		AllowRaster: true,
		Manifest:    true,
		Links:       true,
	}

	report, err := (&Generator{}).Execute(op)
	assert.NoError(err)
	assert.Empty(report.Failures)

	for _, name := range []string{
		"favicon-16x16.png",
		"favicon-32x32.png",
		"apple-touch-icon-180x180.png",
		"android-chrome-192x192.png",
		"favicon.ico",
		"manifest.webmanifest",
		"favicon-links.html",
	} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(err, "expected output file %s", name)
	}

	// The written container must parse back with both legacy sizes.
	data, err := os.ReadFile(filepath.Join(outDir, "favicon.ico"))
	assert.NoError(err)
	entries, err := DecodeICO(data)
	assert.NoError(err)
	assert.Len(entries, 2)
}

func TestExec_AppliesMetadataFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	source := filepath.Join(dir, "logo.png")
	assert.NoError(os.WriteFile(source, encodeTestPNG(t, 512, 512, red), 0644))

	metaFile := filepath.Join(dir, "favix.yml")
	assert.NoError(os.WriteFile(metaFile, []byte("name: Demo App\nshort_name: Demo\n"), 0644))

	op := &Ops{
		Source:      source,
		Output:      filepath.Join(dir, "out"),
		Tier:        TierRequired,
		AllowRaster: true,
		Manifest:    true,
		MetaFile:    metaFile,
	}
	_, err := (&Generator{}).Execute(op)
	assert.NoError(err)

	data, err := os.ReadFile(filepath.Join(dir, "out", "manifest.webmanifest"))
	assert.NoError(err)
	assert.Contains(string(data), `"name": "Demo App"`)
	assert.Contains(string(data), `"short_name": "Demo"`)
}

func TestExec_RejectsRasterWithoutOverride(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	source := filepath.Join(dir, "logo.png")
	assert.NoError(os.WriteFile(source, encodeTestPNG(t, 512, 512, red), 0644))

	_, err := (&Generator{}).Execute(&Ops{Source: source, Output: dir, Tier: TierRequired})
	assert.Error(err)
	assert.Contains(err.Error(), "raster source")
}

func TestExec_RejectsUnknownFormat(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	source := filepath.Join(dir, "logo.txt")
	assert.NoError(os.WriteFile(source, []byte("plain text, no image here"), 0644))

	_, err := (&Generator{}).Execute(&Ops{Source: source, Output: dir, Tier: TierRequired, AllowRaster: true})
	assert.ErrorIs(err, ErrUnsupportedFormat)
}

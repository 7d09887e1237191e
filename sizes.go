package favix

import "fmt"

// CoverageTier is a named preset selecting how many icon sizes are generated.
// Each tier is a strict superset of the tier below it.
type CoverageTier int

const (
	// TierRequired generates only the sizes no website can reasonably ship without.
	TierRequired CoverageTier = iota
	// TierRecommended adds the sizes expected by the common platforms.
	TierRecommended
	// TierExtended adds the legacy and rarely requested sizes.
	TierExtended
)

// String implements the Stringer interface.
func (t CoverageTier) String() string {
	switch t {
	case TierRequired:
		return "required"
	case TierRecommended:
		return "recommended"
	case TierExtended:
		return "extended"
	}
	return "unknown"
}

// ParseTier converts a tier name used on the command line to a CoverageTier.
func ParseTier(s string) (CoverageTier, error) {
	switch s {
	case "required":
		return TierRequired, nil
	case "recommended":
		return TierRecommended, nil
	case "extended":
		return TierExtended, nil
	}
	return 0, fmt.Errorf("unsupported coverage tier: %q", s)
}

// Purpose tags an icon size with the output slot it feeds. The rasterizer and the
// container packer are purpose agnostic, the tag is only used to route the rendered
// image into the right filename, manifest entry or container slot.
type Purpose int

const (
	// PurposeFavicon marks the classic browser tab icons.
	PurposeFavicon Purpose = iota
	// PurposeApple marks the apple-touch-icon home screen sizes.
	PurposeApple
	// PurposeAndroid marks the android-chrome icons.
	PurposeAndroid
	// PurposePwa marks the installable web app manifest icons.
	PurposePwa
	// PurposeWindows marks the Windows tile icons.
	PurposeWindows
	// PurposeLegacyContainer marks the sizes embedded into the multi-resolution
	// favicon.ico container instead of being written as standalone files.
	PurposeLegacyContainer
)

// String implements the Stringer interface.
func (p Purpose) String() string {
	switch p {
	case PurposeFavicon:
		return "favicon"
	case PurposeApple:
		return "apple"
	case PurposeAndroid:
		return "android"
	case PurposePwa:
		return "pwa"
	case PurposeWindows:
		return "windows"
	case PurposeLegacyContainer:
		return "legacy-container"
	}
	return "unknown"
}

// TargetSpec is one requested output dimension together with its usage tag.
// Icon targets are always square.
type TargetSpec struct {
	Width   int
	Height  int
	Purpose Purpose
}

// sizeEntry binds one pixel size to the lowest tier containing it and to the
// output slots it feeds. The declaration order is the resolver output order.
type sizeEntry struct {
	size     int
	tier     CoverageTier
	purposes []Purpose
}

var sizeTable = []sizeEntry{
	{16, TierRequired, []Purpose{PurposeFavicon, PurposeLegacyContainer}},
	{32, TierRequired, []Purpose{PurposeFavicon, PurposeLegacyContainer}},
	{180, TierRequired, []Purpose{PurposeApple}},
	{192, TierRequired, []Purpose{PurposeAndroid}},
	{48, TierRecommended, []Purpose{PurposeFavicon, PurposeLegacyContainer}},
	{128, TierRecommended, []Purpose{PurposePwa, PurposeLegacyContainer}},
	{76, TierRecommended, []Purpose{PurposeApple}},
	{120, TierRecommended, []Purpose{PurposeApple}},
	{152, TierRecommended, []Purpose{PurposeApple}},
	{96, TierRecommended, []Purpose{PurposeFavicon, PurposeLegacyContainer}},
	{512, TierRecommended, []Purpose{PurposePwa}},
	{57, TierExtended, []Purpose{PurposeApple}},
	{72, TierExtended, []Purpose{PurposeApple}},
	{114, TierExtended, []Purpose{PurposeApple}},
	{144, TierExtended, []Purpose{PurposeApple}},
	{64, TierExtended, []Purpose{PurposeFavicon, PurposeLegacyContainer}},
	{256, TierExtended, []Purpose{PurposeWindows, PurposeLegacyContainer}},
	{384, TierExtended, []Purpose{PurposePwa}},
}

// TargetSizes resolves a coverage tier to the ordered list of target specs to be
// generated. The result is de-duplicated by (width, purpose) and higher tiers
// always contain every spec of the lower ones.
func TargetSizes(tier CoverageTier) []TargetSpec {
	specs := make([]TargetSpec, 0, len(sizeTable))
	seen := make(map[TargetSpec]bool)

	for _, entry := range sizeTable {
		if entry.tier > tier {
			continue
		}
		for _, purpose := range entry.purposes {
			spec := TargetSpec{Width: entry.size, Height: entry.size, Purpose: purpose}
			if seen[spec] {
				continue
			}
			seen[spec] = true
			specs = append(specs, spec)
		}
	}
	return specs
}

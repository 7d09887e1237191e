package favix

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// LinkTag is one HTML <link> element referencing a generated icon.
type LinkTag struct {
	Rel   string
	Href  string
	Sizes string
	Type  string
}

// HTML formats the tag as a self closing <link> element.
func (t LinkTag) HTML() string {
	parts := []string{
		fmt.Sprintf("rel=%q", t.Rel),
		fmt.Sprintf("href=%q", t.Href),
	}
	if t.Sizes != "" {
		parts = append(parts, fmt.Sprintf("sizes=%q", t.Sizes))
	}
	if t.Type != "" {
		parts = append(parts, fmt.Sprintf("type=%q", t.Type))
	}
	return "<link " + strings.Join(parts, " ") + "/>"
}

// relPriority orders the emitted tags: the legacy shortcut first, the generic
// icons next, the apple touch icons last.
var relPriority = map[string]int{
	"shortcut icon":    0,
	"icon":             1,
	"apple-touch-icon": 2,
}

// LinkTags builds the <link> tag list for the generated report, prefixing every
// href with base when it is non empty. The container file gets a single legacy
// shortcut entry, Windows tiles are referenced from browserconfig metadata and
// are never linked.
func LinkTags(report *Report, base string) []LinkTag {
	join := func(name string) string {
		if base == "" {
			return name
		}
		return strings.TrimRight(base, "/") + "/" + name
	}

	var tags []LinkTag
	if len(report.Container) > 0 {
		tags = append(tags, LinkTag{
			Rel:  "shortcut icon",
			Href: join("favicon.ico"),
			Type: "image/x-icon",
		})
	}

	seen := make(map[string]bool)
	for _, asset := range report.Assets {
		var rel string
		switch asset.Spec.Purpose {
		case PurposeApple:
			rel = "apple-touch-icon"
		case PurposeFavicon, PurposeAndroid, PurposePwa:
			rel = "icon"
		default:
			continue
		}

		sizes := fmt.Sprintf("%dx%d", asset.Spec.Width, asset.Spec.Height)
		key := rel + " " + sizes
		if seen[key] {
			continue
		}
		seen[key] = true

		tags = append(tags, LinkTag{
			Rel:   rel,
			Href:  join(FileName(asset.Spec)),
			Sizes: sizes,
			Type:  "image/png",
		})
	}

	slices.SortStableFunc(tags, func(a, b LinkTag) bool {
		if relPriority[a.Rel] != relPriority[b.Rel] {
			return relPriority[a.Rel] < relPriority[b.Rel]
		}
		return sizePx(a.Sizes) < sizePx(b.Sizes)
	})
	return tags
}

// RenderLinks returns the tags as an HTML snippet, one tag per line.
func RenderLinks(tags []LinkTag) string {
	var sb strings.Builder
	for _, tag := range tags {
		sb.WriteString(tag.HTML())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// sizePx parses the numeric width out of a "WxH" sizes attribute.
func sizePx(sizes string) int {
	w, _, found := strings.Cut(sizes, "x")
	if !found {
		return 0
	}
	n, err := strconv.Atoi(w)
	if err != nil {
		return 0
	}
	return n
}

// Package placeholder synthesizes deterministic SVG placeholder images for
// catalog products that have no photo yet. Rendering is pure string
// templating; no raster engine is involved.
package placeholder

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/lithammer/dedent"
)

const (
	// BrandCaption is rendered at the bottom of every placeholder.
	BrandCaption = "SP CUSTOMS"

	// ContentType of the generated images.
	ContentType = "image/svg+xml"

	maxNameLen = 30
)

// svgTemplate is a 600x600 canvas: diagonal gradient background, a centered
// rounded card with a lightning-bolt glyph, the product name and the brand
// caption. Fields: gradient id suffix is fixed; %s slots are base color,
// darkened color, glyph tint, product name, brand caption.
var svgTemplate = strings.TrimSpace(dedent.Dedent(`
	<svg xmlns="http://www.w3.org/2000/svg" width="600" height="600" viewBox="0 0 600 600">
	  <defs>
	    <linearGradient id="bg" x1="0%%" y1="0%%" x2="100%%" y2="100%%">
	      <stop offset="0%%" stop-color="%s"/>
	      <stop offset="100%%" stop-color="%s"/>
	    </linearGradient>
	  </defs>
	  <rect width="600" height="600" fill="url(#bg)"/>
	  <rect x="150" y="170" width="300" height="220" rx="24" fill="#ffffff" fill-opacity="0.92"/>
	  <path d="M330 200 L270 300 L310 300 L280 360 L360 270 L315 270 L345 200 Z" fill="%s"/>
	  <text x="300" y="440" font-family="Arial, sans-serif" font-size="28" font-weight="bold" fill="#ffffff" text-anchor="middle">%s</text>
	  <text x="300" y="480" font-family="Arial, sans-serif" font-size="18" fill="#ffffff" fill-opacity="0.8" text-anchor="middle" letter-spacing="4">%s</text>
	</svg>
`))

// ProductSVG renders the placeholder markup for a product. Output is
// deterministic for a given (name, color) pair.
func ProductSVG(name, color string) string {
	return fmt.Sprintf(
		svgTemplate,
		color,
		DarkenHex(color),
		color,
		escapeText(TruncateText(name, maxNameLen)),
		BrandCaption,
	)
}

// DataURI base64-encodes SVG markup into an image data URI.
func DataURI(svg string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename derives the upload filename from the product name: lower-cased,
// whitespace runs replaced with hyphens, .svg extension.
func Filename(name string) string {
	slug := whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
	return slug + ".svg"
}

// escapeText escapes the characters XML text nodes can't contain literally.
// Product names come from user input, so & and < do occur.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

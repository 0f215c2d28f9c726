package placeholder

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultColor is used for products without a category or with a category
// not present in categoryColors.
const DefaultColor = "#6366f1"

// categoryColors maps catalog category names to placeholder base colors.
// Matching is exact and case-sensitive.
var categoryColors = map[string]string{
	"Car Audio":            "#f97316",
	"LED Lighting":         "#8b5cf6",
	"Dash Cams":            "#3b82f6",
	"Security Systems":     "#ef4444",
	"Phone Mounts":         "#10b981",
	"Interior Accessories": "#f59e0b",
	"Exterior Accessories": "#06b6d4",
}

// CategoryColor resolves the placeholder base color for a category name.
func CategoryColor(category string) string {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return DefaultColor
}

// darkenOffset is subtracted from each RGB channel to produce the gradient
// end color.
const darkenOffset = 40

// DarkenHex darkens a #rrggbb color by subtracting a fixed offset from each
// channel, clamping at zero. Input is assumed to be a valid 6-digit hex
// color; anything else is returned unchanged.
func DarkenHex(hex string) string {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return hex
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return hex
	}

	r := darkenChannel(int(v >> 16 & 0xff))
	g := darkenChannel(int(v >> 8 & 0xff))
	b := darkenChannel(int(v & 0xff))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func darkenChannel(c int) int {
	c -= darkenOffset
	if c < 0 {
		return 0
	}
	return c
}

// TruncateText shortens s to at most max characters, replacing the tail with
// "..." when it doesn't fit.
func TruncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

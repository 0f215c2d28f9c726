package placeholder

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductSVG(t *testing.T) {
	svg := ProductSVG("LED Strip Light", "#f97316")

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, `width="600" height="600"`)
	assert.Contains(t, svg, `stop-color="#f97316"`)
	assert.Contains(t, svg, `stop-color="#d14b00"`)
	assert.Contains(t, svg, ">LED Strip Light</text>")
	assert.Contains(t, svg, ">SP CUSTOMS</text>")
	// No unexpanded format verbs left behind
	assert.NotContains(t, svg, "%s")
	assert.NotContains(t, svg, "%%")

	// Deterministic for the same inputs
	assert.Equal(t, svg, ProductSVG("LED Strip Light", "#f97316"))
}

func TestProductSVGTruncatesLongNames(t *testing.T) {
	svg := ProductSVG("LED Strip Lights Premium Kit 5m RGB", "#f97316")
	assert.Contains(t, svg, ">LED Strip Lights Premium Ki...</text>")
}

func TestProductSVGEscapesMarkup(t *testing.T) {
	svg := ProductSVG(`Amp <500W> & Sub`, "#f97316")
	assert.Contains(t, svg, ">Amp &lt;500W&gt; &amp; Sub</text>")
	assert.NotContains(t, svg, "<500W>")
}

func TestDataURI(t *testing.T) {
	svg := ProductSVG("Dash Cam", "#3b82f6")
	uri := DataURI(svg)

	assert.True(t, strings.HasPrefix(uri, "data:image/svg+xml;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/svg+xml;base64,"))
	assert.Nil(t, err)
	assert.Equal(t, svg, string(decoded))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "led-strip-light.svg", Filename("LED Strip Light"))
	assert.Equal(t, "dash-cam-pro.svg", Filename("Dash  Cam\tPro"))
	assert.Equal(t, "subwoofer.svg", Filename("Subwoofer"))
}

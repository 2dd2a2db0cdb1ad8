package theme

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyForegroundGrad renders input with a horizontal foreground gradient
// from color1 to color2, one step per grapheme cluster.
func ApplyForegroundGrad(s *Styles, input string, color1, color2 color.Color) string {
	if input == "" {
		return ""
	}
	if uniseg.GraphemeClusterCount(input) == 1 {
		return s.Base.Foreground(color1).Render(input)
	}

	var clusters []string
	gr := uniseg.NewGraphemes(input)
	for gr.Next() {
		clusters = append(clusters, string(gr.Runes()))
	}

	ramp := blendColors(len(clusters), color1, color2)
	var o strings.Builder
	for i, c := range ramp {
		o.WriteString(s.Base.Foreground(c).Render(clusters[i]))
	}
	return o.String()
}

// blendColors returns size colors blended between the stops. Blending happens
// in Hcl space to stay in gamut.
func blendColors(size int, stops ...color.Color) []color.Color {
	if len(stops) < 2 || size < 1 {
		return nil
	}

	stopsPrime := make([]colorful.Color, len(stops))
	for i, k := range stops {
		stopsPrime[i], _ = colorful.MakeColor(k)
	}

	numSegments := len(stopsPrime) - 1
	blended := make([]color.Color, 0, size)

	segmentSizes := make([]int, numSegments)
	baseSize := size / numSegments
	remainder := size % numSegments
	for i := range numSegments {
		segmentSizes[i] = baseSize
		if i < remainder {
			segmentSizes[i]++
		}
	}

	for i := range numSegments {
		c1 := stopsPrime[i]
		c2 := stopsPrime[i+1]
		segmentSize := segmentSizes[i]
		for j := range segmentSize {
			var t float64
			if segmentSize > 1 {
				t = float64(j) / float64(segmentSize-1)
			}
			blended = append(blended, c1.BlendHcl(c2, t))
		}
	}

	return blended
}

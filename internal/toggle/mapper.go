package toggle

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// FullTurn is the thumb's rotation across one complete transition.
const FullTurn = 2 * math.Pi

// labelDrift is how far labels slide (in cells) across a full transition.
const labelDrift = 2.0

// Theme is the immutable per-control visual configuration.
type Theme struct {
	ColorOff colorful.Color
	ColorOn  colorful.Color
	TextOff  string
	TextOn   string
	IconOff  rune
	IconOn   rune
	TextSize float64
}

// DefaultTheme returns the stock red/green theme with flag and check
// thumb glyphs.
func DefaultTheme() Theme {
	return Theme{
		ColorOff: colorful.Color{R: 0.90, G: 0.22, B: 0.21},
		ColorOn:  colorful.Color{R: 0.22, G: 0.66, B: 0.37},
		TextOff:  "Off",
		TextOn:   "On",
		IconOff:  '⚑',
		IconOn:   '✓',
		TextSize: 14.0,
	}
}

// Travel is the thumb's horizontal travel in cells across a full
// transition: the interior track width.
func (t Theme) Travel() float64 {
	return t.TextSize
}

// VisualParams is the full set of render inputs derived from one progress
// sample. It has no lifecycle: recomputed on every update, never cached.
type VisualParams struct {
	Blended         colorful.Color
	OffLabelOpacity float64
	OnLabelOpacity  float64
	OffLabelOffset  float64
	OnLabelOffset   float64
	ThumbOffset     float64
	ThumbRotation   float64
	OffIconOpacity  float64
	OnIconOpacity   float64
	// ThumbContrast is the color the thumb glyph is drawn in so it stays
	// legible against the white thumb: the track's blended color.
	ThumbContrast colorful.Color
}

// Params maps a progress value to the complete parameter set for a theme.
func Params(p float64, t Theme) VisualParams {
	blended := BlendColor(t.ColorOff, t.ColorOn, p)

	return VisualParams{
		Blended:         blended,
		ThumbContrast:   blended,
		OffLabelOpacity: OffLabelOpacity(p),
		OnLabelOpacity:  OnLabelOpacity(p),
		OffLabelOffset:  OffLabelOffset(p),
		OnLabelOffset:   OnLabelOffset(p),
		ThumbOffset:     ThumbOffset(p, t.Travel()),
		ThumbRotation:   ThumbRotation(p),
		OffIconOpacity:  OffLabelOpacity(p),
		OnIconOpacity:   OnLabelOpacity(p),
	}
}

// BlendColor interpolates channel-wise between two RGB colors. The
// endpoints are returned exactly at p=0 and p=1.
func BlendColor(off, on colorful.Color, p float64) colorful.Color {
	t := Clamp01(p)

	return colorful.Color{
		R: off.R*(1-t) + on.R*t,
		G: off.G*(1-t) + on.G*t,
		B: off.B*(1-t) + on.B*t,
	}
}

// OnLabelOpacity fades the on label in as progress rises.
func OnLabelOpacity(p float64) float64 {
	return Clamp01(p)
}

// OffLabelOpacity fades the off label out as progress rises. The two label
// opacities always sum to one: the labels cross-fade.
func OffLabelOpacity(p float64) float64 {
	return 1 - OnLabelOpacity(p)
}

// OffLabelOffset drifts the off label sideways as progress advances.
func OffLabelOffset(p float64) float64 {
	return labelDrift * Clamp01(p)
}

// OnLabelOffset drifts the on label in the same direction: it starts
// displaced and settles at zero as progress reaches one.
func OnLabelOffset(p float64) float64 {
	return labelDrift * (1 - Clamp01(p))
}

// ThumbOffset slides the thumb across the given travel width.
func ThumbOffset(p, travel float64) float64 {
	return travel * Clamp01(p)
}

// ThumbRotation spins the thumb exactly one full turn across a complete
// transition: 0 at progress 0, 2π at progress 1.
func ThumbRotation(p float64) float64 {
	return FullTurn * Clamp01(p)
}

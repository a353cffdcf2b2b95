// pkg/render/color.go
package render

import (
	"image/color"

	"go-lifi-sim/internal/config"
)

// Palette holds every color the scene and HUD draw with.
type Palette struct {
	Background  color.RGBA
	Grid        color.RGBA
	Body        color.RGBA
	Text        color.RGBA
	Established color.RGBA
	Searching   color.RGBA
	Missing     color.RGBA
	Payload     color.RGBA
	Overlay     color.RGBA
	StrokeWidth float32
}

// DefaultPalette reads the colors from config.
func DefaultPalette() Palette {
	return Palette{
		Background:  config.BackgroundColor,
		Grid:        config.GridColor,
		Body:        config.BodyColor,
		Text:        config.TextColor,
		Established: config.EstablishedColor,
		Searching:   config.SearchingColor,
		Missing:     config.MissingColor,
		Payload:     config.PayloadColor,
		Overlay:     config.PauseOverlay,
		StrokeWidth: config.BeamStrokeWidth,
	}
}

// Beam picks green for an established path and cyan while searching.
func (p Palette) Beam(established bool) color.RGBA {
	if established {
		return p.Established
	}
	return p.Searching
}

// Status picks the color of a FOUND/SEARCHING label.
func (p Palette) Status(found bool) color.RGBA {
	if found {
		return p.Established
	}
	return p.Missing
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// pkg/render/fonts.go
package render

import (
	"fmt"

	"go-lifi-sim/internal/config"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Faces are the HUD font faces, one per text size.
type Faces struct {
	Small font.Face
	Body  font.Face
	Big   font.Face
}

// LoadFaces parses the embedded Go fonts. Nothing is read from disk.
func LoadFaces() (Faces, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return Faces{}, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return Faces{}, fmt.Errorf("parse bold font: %w", err)
	}

	var f Faces
	if f.Small, err = newFace(regular, config.FontSizeSmall); err != nil {
		return Faces{}, err
	}
	if f.Body, err = newFace(regular, config.FontSizeBody); err != nil {
		return Faces{}, err
	}
	if f.Big, err = newFace(bold, config.FontSizeBig); err != nil {
		return Faces{}, err
	}
	return f, nil
}

func newFace(tt *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %gpt: %w", size, err)
	}
	return face, nil
}

// internal/ui/input_box.go
package ui

import (
	"fmt"
	"strings"

	"go-lifi-sim/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// InputBox shows the bits typed so far, padded with underscores.
type InputBox struct {
	X, Y, W, H float32
	face       font.Face
}

func NewInputBox(face font.Face, x, y, w, h float32) *InputBox {
	return &InputBox{X: x, Y: y, W: w, H: h, face: face}
}

// Caption is the box text for bits typed out of size.
func Caption(bits string, size int) string {
	pad := size - len(bits)
	if pad < 0 {
		pad = 0
	}
	return fmt.Sprintf("Input (%d bits): %s%s", size, bits, strings.Repeat("_", pad))
}

func (b *InputBox) Draw(screen *ebiten.Image, bits string, size int, complete bool, palette render.Palette) {
	border := palette.Text
	if complete {
		border = palette.Established
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, palette.Background, false)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, border, false)

	caption := Caption(bits, size)
	tb := text.BoundString(b.face, caption)
	text.Draw(screen, caption, b.face, int(b.X)+10, int(b.Y+b.H/2)+tb.Dy()/2, palette.Text)
}

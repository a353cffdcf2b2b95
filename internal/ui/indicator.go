// internal/ui/indicator.go
package ui

import (
	"math"
	"time"

	"go-lifi-sim/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// StatusIndicator is one "Label: FOUND/SEARCHING" line with a dot that
// pulses briefly whenever the status flips.
type StatusIndicator struct {
	Label      string
	X, Y       float32
	Radius     float32
	Found      bool
	LastChange time.Time
}

func NewStatusIndicator(label string, x, y, radius float32) *StatusIndicator {
	return &StatusIndicator{
		Label:  label,
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Set updates the status and restarts the pulse on a change.
func (i *StatusIndicator) Set(found bool) {
	if found != i.Found {
		i.Found = found
		i.LastChange = time.Now()
	}
}

// Text is the status line as shown.
func (i *StatusIndicator) Text() string {
	if i.Found {
		return i.Label + ": FOUND"
	}
	return i.Label + ": SEARCHING"
}

// Draw renders the dot at (X, Y) with the line to its right.
func (i *StatusIndicator) Draw(screen *ebiten.Image, face font.Face, palette render.Palette) {
	elapsed := time.Since(i.LastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	clr := palette.Status(i.Found)
	vector.DrawFilledCircle(screen, i.X, i.Y, r, clr, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, render.DarkenColor(clr), true)

	b := text.BoundString(face, i.Text())
	text.Draw(screen, i.Text(), face, int(i.X+i.Radius*2), int(i.Y)+b.Dy()/2, clr)
}

// StatusBoard stacks the three path indicators in the top-right corner.
type StatusBoard struct {
	Splitter *StatusIndicator
	Receiver *StatusIndicator
	Direct   *StatusIndicator
	face     font.Face
}

func NewStatusBoard(face font.Face, screenWidth int) *StatusBoard {
	const (
		width      = 250
		lineHeight = 26
		top        = 24
		radius     = 6
	)
	x := float32(screenWidth - width)
	return &StatusBoard{
		Splitter: NewStatusIndicator("Splitter", x, top, radius),
		Receiver: NewStatusIndicator("Beam-Receiver", x, top+lineHeight, radius),
		Direct:   NewStatusIndicator("Direct-RX2", x, top+2*lineHeight, radius),
		face:     face,
	}
}

// Update copies the three path flags.
func (b *StatusBoard) Update(emitterRelay, relayReceiver, direct bool) {
	b.Splitter.Set(emitterRelay)
	b.Receiver.Set(relayReceiver)
	b.Direct.Set(direct)
}

func (b *StatusBoard) Draw(screen *ebiten.Image, palette render.Palette) {
	b.Splitter.Draw(screen, b.face, palette)
	b.Receiver.Draw(screen, b.face, palette)
	b.Direct.Draw(screen, b.face, palette)
}

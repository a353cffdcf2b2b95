// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"go-lifi-sim/internal/entity"
	"go-lifi-sim/pkg/geom"
	"go-lifi-sim/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelMargin = 10
	panelWidth  = 260
	lineHeight  = 18
)

// ControlsHint is the one-line key reference drawn at the bottom.
const ControlsHint = "0/1: type bits  Backspace: delete  Arrows/WASD: move RX  P: pause  R: reset  Esc: quit"

// InfoPanel lists element positions and the controls hint.
type InfoPanel struct {
	face         font.Face
	screenHeight int
}

func NewInfoPanel(face font.Face, screenHeight int) *InfoPanel {
	return &InfoPanel{face: face, screenHeight: screenHeight}
}

// Lines returns the panel text for snap.
func Lines(snap entity.Snapshot) []string {
	return []string{
		"TX: " + formatPoint(snap.Emitter.Pos) + " " + snap.Emitter.State,
		"Splitter: " + formatPoint(snap.Relay.Pos) + " " + snap.Relay.State,
		"RX: " + formatPoint(geom.Pt(snap.Receiver.Rect.X, snap.Receiver.Rect.Y)),
		"Display: " + formatPoint(geom.Pt(snap.Receiver.Display.X, snap.Receiver.Display.Y)),
		fmt.Sprintf("Scan: TX %.0f°  Splitter %.0f°", snap.Emitter.Angle, snap.Relay.Angle),
	}
}

func formatPoint(p geom.Point) string {
	return fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y)
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap entity.Snapshot, palette render.Palette) {
	lines := Lines(snap)
	h := float32(len(lines)*lineHeight + 2*panelMargin)
	x, y := float32(panelMargin), float32(panelMargin)

	vector.DrawFilledRect(screen, x, y, panelWidth, h, palette.Background, false)
	vector.StrokeRect(screen, x, y, panelWidth, h, 1, palette.Grid, false)

	for i, line := range lines {
		text.Draw(screen, line, p.face, int(x)+panelMargin, int(y)+panelMargin+(i+1)*lineHeight-4, palette.Text)
	}
	text.Draw(screen, ControlsHint, p.face, panelMargin, p.screenHeight-panelMargin, render.DarkenColor(palette.Text))
}

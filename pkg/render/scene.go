// pkg/render/scene.go
package render

import (
	"image/color"

	"go-lifi-sim/internal/config"
	"go-lifi-sim/internal/entity"
	"go-lifi-sim/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// SceneRenderer draws the optical bench: background grid, emitter, relay,
// both receivers with their displays, and the beams between them.
type SceneRenderer struct {
	palette      Palette
	labelFace    font.Face
	payloadFace  font.Face
	screenWidth  int
	screenHeight int
	strokeImg    *ebiten.Image
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	background   *ebiten.Image // pre-rendered grid
}

func NewSceneRenderer(palette Palette, faces Faces, screenWidth, screenHeight int) *SceneRenderer {
	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	r := &SceneRenderer{
		palette:      palette,
		labelFace:    faces.Small,
		payloadFace:  faces.Body,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		strokeImg:    strokeImg,
		strokeVs:     make([]ebiten.Vertex, 0, 16),
		strokeIs:     make([]uint16, 0, 24),
		background:   ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderBackground()
	return r
}

// RenderBackground redraws the cached grid image.
func (r *SceneRenderer) RenderBackground() {
	r.background.Clear()
	r.background.Fill(r.palette.Background)
	w, h := float32(r.screenWidth), float32(r.screenHeight)
	for x := 0; x < r.screenWidth; x += config.GridSpacing {
		vector.StrokeLine(r.background, float32(x), 0, float32(x), h, config.GridStrokeWidth, r.palette.Grid, false)
	}
	for y := 0; y < r.screenHeight; y += config.GridSpacing {
		vector.StrokeLine(r.background, 0, float32(y), w, float32(y), config.GridStrokeWidth, r.palette.Grid, false)
	}
}

// Draw renders snap. Beams go under the bodies so they appear to leave
// from inside the emitter and relay.
func (r *SceneRenderer) Draw(screen *ebiten.Image, snap entity.Snapshot) {
	screen.DrawImage(r.background, nil)

	for _, b := range snap.Beams() {
		r.drawBeam(screen, b.From, b.To, r.palette.Beam(b.Established))
	}

	r.drawEmitter(screen, snap.Emitter)
	r.drawRelay(screen, snap.Relay)
	r.drawReceiver(screen, snap.Receiver)
	r.drawReceiver(screen, snap.DirectReceiver)
}

func (r *SceneRenderer) drawBeam(target *ebiten.Image, from, to geom.Point, clr color.RGBA) {
	path := vector.Path{}
	path.MoveTo(float32(from.X), float32(from.Y))
	path.LineTo(float32(to.X), float32(to.Y))

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:   r.palette.StrokeWidth,
		LineCap: vector.LineCapRound,
	})
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(clr.R) / 255
		r.strokeVs[i].ColorG = float32(clr.G) / 255
		r.strokeVs[i].ColorB = float32(clr.B) / 255
		r.strokeVs[i].ColorA = float32(clr.A) / 255
	}
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *SceneRenderer) drawEmitter(screen *ebiten.Image, e entity.EmitterView) {
	r.drawBox(screen, e.Body, r.palette.Body)
	r.drawLabel(screen, "TX", e.Body)
}

func (r *SceneRenderer) drawRelay(screen *ebiten.Image, rv entity.RelayView) {
	cx, cy, rad := float32(rv.Pos.X), float32(rv.Pos.Y), float32(rv.Radius)
	vector.DrawFilledCircle(screen, cx, cy, rad, r.palette.Body, true)
	vector.StrokeCircle(screen, cx, cy, rad, 2, DarkenColor(r.palette.Body), true)
	text.Draw(screen, "Splitter", r.labelFace, int(cx-rad), int(cy-rad)-6, r.palette.Text)
}

func (r *SceneRenderer) drawReceiver(screen *ebiten.Image, rv entity.ReceiverView) {
	r.drawBox(screen, rv.Rect, r.palette.Body)
	r.drawLabel(screen, rv.Name, rv.Rect)

	d := rv.Display
	vector.DrawFilledRect(screen, float32(d.X), float32(d.Y), float32(d.W), float32(d.H), color.White, false)
	vector.StrokeRect(screen, float32(d.X), float32(d.Y), float32(d.W), float32(d.H), 2, r.palette.Text, false)
	if rv.Payload != "" {
		b := text.BoundString(r.payloadFace, rv.Payload)
		x := int(d.X+d.W/2) - b.Dx()/2
		y := int(d.Y+d.H/2) + b.Dy()/2
		text.Draw(screen, rv.Payload, r.payloadFace, x, y, r.palette.Text)
	}
}

func (r *SceneRenderer) drawBox(screen *ebiten.Image, rect geom.Rect, fill color.RGBA) {
	x, y, w, h := float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H)
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 2, DarkenColor(fill), false)
}

// drawLabel centers label inside rect.
func (r *SceneRenderer) drawLabel(screen *ebiten.Image, label string, rect geom.Rect) {
	b := text.BoundString(r.labelFace, label)
	c := rect.Center()
	text.Draw(screen, label, r.labelFace, int(c.X)-b.Dx()/2, int(c.Y)+b.Dy()/2, r.palette.Text)
}

// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth    = 900
	ScreenHeight   = 600
	TicksPerSecond = 60

	// Lasers are long and focused; the beam reaches across the whole screen.
	BeamLength       = 1000.0
	EmitterStep      = 1.0 // degrees per tick
	RelayStep        = 5.0 // degrees per tick, must stay above EmitterStep
	ReceiverMoveStep = 5.0 // pixels per tick while an arrow key is held

	PayloadBits = 8

	EmitterWidth   = 80.0
	EmitterHeight  = 60.0
	RelayRadius    = 30.0
	ReceiverWidth  = 120.0
	ReceiverHeight = 70.0

	DisplayOffsetX = 20.0
	DisplayOffsetY = 10.0
	DisplayWidth   = 160.0
	DisplayHeight  = 60.0

	GridSpacing     = 50
	GridStrokeWidth = 1.0
	BeamStrokeWidth = 3.0

	FontSizeSmall = 14.0
	FontSizeBody  = 20.0
	FontSizeBig   = 30.0

	DebugAddr = "localhost:6060"
)

var (
	BackgroundColor  = color.RGBA{240, 245, 255, 255}
	GridColor        = color.RGBA{220, 220, 220, 255}
	BodyColor        = color.RGBA{80, 180, 255, 255}
	TextColor        = color.RGBA{0, 0, 0, 255}
	EstablishedColor = color.RGBA{60, 220, 60, 255} // locked beam, FOUND status
	SearchingColor   = color.RGBA{0, 255, 255, 255} // beam while scanning
	MissingColor     = color.RGBA{255, 60, 60, 255} // SEARCHING status text
	PayloadColor     = color.RGBA{255, 220, 60, 255}
	PauseOverlay     = color.RGBA{0, 0, 0, 128}
)

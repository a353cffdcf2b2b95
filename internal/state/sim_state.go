// internal/state/sim_state.go
package state

import (
	"context"
	"fmt"

	"go-lifi-sim/internal/app"
	"go-lifi-sim/internal/entity"
	"go-lifi-sim/internal/logging"
	"go-lifi-sim/internal/ui"
	"go-lifi-sim/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SimState runs the simulation one tick per Update and draws the bench.
type SimState struct {
	sm     *StateMachine
	sim    *app.Simulation
	faces  render.Faces
	logger logging.Logger
	debug  bool

	palette   render.Palette
	scene     *render.SceneRenderer
	status    *ui.StatusBoard
	inputBox  *ui.InputBox
	infoPanel *ui.InfoPanel

	snap  entity.Snapshot
	chars []rune
}

func NewSimState(sm *StateMachine, sim *app.Simulation, faces render.Faces, logger logging.Logger, debug bool) *SimState {
	cfg := sim.Config()
	w, h := int(cfg.Width), int(cfg.Height)
	palette := render.DefaultPalette()
	if logger == nil {
		logger = logging.Noop()
	}
	return &SimState{
		sm:        sm,
		sim:       sim,
		faces:     faces,
		logger:    logger,
		debug:     debug,
		palette:   palette,
		scene:     render.NewSceneRenderer(palette, faces, w, h),
		status:    ui.NewStatusBoard(faces.Small, w),
		inputBox:  ui.NewInputBox(faces.Small, float32(w)/2-150, 10, 300, 36),
		infoPanel: ui.NewInfoPanel(faces.Small, h),
		snap:      sim.Snapshot(),
	}
}

func (s *SimState) Enter() {}

func (s *SimState) Exit() {}

func (s *SimState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(NewPauseState(s.sm, s, s.faces.Big))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := s.sim.Reset(); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}

	s.handlePayloadInput()
	s.handleMovement()

	s.snap = s.sim.Step()
	s.status.Update(s.snap.Paths.EmitterRelay, s.snap.Paths.RelayReceiver, s.snap.Paths.DirectReceiver)
	return nil
}

func (s *SimState) handlePayloadInput() {
	s.chars = ebiten.AppendInputChars(s.chars[:0])
	for _, r := range s.chars {
		if err := s.sim.Payload.Append(r); err != nil {
			s.logger.Debug(context.Background(), "payload key ignored", logging.Err(err))
		}
	}
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		s.sim.Payload.Backspace()
	}
}

// handleMovement applies one move step per held key, one axis at a time.
func (s *SimState) handleMovement() {
	step := s.sim.Config().MoveStep
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		s.sim.MoveReceiver(-step, 0)
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		s.sim.MoveReceiver(step, 0)
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		s.sim.MoveReceiver(0, -step)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		s.sim.MoveReceiver(0, step)
	}
}

func (s *SimState) Draw(screen *ebiten.Image) {
	s.scene.Draw(screen, s.snap)
	s.infoPanel.Draw(screen, s.snap, s.palette)
	s.status.Draw(screen, s.palette)
	p := s.sim.Payload
	s.inputBox.Draw(screen, p.String(), p.Size(), p.Complete(), s.palette)

	if s.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.2f  FPS: %0.2f  tick: %d", ebiten.ActualTPS(), ebiten.ActualFPS(), s.snap.Tick), 10, int(s.sim.Config().Height)-40)
	}
}

// repeatingKeyPressed fires on press and then repeatedly while held.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

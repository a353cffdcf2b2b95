// Package audio plays a short chime whenever an optical path is established.
package audio

import (
	"context"
	"time"

	"go-lifi-sim/internal/audio/synth"
	"go-lifi-sim/internal/event"
	"go-lifi-sim/internal/logging"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate    = 48000
	chimeDuration = 120 * time.Millisecond
	chimeVolume   = 0.3
)

// Cue pitch in Hz per path.
var pathPitch = map[event.Path]float64{
	event.PathEmitterRelay:   660,
	event.PathRelayReceiver:  880,
	event.PathDirectReceiver: 990,
}

// Chime is an event.Listener that plays a cue on every established
// transition. Lost transitions stay silent.
type Chime struct {
	ctx     *audio.Context
	cues    map[event.Path][]byte
	players []*audio.Player
	logger  logging.Logger
}

// NewChime creates the audio context and renders the cues. Only one audio
// context may exist per process.
func NewChime(logger logging.Logger) *Chime {
	if logger == nil {
		logger = logging.Noop()
	}
	c := &Chime{
		ctx:    audio.NewContext(sampleRate),
		cues:   make(map[event.Path][]byte, len(pathPitch)),
		logger: logger,
	}
	for path, freq := range pathPitch {
		c.cues[path] = synth.Tone(sampleRate, freq, chimeDuration, chimeVolume)
	}
	return c
}

// OnEvent implements event.Listener.
func (c *Chime) OnEvent(e event.Event) {
	if !e.Type.Established() {
		return
	}
	tr, ok := e.Data.(event.Transition)
	if !ok {
		return
	}
	cue, ok := c.cues[tr.Path]
	if !ok {
		return
	}
	c.reap()
	p := c.ctx.NewPlayerFromBytes(cue)
	p.Play()
	// kept until finished
	c.players = append(c.players, p)
	c.logger.Debug(context.Background(), "chime", logging.String("path", string(tr.Path)))
}

func (c *Chime) reap() {
	live := c.players[:0]
	for _, p := range c.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	c.players = live
}

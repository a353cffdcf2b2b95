// Package synth renders short PCM cues for the audio player.
package synth

import (
	"encoding/binary"
	"math"
	"time"
)

// BytesPerFrame is the size of one 16-bit stereo frame.
const BytesPerFrame = 4

// Tone renders a sine at freq Hz as signed 16-bit little-endian stereo PCM,
// with a linear fade-out so the cue ends without a click.
func Tone(sampleRate int, freq float64, d time.Duration, volume float64) []byte {
	frames := int(float64(sampleRate) * d.Seconds())
	if frames <= 0 || sampleRate <= 0 {
		return nil
	}
	volume = math.Max(0, math.Min(1, volume))

	pcm := make([]byte, frames*BytesPerFrame)
	for i := 0; i < frames; i++ {
		env := 1 - float64(i)/float64(frames)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * volume * env
		s := uint16(int16(v * math.MaxInt16))
		off := i * BytesPerFrame
		binary.LittleEndian.PutUint16(pcm[off:], s)
		binary.LittleEndian.PutUint16(pcm[off+2:], s)
	}
	return pcm
}

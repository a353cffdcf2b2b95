package synth

import (
	"encoding/binary"
	"testing"
	"time"
)

func TestToneLength(t *testing.T) {
	pcm := Tone(48000, 880, 100*time.Millisecond, 0.5)
	if got, want := len(pcm), 4800*BytesPerFrame; got != want {
		t.Fatalf("len = %d, want %d", got, want)
	}
}

func TestToneIsStereoAndBounded(t *testing.T) {
	pcm := Tone(8000, 440, 50*time.Millisecond, 0.25)
	const limit = 8192 // 0.25 of full scale, rounded up
	for off := 0; off < len(pcm); off += BytesPerFrame {
		l := int16(binary.LittleEndian.Uint16(pcm[off:]))
		r := int16(binary.LittleEndian.Uint16(pcm[off+2:]))
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", off/BytesPerFrame, l, r)
		}
		if l > limit || l < -limit {
			t.Fatalf("frame %d: sample %d exceeds volume", off/BytesPerFrame, l)
		}
	}
}

func TestToneEmptyInputs(t *testing.T) {
	if pcm := Tone(48000, 440, 0, 1); pcm != nil {
		t.Fatalf("zero duration produced %d bytes", len(pcm))
	}
	if pcm := Tone(0, 440, time.Second, 1); pcm != nil {
		t.Fatalf("zero sample rate produced %d bytes", len(pcm))
	}
}

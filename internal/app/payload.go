package app

import (
	"errors"
	"fmt"
)

var (
	// ErrPayloadFull is returned when a bit is typed into a full payload.
	ErrPayloadFull = errors.New("payload is full")
	// ErrInvalidBit is returned for anything other than '0' or '1'.
	ErrInvalidBit = errors.New("payload accepts only '0' and '1'")
)

// Payload is the bit string typed by the user. The tick logic never reads
// it; it only decides whether a receiver's display shows it.
type Payload struct {
	bits []byte
	size int
}

// NewPayload returns an empty payload that holds up to size bits.
func NewPayload(size int) *Payload {
	return &Payload{bits: make([]byte, 0, size), size: size}
}

// Append adds one bit.
func (p *Payload) Append(r rune) error {
	if r != '0' && r != '1' {
		return fmt.Errorf("%w: got %q", ErrInvalidBit, r)
	}
	if len(p.bits) >= p.size {
		return ErrPayloadFull
	}
	p.bits = append(p.bits, byte(r))
	return nil
}

// AppendString adds every rune of s, stopping at the first rejected one.
func (p *Payload) AppendString(s string) error {
	for _, r := range s {
		if err := p.Append(r); err != nil {
			return err
		}
	}
	return nil
}

// Backspace drops the last bit, if any.
func (p *Payload) Backspace() {
	if len(p.bits) > 0 {
		p.bits = p.bits[:len(p.bits)-1]
	}
}

func (p *Payload) Clear() {
	p.bits = p.bits[:0]
}

func (p *Payload) Len() int {
	return len(p.bits)
}

// Size is the number of bits a complete payload holds.
func (p *Payload) Size() int {
	return p.size
}

// Complete reports whether every bit has been entered.
func (p *Payload) Complete() bool {
	return len(p.bits) == p.size
}

func (p *Payload) String() string {
	return string(p.bits)
}

// Gate returns what a receiver's display shows: the payload when the
// receiver's path is established and the payload is complete, else "".
func (p *Payload) Gate(established bool) string {
	if !established || !p.Complete() {
		return ""
	}
	return string(p.bits)
}

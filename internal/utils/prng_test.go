package utils

import "testing"

func TestNudgeIsSingleAxisStep(t *testing.T) {
	s := NewPRNGService(42)
	for i := 0; i < 200; i++ {
		dx, dy := s.Nudge(5)
		if dx != 0 && dy != 0 {
			t.Fatalf("nudge %d moved on both axes: (%v, %v)", i, dx, dy)
		}
		if dx != 0 && dx != 5 && dx != -5 {
			t.Fatalf("unexpected dx %v", dx)
		}
		if dy != 0 && dy != 5 && dy != -5 {
			t.Fatalf("unexpected dy %v", dy)
		}
	}
}

func TestSameSeedSameWalk(t *testing.T) {
	a, b := NewPRNGService(7), NewPRNGService(7)
	for i := 0; i < 50; i++ {
		ax, ay := a.Nudge(1)
		bx, by := b.Nudge(1)
		if ax != bx || ay != by {
			t.Fatalf("walks diverged at step %d", i)
		}
	}
}

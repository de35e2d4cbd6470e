package core

import "testing"

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		name     string
		held     []Action
		expected int
	}{
		{"neither", nil, 0},
		{"left only", []Action{ActionLeft}, -1},
		{"right only", []Action{ActionRight}, 1},
		{"both cancel", []Action{ActionLeft, ActionRight}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.held {
				f.Set(a)
			}
			if got := f.Axis(ActionLeft, ActionRight); got != tc.expected {
				t.Errorf("Axis() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestLatchHoldAndRelease(t *testing.T) {
	l := NewLatch(80, 24)

	l.Press(ActionLeft)
	if !l.Frame().Has(ActionLeft) {
		t.Error("held action should appear in frame")
	}

	// Still held on the next frame
	if !l.Frame().Has(ActionLeft) {
		t.Error("action should stay latched until released")
	}

	l.Release(ActionLeft)
	if l.Frame().Has(ActionLeft) {
		t.Error("released action should disappear from frame")
	}
}

func TestLatchShortTapNotLost(t *testing.T) {
	l := NewLatch(80, 24)

	// Press and release between two ticks: the next frame must still
	// report the tap.
	l.Press(ActionJump)
	l.Release(ActionJump)

	if !l.Frame().Has(ActionJump) {
		t.Error("tap shorter than one tick was lost")
	}
	if l.Frame().Has(ActionJump) {
		t.Error("tap should be consumed by exactly one frame")
	}
}

func TestLatchPointerScaling(t *testing.T) {
	l := NewLatch(80, 24)
	l.SetViewport(160, 48) // device space twice the playfield

	l.SetPointer(160, 48)
	f := l.Frame()
	if !f.HasPointer {
		t.Fatal("pointer should be latched")
	}
	// Scaled and clamped into playfield bounds.
	if f.PointerX != 79 || f.PointerY != 23 {
		t.Errorf("pointer = (%f, %f), expected (79, 23)", f.PointerX, f.PointerY)
	}

	l.SetPointer(80, 24)
	f = l.Frame()
	if f.PointerX != 40 || f.PointerY != 12 {
		t.Errorf("pointer = (%f, %f), expected (40, 12)", f.PointerX, f.PointerY)
	}
}

func TestLatchPointerClampsOutOfField(t *testing.T) {
	l := NewLatch(80, 24)

	// Events outside the playfield clamp instead of erroring.
	l.SetPointer(-50, 1000)
	f := l.Frame()
	if f.PointerX != 0 || f.PointerY != 23 {
		t.Errorf("pointer = (%f, %f), expected clamped (0, 23)", f.PointerX, f.PointerY)
	}
}

func TestLatchReset(t *testing.T) {
	l := NewLatch(80, 24)
	l.Press(ActionFire)
	l.SetPointer(10, 10)

	l.Reset()

	f := l.Frame()
	if f.Has(ActionFire) || f.HasPointer {
		t.Error("Reset should discard all latched input")
	}
}

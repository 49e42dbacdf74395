package sim

import "testing"

func TestInput_PressRelease(t *testing.T) {
	in := NewInput()
	in.Press(KeyForward)
	in.Press(KeyLeft)
	if !in.Held(KeyForward) || !in.Held(KeyLeft) {
		t.Fatal("pressed keys should be held")
	}
	in.Release(KeyForward)
	if in.Held(KeyForward) {
		t.Error("released key still held")
	}
	if !in.Held(KeyLeft) {
		t.Error("unrelated key was released")
	}
}

func TestInput_UnknownKeyIgnored(t *testing.T) {
	in := NewInput()
	in.Press(Key(200))
	if in.Held(Key(200)) {
		t.Error("unknown key should never be held")
	}
}

func TestInput_ConsumeLookResets(t *testing.T) {
	in := NewInput()
	in.AddLook(3, -2)
	in.AddLook(1, 5)

	dx, dy := in.ConsumeLook()
	if dx != 4 || dy != 3 {
		t.Errorf("ConsumeLook = (%v, %v), want (4, 3)", dx, dy)
	}
	dx, dy = in.ConsumeLook()
	if dx != 0 || dy != 0 {
		t.Errorf("second ConsumeLook = (%v, %v), want (0, 0)", dx, dy)
	}
}

func TestInput_ClearDropsEverything(t *testing.T) {
	in := NewInput()
	for k := KeyForward; k < keyCount; k++ {
		in.Press(k)
	}
	in.AddLook(10, 10)

	in.Clear()

	for k := KeyForward; k < keyCount; k++ {
		if in.Held(k) {
			t.Errorf("key %d still held after Clear", k)
		}
	}
	if dx, dy := in.ConsumeLook(); dx != 0 || dy != 0 {
		t.Errorf("look delta survived Clear: (%v, %v)", dx, dy)
	}
}

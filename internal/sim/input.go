package sim

// Key is a logical movement key. The host maps physical keys onto these.
type Key uint8

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight

	keyCount
)

// Input is the held-key and mouse-look state fed into each tick.
type Input struct {
	held         [keyCount]bool
	lookX, lookY float64
}

func NewInput() *Input {
	return &Input{}
}

func (in *Input) Press(k Key) {
	if k < keyCount {
		in.held[k] = true
	}
}

func (in *Input) Release(k Key) {
	if k < keyCount {
		in.held[k] = false
	}
}

func (in *Input) Held(k Key) bool {
	return k < keyCount && in.held[k]
}

// AddLook accumulates a pointer delta in pixels.
func (in *Input) AddLook(dx, dy float64) {
	in.lookX += dx
	in.lookY += dy
}

// ConsumeLook returns the delta accumulated since the last call and resets it.
func (in *Input) ConsumeLook() (dx, dy float64) {
	dx, dy = in.lookX, in.lookY
	in.lookX, in.lookY = 0, 0
	return dx, dy
}

// Clear forgets every held key and any pending look delta. Called when
// pointer capture is lost so no key stays stuck down.
func (in *Input) Clear() {
	in.held = [keyCount]bool{}
	in.lookX, in.lookY = 0, 0
}

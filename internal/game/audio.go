package game

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundGunshot SoundKind = iota
	SoundDryFire
	SoundReload
	SoundHit
	SoundRespawn
	soundCount
)

// maxGunshots caps overlapping shots; the fire cooldown alone lets ten
// stack up per second.
const maxGunshots = 4

const sfxVolume = 0.58

// Audio plays procedurally generated effects. A nil *Audio is silent.
type Audio struct {
	ctx      *oto.Context
	ready    chan struct{}
	pcm      [soundCount][]byte
	gunshots atomic.Int32
}

// InitAudio opens the output device and renders every effect up front.
func InitAudio() (*Audio, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	a := &Audio{ctx: ctx, ready: ready}
	for k := SoundKind(0); k < soundCount; k++ {
		a.pcm[k] = generateSound(k)
	}
	return a, nil
}

// Play starts kind on its own player and returns immediately.
func (a *Audio) Play(kind SoundKind, gain float64) {
	if a == nil || gain <= 0 || kind < 0 || kind >= soundCount {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	if kind == SoundGunshot {
		if a.gunshots.Add(1) > maxGunshots {
			a.gunshots.Add(-1)
			return
		}
	}
	samples := a.pcm[kind]
	go func() {
		if kind == SoundGunshot {
			defer a.gunshots.Add(-1)
		}
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(sfxVolume * clampF(gain, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundGunshot:
		return genGunshot()
	case SoundDryFire:
		return genDryFire()
	case SoundReload:
		return genReload()
	case SoundHit:
		return genHit()
	case SoundRespawn:
		return genRespawn()
	}
	return nil
}

// genGunshot: transient crack + sub pitch-drop + noise body.
func genGunshot() []byte {
	n := int(0.11 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(77777)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		crack := 0.0
		if p < 0.014 {
			crack = lcg(&seed) * (1 - p/0.014) * 0.88
		}
		// Pitched sub drop: 200 to 35 Hz.
		thumpFreq := 200 * math.Pow(0.04, p*4)
		thump := math.Sin(2*math.Pi*thumpFreq*t) * math.Exp(-p*22) * 0.62
		body := lcg(&seed) * math.Pow(1-p, 5) * 0.28
		ring := math.Sin(2*math.Pi*3400*t) * math.Exp(-p*35) * 0.09
		s := crack + thump + body + ring
		putStereoF32(buf, i, softSat(s*0.82))
	}
	return buf
}

// genDryFire: hammer falling on an empty chamber, a dull metallic tick.
func genDryFire() []byte {
	n := int(0.045 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(4242)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 14)
		tick := fm(t, 1800, 1.41, 1.2) * env * 0.3
		noise := lcg(&seed) * math.Exp(-p*40) * 0.25
		putStereoF32(buf, i, softSat(tick+noise))
	}
	return buf
}

// genReload: magazine out, magazine in, slide rack.
func genReload() []byte {
	clicks := []struct {
		at, freq, gain float64
	}{
		{0.00, 900, 0.35},
		{0.16, 1300, 0.45},
		{0.30, 700, 0.55},
	}
	total := int(0.42 * SampleRate)
	mix := make([]float64, total)
	seed := uint64(31337)
	for _, c := range clicks {
		start := int(c.at * SampleRate)
		dur := int(0.06 * SampleRate)
		for j := 0; j < dur && start+j < total; j++ {
			t := float64(j) / SampleRate
			p := float64(j) / float64(dur)
			env := math.Exp(-p * 9)
			s := fm(t, c.freq, 2.1, 1.8*env) * env * c.gain
			s += lcg(&seed) * math.Exp(-p*30) * c.gain * 0.6
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genHit: two-note FM bell ping.
func genHit() []byte {
	freqs := []float64{880, 1318.5} // A5 E6
	noteLen := SampleRate * 45 / 1000
	tail := int(0.16 * SampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.5, 0.05, 0.4)
			s := fm(t, freq, 2.756, 4.0*env) * env * 0.34
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genRespawn: soft rising blip.
func genRespawn() []byte {
	n := int(0.12 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.05, 0.4, 0.3, 0.4)
		freq := 420 + 380*p
		s := fm(t, freq, 1.0, 0.8) * env * 0.25
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

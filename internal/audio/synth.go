package audio

import (
	"io"
	"math"
)

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

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		o := i*8 + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat saturates gently instead of clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

func squareWave(phase, duty float64) float64 {
	if math.Mod(phase, 1) < duty {
		return 1
	}
	return -1
}

func triWave(phase float64) float64 {
	return (2.0 / math.Pi) * math.Asin(math.Sin(2*math.Pi*phase))
}

const jumpDuration = 0.14 // seconds

// genJump renders the flap chirp: a pulse wave sweeping up an octave with a
// fast decay.
func genJump() []byte {
	n := int(SampleRate * jumpDuration)
	buf := make([]byte, n*8)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := 440 * math.Pow(2, progress)
		phase += freq / SampleRate

		env := math.Exp(-progress*4) * (1 - progress)
		if i < 64 {
			env *= float64(i) / 64 // no click on attack
		}
		s := squareWave(phase, 0.25)*0.35 + math.Sin(2*math.Pi*phase)*0.25
		putStereoF32(buf, i, softSat(s*env))
	}
	return buf
}

// Tune in A minor, one entry per eighth note; 0 is a rest.
var (
	melody = [32]float64{
		659.25, 0, 783.99, 659.25, 587.33, 0, 523.25, 0,
		493.88, 523.25, 587.33, 0, 659.25, 0, 0, 0,
		659.25, 0, 880.00, 783.99, 659.25, 0, 587.33, 0,
		523.25, 587.33, 493.88, 0, 440.00, 0, 0, 0,
	}
	bassline = [8]float64{110.00, 110.00, 87.31, 87.31, 98.00, 98.00, 82.41, 82.41}
)

const (
	musicTempo = 2.4 // beats per second
	eighthLen  = 1.0 / (musicTempo * 2)
)

// musicReader streams the background loop forever.
type musicReader struct {
	t          float64
	leadPhase  float64
	bassPhase  float64
	noiseState uint64
}

func newMusicReader() *musicReader {
	return &musicReader{noiseState: 0x9e3779b97f4a7c15}
}

func (m *musicReader) noise() float64 {
	m.noiseState = m.noiseState*6364136223846793005 + 1442695040888963407
	return float64(int64(m.noiseState>>33)-int64(1<<30)) / float64(1<<30)
}

func (m *musicReader) Read(p []byte) (int, error) {
	frames := len(p) / 8
	for i := 0; i < frames; i++ {
		putStereoF32(p, i, m.next())
	}
	return frames * 8, nil
}

func (m *musicReader) next() float64 {
	step := int(m.t / eighthLen)
	inStep := m.t - float64(step)*eighthLen
	m.t += 1.0 / SampleRate

	s := 0.0
	if f := melody[step%len(melody)]; f > 0 {
		m.leadPhase += f / SampleRate
		env := math.Exp(-inStep * 6)
		s += squareWave(m.leadPhase, 0.5) * env * 0.18
	}

	bass := bassline[(step/4)%len(bassline)]
	m.bassPhase += bass / SampleRate
	s += triWave(m.bassPhase) * 0.30

	// off-beat hi-hat
	if step%2 == 1 && inStep < 0.03 {
		s += m.noise() * math.Exp(-inStep*120) * 0.08
	}
	return softSat(s)
}

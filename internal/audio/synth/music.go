package synth

import "math"

// Music is an endless background loop: a four-chord bed, triangle bass,
// light drums and a pluck line. It never returns io.EOF.
type Music struct {
	t    float64
	seed uint64
}

func NewMusic(seed uint64) *Music {
	if seed == 0 {
		seed = 1
	}
	return &Music{seed: seed}
}

var musicChords = [][]float64{
	{261.6, 329.6, 392.0, 493.9}, // Cmaj7
	{220.0, 261.6, 329.6, 392.0}, // Am7
	{174.6, 220.0, 261.6, 349.2}, // Fmaj7
	{196.0, 246.9, 293.7, 392.0}, // G
}

const (
	musicTempo    = 1.8 // beats per second
	beatsPerChord = 4
)

var (
	kickPattern  = [16]bool{true, false, false, false, false, false, true, false, true, false, false, false, false, false, false, false}
	snarePattern = [16]bool{false, false, false, false, true, false, false, false, false, false, false, false, true, false, false, false}
	bassPattern  = [8]bool{true, false, true, false, true, false, false, true}
	arpOrder     = [8]int{0, 1, 2, 3, 2, 1, 2, 3}
)

func (m *Music) Read(p []byte) (int, error) {
	samples := len(p) / frameBytes
	step16Len := 1.0 / (musicTempo * 4)
	step8Len := 1.0 / (musicTempo * 2)

	for i := 0; i < samples; i++ {
		m.t += 1.0 / SampleRate
		beat := int(m.t * musicTempo)
		step16 := int(m.t*musicTempo*4) % 16
		step8 := int(m.t*musicTempo*2) % 8
		trig16 := math.Mod(m.t, step16Len)
		trig8 := math.Mod(m.t, step8Len)

		chord := musicChords[(beat/beatsPerChord)%len(musicChords)]
		chordProg := math.Mod(m.t*musicTempo, beatsPerChord) / beatsPerChord

		s := 0.0

		bedEnv := 0.55 + 0.45*math.Min(1.0, chordProg*1.2)
		for _, freq := range chord {
			ph := 2 * math.Pi * freq * m.t
			s += (math.Sin(ph)*0.68 + math.Sin(ph*2.0)*0.22 + triWave(ph*0.5)*0.10) * bedEnv * 0.08
		}

		if bassPattern[step8] {
			bassFreq := chord[0] / 2
			if step8 == 2 || step8 == 6 {
				bassFreq = chord[1] / 2
			}
			env := adsr(math.Mod(m.t*musicTempo*2, 1.0), 0.02, 0.52, 0.26, 0.2)
			ph := 2 * math.Pi * bassFreq * m.t
			s += (triWave(ph)*0.58 + softSquareWave(ph*0.5)*0.24) * env * 0.40
		}

		if kickPattern[step16] {
			kf := 120.0*math.Exp(-trig16*16.0) + 42.0
			s += math.Sin(2*math.Pi*kf*trig16) * math.Exp(-trig16*13.0) * 0.46
		}
		if snarePattern[step16] {
			s += math.Sin(2*math.Pi*195*trig16) * math.Exp(-trig16*22.0) * 0.16
			s += lcg(&m.seed) * math.Exp(-trig16*30.0) * 0.18
		}
		if step16%2 == 1 {
			s += lcg(&m.seed) * math.Exp(-trig8*20.0) * 0.08
		}

		arpFreq := chord[arpOrder[step8]] * 2
		arpEnv := adsr(math.Mod(m.t*musicTempo*2, 1.0), 0.01, 0.34, 0.14, 0.2)
		arpPh := 2 * math.Pi * arpFreq * m.t
		s += (softSquareWave(arpPh)*0.65 + math.Sin(arpPh*2.0)*0.2) * arpEnv * 0.16

		s = softSat(s * 0.9)
		pan := 0.1 * math.Sin(2*math.Pi*0.1*m.t)
		putStereoLR(p, i, softSat(s*(1-pan)), softSat(s*(1+pan)))
	}
	return samples * frameBytes, nil
}

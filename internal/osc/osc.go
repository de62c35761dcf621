package osc

import "math"

// Params holds the render parameters for a session. They are fixed
// once the stream starts.
type Params struct {
	Frequency  float64 // Hz, > 0
	Volume     float64 // linear amplitude multiplier
	SampleRate float64 // Hz, > 0
	Channels   int     // >= 1
}

// Period returns the duration of one full wave cycle in seconds.
func (p Params) Period() float64 {
	return 1 / p.Frequency
}

// Generate writes frames frames of sine wave into the front of dst and
// returns the updated phase offset. The wave starts offset seconds into
// the current cycle; time points are spaced 1/SampleRate apart with no
// endpoint, so consecutive calls chained through the returned offset
// produce one continuous waveform. Each mono sample is broadcast
// identically to every channel of its frame.
//
// dst must hold at least frames*Channels interleaved samples. Generate
// never allocates, so it is safe on the real-time audio thread.
// frames == 0 writes nothing and returns offset unchanged.
func (p Params) Generate(dst []float32, frames int, offset float64) float64 {
	if frames == 0 {
		return offset
	}

	dt := 1 / p.SampleRate
	for i := 0; i < frames; i++ {
		t := offset + float64(i)*dt
		s := float32(math.Sin(2*math.Pi*p.Frequency*t) * p.Volume)
		base := i * p.Channels
		for c := 0; c < p.Channels; c++ {
			dst[base+c] = s
		}
	}

	offset += float64(frames) * dt

	// Wrap by repeated subtraction rather than math.Mod so the
	// cumulative rounding matches advancing one buffer at a time.
	// A buffer spans only a handful of periods, so the loop is short.
	period := p.Period()
	for offset >= period {
		offset -= period
	}
	return offset
}

package engine

import (
	"github.com/petems/keytone/internal/osc"
)

// GateReader is the render loop's read-only view of the key gate.
type GateReader interface {
	// Open reports whether every control key is currently held.
	Open() bool
}

// Renderer fills output buffers for the audio stream. The phase offset
// is owned by the renderer alone and only ever touched from the
// stream's callback thread.
type Renderer struct {
	params osc.Params
	gate   GateReader
	offset float64
}

func New(params osc.Params, gate GateReader) *Renderer {
	return &Renderer{params: params, gate: gate}
}

// Process fills out, an interleaved float32 buffer, with tone while the
// gate is open. On release it finishes out the current wave cycle so
// the tone ends on a cycle boundary instead of a click, then holds
// silence until the gate reopens. No locks, no allocation, no I/O: this
// runs on the audio subsystem's real-time thread.
func (r *Renderer) Process(out []float32) {
	frames := len(out) / r.params.Channels

	if r.gate.Open() {
		r.offset = r.params.Generate(out, frames, r.offset)
		return
	}

	// The stream reuses buffers, so silence must be written explicitly.
	for i := range out {
		out[i] = 0
	}

	if r.offset == 0 {
		// Cycle already completed on an earlier call, or the tone
		// never started.
		return
	}

	// Truncate rather than round: rounding up would overshoot the
	// cycle boundary and the wrapped offset would start another full
	// cycle. Truncation keeps the new offset at or below one period,
	// so the tail ends within a single cycle.
	remaining := int((r.params.Period() - r.offset) * r.params.SampleRate)
	if remaining == 0 {
		r.offset = 0
		return
	}
	if remaining > frames {
		remaining = frames
	}

	offset := r.params.Generate(out, remaining, r.offset)
	if offset < 0 {
		offset = 0
	}
	r.offset = offset
}

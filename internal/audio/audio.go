package audio

import "time"

// Player defines the interface for audio output.
type Player interface {
	ListDevices() ([]Device, error)
	Start(params StreamParams, cb Callback) error
	Stop() error
	Close() error
}

// Device represents an audio device as reported by the host.
type Device struct {
	Index             int
	Name              string
	MaxOutputChannels int
	Default           bool
	DefaultLowLatency time.Duration
}

// StreamParams describe the output stream to open.
type StreamParams struct {
	DeviceIndex     int // -1 selects the default output device
	SampleRate      float64
	Channels        int
	FramesPerBuffer int
}

// Callback fills one interleaved float32 output buffer. It is invoked
// on the audio subsystem's real-time thread and must not block,
// allocate unboundedly, or log.
type Callback func(out []float32)

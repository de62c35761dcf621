package audio

import (
	"fmt"
	"sync/atomic"

	"github.com/gordonklaus/portaudio"
	"github.com/rs/zerolog"
)

type portAudioPlayer struct {
	log       zerolog.Logger
	stream    *portaudio.Stream
	underruns atomic.Uint64
	stopped   bool
	closed    bool
}

// New creates a new PortAudio-based audio player
func New(log zerolog.Logger) (Player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize PortAudio: %w", err)
	}
	return &portAudioPlayer{log: log}, nil
}

// ListDevices returns every host device. Indices match the host's
// device table, so they are valid StreamParams.DeviceIndex values.
func (p *portAudioPlayer) ListDevices() ([]Device, error) {
	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate devices: %w", err)
	}

	defaultDevice, _ := portaudio.DefaultOutputDevice()

	result := make([]Device, 0, len(devices))
	for i, d := range devices {
		result = append(result, Device{
			Index:             i,
			Name:              d.Name,
			MaxOutputChannels: d.MaxOutputChannels,
			Default:           d == defaultDevice,
			DefaultLowLatency: d.DefaultLowOutputLatency,
		})
	}
	return result, nil
}

// Start opens an interleaved float32 output stream on the requested
// device with its default low-latency class and begins invoking cb.
// Non-fatal status flags reported by the host (buffer underruns) are
// counted and logged when the stream stops; they never abort it.
func (p *portAudioPlayer) Start(params StreamParams, cb Callback) error {
	device, err := p.resolveDevice(params.DeviceIndex)
	if err != nil {
		return err
	}

	stream, err := portaudio.OpenStream(portaudio.StreamParameters{
		Output: portaudio.StreamDeviceParameters{
			Device:   device,
			Channels: params.Channels,
			Latency:  device.DefaultLowOutputLatency,
		},
		SampleRate:      params.SampleRate,
		FramesPerBuffer: params.FramesPerBuffer,
	}, p.wrapCallback(cb))
	if err != nil {
		return fmt.Errorf("failed to open audio stream (device %q, %g Hz, %d channels, latency %s): %w",
			device.Name, params.SampleRate, params.Channels, device.DefaultLowOutputLatency, err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		return fmt.Errorf("failed to start audio stream (device %q, %g Hz, %d channels): %w",
			device.Name, params.SampleRate, params.Channels, err)
	}

	p.stream = stream
	p.stopped = false
	return nil
}

// wrapCallback records host status flags without touching the render
// path: an atomic bump, no locks, no logging on the real-time thread.
func (p *portAudioPlayer) wrapCallback(cb Callback) func([]float32, portaudio.StreamCallbackTimeInfo, portaudio.StreamCallbackFlags) {
	return func(out []float32, _ portaudio.StreamCallbackTimeInfo, flags portaudio.StreamCallbackFlags) {
		if flags&(portaudio.OutputUnderflow|portaudio.OutputOverflow) != 0 {
			p.underruns.Add(1)
		}
		cb(out)
	}
}

func (p *portAudioPlayer) resolveDevice(index int) (*portaudio.DeviceInfo, error) {
	if index < 0 {
		device, err := portaudio.DefaultOutputDevice()
		if err != nil {
			return nil, fmt.Errorf("failed to get default output device: %w", err)
		}
		return device, nil
	}

	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate devices: %w", err)
	}
	if index >= len(devices) {
		return nil, fmt.Errorf("device index %d out of range (%d devices)", index, len(devices))
	}
	return devices[index], nil
}

// Stop halts the stream. Idempotent: stopping a never-started or
// already-stopped player is a no-op.
func (p *portAudioPlayer) Stop() error {
	if p.stream == nil || p.stopped {
		return nil
	}
	p.stopped = true
	if n := p.underruns.Swap(0); n > 0 {
		p.log.Warn().Uint64("underruns", n).Msg("Output stream reported buffer underruns")
	}
	if err := p.stream.Stop(); err != nil {
		return fmt.Errorf("failed to stop audio stream: %w", err)
	}
	return nil
}

// Close releases the stream and PortAudio itself. Idempotent.
func (p *portAudioPlayer) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if p.stream != nil {
		p.stream.Close()
		p.stream = nil
	}
	portaudio.Terminate()
	return nil
}

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/petems/keytone/internal/audio"
	"github.com/petems/keytone/internal/config"
	"github.com/petems/keytone/internal/engine"
	"github.com/petems/keytone/internal/keys"
	"github.com/petems/keytone/internal/logging"
	"github.com/petems/keytone/internal/osc"
)

var (
	// Version is set via ldflags at build time
	Version = "dev"
	// Commit is set via ldflags at build time
	Commit = "unknown"
)

const maxPromptRetries = 5

func main() {
	// Load config from XDG/Library/AppData, then overlay flags
	cfg, err := config.Load()
	if err != nil {
		log := logging.New()
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	var (
		listDevices bool
		keyList     = strings.Join(cfg.Keys, ",")
	)
	flag.BoolVar(&listDevices, "l", false, "list available audio devices and exit")
	flag.BoolVar(&listDevices, "list-devices", false, "list available audio devices and exit")
	flag.IntVar(&cfg.DeviceIndex, "d", cfg.DeviceIndex, "audio output device index (default: interactive prompt)")
	flag.IntVar(&cfg.DeviceIndex, "device", cfg.DeviceIndex, "audio output device index (default: interactive prompt)")
	flag.StringVar(&keyList, "k", keyList, "comma-separated keys to hold simultaneously to generate sound")
	flag.StringVar(&keyList, "keys", keyList, "comma-separated keys to hold simultaneously to generate sound")
	flag.Float64Var(&cfg.Frequency, "f", cfg.Frequency, "frequency of the sine wave in Hz")
	flag.Float64Var(&cfg.Frequency, "frequency", cfg.Frequency, "frequency of the sine wave in Hz")
	flag.Float64Var(&cfg.Volume, "v", cfg.Volume, "volume of the sine wave")
	flag.Float64Var(&cfg.Volume, "volume", cfg.Volume, "volume of the sine wave")
	flag.IntVar(&cfg.SampleRate, "s", cfg.SampleRate, "sample rate for audio output")
	flag.IntVar(&cfg.SampleRate, "samplerate", cfg.SampleRate, "sample rate for audio output")
	flag.IntVar(&cfg.Channels, "c", cfg.Channels, "number of audio channels")
	flag.IntVar(&cfg.Channels, "channels", cfg.Channels, "number of audio channels")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	flag.Parse()
	cfg.Keys = strings.Split(keyList, ",")

	log := logging.NewWithLevel(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	player, err := audio.New(log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize audio")
	}
	defer player.Close()

	devices, err := player.ListDevices()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to enumerate audio devices")
	}

	if listDevices {
		fmt.Println("Available audio devices:")
		for _, d := range devices {
			fmt.Printf("  %d: %s\n", d.Index, d.Name)
		}
		return
	}

	if cfg.DeviceIndex >= 0 {
		if cfg.DeviceIndex >= len(devices) {
			log.Fatal().
				Int("device", cfg.DeviceIndex).
				Int("devices", len(devices)).
				Msg("Invalid device number")
		}
	} else {
		index, err := chooseDevice(devices)
		if err != nil {
			log.Fatal().Err(err).Msg("No audio device selected")
		}
		cfg.DeviceIndex = index
	}

	controlKeys, err := keys.ParseAll(cfg.Keys)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to map control keys")
	}

	gate := keys.NewGate(len(controlKeys))
	listener, err := keys.NewListener(controlKeys, gate, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize keyboard listener")
	}
	if err := listener.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start keyboard listener")
	}
	defer listener.Close()

	renderer := engine.New(osc.Params{
		Frequency:  cfg.Frequency,
		Volume:     cfg.Volume,
		SampleRate: float64(cfg.SampleRate),
		Channels:   cfg.Channels,
	}, gate)

	log.Info().Str("version", Version).Str("commit", Commit).Msg("keytone starting...")

	if err := player.Start(audio.StreamParams{
		DeviceIndex:     cfg.DeviceIndex,
		SampleRate:      float64(cfg.SampleRate),
		Channels:        cfg.Channels,
		FramesPerBuffer: cfg.FramesPerBuffer,
	}, renderer.Process); err != nil {
		listener.Close()
		log.Fatal().Err(err).
			Int("device", cfg.DeviceIndex).
			Int("samplerate", cfg.SampleRate).
			Int("channels", cfg.Channels).
			Int("frames_per_buffer", cfg.FramesPerBuffer).
			Msg("Could not start audio stream")
	}
	defer player.Stop()

	names := make([]string, len(controlKeys))
	for i, k := range controlKeys {
		names[i] = k.Name
	}
	fmt.Printf("Hold %s to beep\n", strings.Join(names, " & "))

	// Idle until the operator interrupts; the render callback and the
	// listener do all the work.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\nProgram ended")
	log.Info().Msg("Shutting down...")
}

// chooseDevice prints a numbered device table and reads the operator's
// choice from stdin, retrying a bounded number of times.
func chooseDevice(devices []audio.Device) (int, error) {
	fmt.Println("Available audio devices:")
	for _, d := range devices {
		marker := " "
		if d.Default {
			marker = "*"
		}
		fmt.Printf("%s %-4s %s\n", marker, strconv.Itoa(d.Index)+":", d.Name)
	}

	reader := bufio.NewReader(os.Stdin)
	for retries := 1; retries <= maxPromptRetries; retries++ {
		fmt.Print("Please enter chosen audio device number: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("failed to read device number: %w", err)
		}
		index, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && index >= 0 && index < len(devices) {
			return index, nil
		}
		fmt.Printf("Error: invalid device number. (%d/%d retries)\n", retries, maxPromptRetries)
	}
	return 0, fmt.Errorf("maximum retries reached")
}

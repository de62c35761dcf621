//go:build linux

package keys

/*
#cgo pkg-config: x11
#include <X11/Xlib.h>
*/
import "C"

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type x11Listener struct {
	display  *C.Display
	keycodes []C.KeyCode
	gate     *Gate
	log      zerolog.Logger

	started  bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewListener opens the X display and resolves each key's keysym to a
// keycode. The listener polls the server keymap rather than grabbing
// the keys, so they keep working normally in other applications.
func NewListener(ks []Key, gate *Gate, log zerolog.Logger) (Listener, error) {
	display := C.XOpenDisplay(nil)
	if display == nil {
		return nil, fmt.Errorf("failed to open X display")
	}

	keycodes := make([]C.KeyCode, len(ks))
	for i, k := range ks {
		kc := C.XKeysymToKeycode(display, C.KeySym(k.Sym))
		if kc == 0 {
			C.XCloseDisplay(display)
			return nil, fmt.Errorf("key %q has no keycode on this keyboard", k.Name)
		}
		keycodes[i] = kc
	}

	return &x11Listener{
		display:  display,
		keycodes: keycodes,
		gate:     gate,
		log:      log,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

func (l *x11Listener) Start() error {
	l.started = true
	go l.pollLoop()
	return nil
}

func (l *x11Listener) pollLoop() {
	defer close(l.done)

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	var keymap [32]C.char
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			// XQueryKeymap returns a 256-bit mask of all keycodes.
			C.XQueryKeymap(l.display, &keymap[0])
			for i, kc := range l.keycodes {
				pressed := byte(keymap[int(kc)/8])&(1<<(uint(kc)%8)) != 0
				l.gate.Set(i, pressed)
			}
		}
	}
}

// Close stops the poll loop and releases the display connection. Safe
// to call more than once and from error paths.
func (l *x11Listener) Close() error {
	l.stopOnce.Do(func() {
		close(l.stop)
		if l.started {
			<-l.done
		}
		C.XCloseDisplay(l.display)
		l.log.Debug().Msg("Keyboard listener stopped")
	})
	return nil
}

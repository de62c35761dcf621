//go:build !linux

package keys

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
)

// NewListener is only implemented for X11 so far.
func NewListener(ks []Key, gate *Gate, log zerolog.Logger) (Listener, error) {
	return nil, fmt.Errorf("keyboard listener not supported on %s", runtime.GOOS)
}

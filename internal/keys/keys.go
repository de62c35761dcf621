package keys

import (
	"fmt"
	"strings"
)

// Key is a control key resolved to its X11 keysym. Keysym values are
// plain constants here so parsing works without cgo; only the platform
// listener talks to the display server.
type Key struct {
	Name string
	Sym  uint32
}

// specialKeys maps the supported special-key names to X11 keysyms.
// Generic modifier names resolve to their left-hand variant.
var specialKeys = map[string]uint32{
	"alt":               0xffe9, // Alt_L
	"alt_gr":            0xfe03, // ISO_Level3_Shift
	"alt_l":             0xffe9,
	"alt_r":             0xffea,
	"backspace":         0xff08,
	"caps_lock":         0xffe5,
	"cmd":               0xffeb, // Super_L
	"cmd_l":             0xffeb,
	"cmd_r":             0xffec,
	"ctrl":              0xffe3, // Control_L
	"ctrl_l":            0xffe3,
	"ctrl_r":            0xffe4,
	"delete":            0xffff,
	"down":              0xff54,
	"end":               0xff57,
	"enter":             0xff0d,
	"esc":               0xff1b,
	"f1":                0xffbe,
	"f2":                0xffbf,
	"f3":                0xffc0,
	"f4":                0xffc1,
	"f5":                0xffc2,
	"f6":                0xffc3,
	"f7":                0xffc4,
	"f8":                0xffc5,
	"f9":                0xffc6,
	"f10":               0xffc7,
	"f11":               0xffc8,
	"f12":               0xffc9,
	"f13":               0xffca,
	"f14":               0xffcb,
	"f15":               0xffcc,
	"f16":               0xffcd,
	"f17":               0xffce,
	"f18":               0xffcf,
	"f19":               0xffd0,
	"f20":               0xffd1,
	"home":              0xff50,
	"insert":            0xff63,
	"left":              0xff51,
	"media_next":        0x1008ff17, // XF86AudioNext
	"media_play_pause":  0x1008ff14, // XF86AudioPlay
	"media_previous":    0x1008ff16, // XF86AudioPrev
	"media_volume_down": 0x1008ff11, // XF86AudioLowerVolume
	"media_volume_mute": 0x1008ff12, // XF86AudioMute
	"media_volume_up":   0x1008ff13, // XF86AudioRaiseVolume
	"menu":              0xff67,
	"num_lock":          0xff7f,
	"page_down":         0xff56,
	"page_up":           0xff55,
	"pause":             0xff13,
	"print_screen":      0xff61,
	"right":             0xff53,
	"scroll_lock":       0xff14,
	"shift":             0xffe1, // Shift_L
	"shift_l":           0xffe1,
	"shift_r":           0xffe2,
	"space":             0x0020,
	"tab":               0xff09,
	"up":                0xff52,
}

// Parse resolves a key name to a Key. Names are case-insensitive:
// either one of the special-key names ("shift_r", "f5", "space", ...)
// or a single character.
func Parse(name string) (Key, error) {
	lower := strings.ToLower(name)
	if sym, ok := specialKeys[lower]; ok {
		return Key{Name: lower, Sym: sym}, nil
	}
	if runes := []rune(lower); len(runes) == 1 {
		return Key{Name: lower, Sym: charKeysym(runes[0])}, nil
	}
	return Key{}, fmt.Errorf("unknown key: %q", name)
}

// ParseAll resolves every name or reports the first offending token.
func ParseAll(names []string) ([]Key, error) {
	ks := make([]Key, len(names))
	for i, name := range names {
		k, err := Parse(name)
		if err != nil {
			return nil, err
		}
		ks[i] = k
	}
	return ks, nil
}

// charKeysym returns the keysym for a printable character. Latin-1
// characters are their own keysym; anything else uses the Unicode
// keysym range.
func charKeysym(r rune) uint32 {
	if r <= 0xff {
		return uint32(r)
	}
	return 0x01000000 + uint32(r)
}

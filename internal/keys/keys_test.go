package keys

import (
	"strings"
	"testing"
)

func TestParseSpecialKeys(t *testing.T) {
	cases := []struct {
		name string
		sym  uint32
	}{
		{"shift_r", 0xffe2},
		{"space", 0x0020},
		{"f5", 0xffc2},
		{"enter", 0xff0d},
		{"media_play_pause", 0x1008ff14},
	}
	for _, c := range cases {
		k, err := Parse(c.name)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.name, err)
		}
		if k.Sym != c.sym {
			t.Fatalf("Parse(%q): expected keysym %#x, got %#x", c.name, c.sym, k.Sym)
		}
	}
}

func TestParseIsCaseInsensitive(t *testing.T) {
	k, err := Parse("Shift_R")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if k.Name != "shift_r" || k.Sym != 0xffe2 {
		t.Fatalf("expected shift_r/0xffe2, got %s/%#x", k.Name, k.Sym)
	}
}

func TestParseCharacterKey(t *testing.T) {
	k, err := Parse("a")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if k.Sym != 0x61 {
		t.Fatalf("expected keysym 0x61 for 'a', got %#x", k.Sym)
	}
}

func TestParseNonLatinCharacterKey(t *testing.T) {
	k, err := Parse("ж")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if k.Sym != 0x01000000+0x0436 {
		t.Fatalf("expected Unicode keysym, got %#x", k.Sym)
	}
}

func TestParseUnknownKeyNamesToken(t *testing.T) {
	_, err := Parse("hyperdrive")
	if err == nil {
		t.Fatal("expected an error for an unknown key name")
	}
	if !strings.Contains(err.Error(), "hyperdrive") {
		t.Fatalf("error should name the offending token, got: %v", err)
	}
}

func TestParseAllStopsAtFirstBadToken(t *testing.T) {
	_, err := ParseAll([]string{"shift_r", "bogus", "a"})
	if err == nil || !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("expected error naming \"bogus\", got: %v", err)
	}

	ks, err := ParseAll([]string{"ctrl", "x"})
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	if len(ks) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(ks))
	}
}

func TestGateDefaultsToClosed(t *testing.T) {
	g := NewGate(3)
	if g.Open() {
		t.Fatal("a fresh gate should read as released")
	}
}

func TestGateAllTrueReduction(t *testing.T) {
	g := NewGate(2)

	g.Set(0, true)
	if g.Open() {
		t.Fatal("gate should stay closed with one key held")
	}

	g.Set(1, true)
	if !g.Open() {
		t.Fatal("gate should open with every key held")
	}

	g.Set(0, false)
	if g.Open() {
		t.Fatal("gate should close as soon as any key is released")
	}
}

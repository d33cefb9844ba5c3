package ballpit

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"testing"
)

var (
	colorPattern       = regexp.MustCompile(`^#[0-9a-f]{1,6}$`)
	paddedColorPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)
)

func TestGenerateColorPattern(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 5000; i++ {
		c, rgb := generateColor(r, false)
		if !colorPattern.MatchString(c) {
			t.Fatalf("generateColor() = %q, want #[0-9a-f]{1,6}", c)
		}
		n, err := strconv.ParseUint(c[1:], 16, 32)
		if err != nil {
			t.Fatalf("parse %q: %v", c, err)
		}
		if n > 0xffffff || uint32(n) != rgb {
			t.Fatalf("generateColor() = %q (rgb %#x), value out of range or mismatched", c, rgb)
		}
	}
}

func TestGenerateColorNotPadded(t *testing.T) {
	// A small value must keep its short form.
	for seed := uint64(0); seed < 1<<16; seed++ {
		r := rand.New(rand.NewPCG(seed, seed))
		c, rgb := generateColor(r, false)
		if rgb < 0x100000 {
			if len(c) == 7 {
				t.Fatalf("generateColor() = %q for %#x, should not be padded", c, rgb)
			}
			return
		}
	}
	t.Skip("no short value drawn")
}

func TestGenerateColorPadded(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 2000; i++ {
		c, rgb := generateColor(r, true)
		if !paddedColorPattern.MatchString(c) {
			t.Fatalf("generateColor(pad) = %q, want #[0-9a-f]{6}", c)
		}
		n, _ := strconv.ParseUint(c[1:], 16, 32)
		if uint32(n) != rgb {
			t.Fatalf("generateColor(pad) = %q, want value %#06x", c, rgb)
		}
	}
}

func TestGenerateSizeRange(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	seen := make(map[int]bool)
	for i := 0; i < 10000; i++ {
		n := generateSize(r)
		if n < 50 || n > 99 {
			t.Fatalf("generateSize() = %d, want [50, 99]", n)
		}
		seen[n] = true
	}
	if !seen[50] || !seen[99] {
		t.Error("expected both ends of the size range to be drawn")
	}
}

func TestStageGenerators(t *testing.T) {
	s, _ := newTestStage(800, 600)
	if c := s.GenerateColor(); !colorPattern.MatchString(c) {
		t.Errorf("GenerateColor() = %q", c)
	}
	if n := s.GenerateSize(); n < 50 || n > 99 {
		t.Errorf("GenerateSize() = %d", n)
	}

	padded := NewStage(StageConfig{PadColors: true, Rand: rand.New(rand.NewPCG(9, 9))})
	if c := padded.GenerateColor(); !paddedColorPattern.MatchString(c) {
		t.Errorf("padded GenerateColor() = %q", c)
	}
}

func TestColorFromRGB(t *testing.T) {
	tests := []struct {
		rgb  uint32
		want string
	}{
		{0x000000, "#000000"},
		{0xffffff, "#ffffff"},
		{0x0000a3, "#0000a3"},
		{0x12ab34, "#12ab34"},
	}
	for _, tt := range tests {
		c := ColorFromRGB(tt.rgb)
		if c.A != 1 {
			t.Errorf("ColorFromRGB(%#x).A = %v, want 1", tt.rgb, c.A)
		}
		if got := c.Hex(); got != tt.want {
			t.Errorf("ColorFromRGB(%#x).Hex() = %q, want %q", tt.rgb, got, tt.want)
		}
	}
}

func TestBallRadius(t *testing.T) {
	b := &Ball{Size: 80, Scale: 0.5}
	if got := b.Radius(); got != 20 {
		t.Errorf("Radius() = %v, want 20", got)
	}
	b.Scale = 0
	if got := b.Radius(); got != 0 {
		t.Errorf("Radius() at zero scale = %v, want 0", got)
	}
}

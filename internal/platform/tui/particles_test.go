package tui

import (
	"testing"

	"github.com/vovakirdan/chromatic-collapse/internal/core"
)

func TestParticleSpawnAndExpire(t *testing.T) {
	ps := NewParticleSystem(1)
	ps.Spawn(10, 5, core.ColorRed, 6)

	if ps.Len() != 6 {
		t.Fatalf("Len() = %d, expected 6", ps.Len())
	}

	for range particleMinLife + particleLifeSpan {
		ps.Update()
	}
	if ps.Len() != 0 {
		t.Errorf("Len() = %d after max lifetime, expected 0", ps.Len())
	}
}

func TestParticleDrawClipsToScreen(t *testing.T) {
	ps := NewParticleSystem(2)
	ps.Spawn(10, 5, core.ColorBlue, 20)
	ps.Spawn(100, 100, core.ColorBlue, 5) // Entirely off screen
	screen := core.NewScreen(20, 10)

	for range 5 {
		ps.Update()
		ps.Draw(screen) // Must not panic
	}

	drawn := 0
	for y := range screen.Height() {
		for x := range screen.Width() {
			if screen.GetCell(x, y).Color == core.ColorBlue {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("expected some particles on screen")
	}
}

func TestParticleRuneFades(t *testing.T) {
	tests := []struct {
		life int
		want rune
	}{
		{30, '*'},
		{15, '+'},
		{5, '.'},
	}
	for _, tt := range tests {
		if got := particleRune(Particle{Life: tt.life, Max: 30}); got != tt.want {
			t.Errorf("particleRune(life %d) = %q, expected %q", tt.life, got, tt.want)
		}
	}
}

// Package audio plays short tones for game events.
package audio

import (
	"fmt"
	"log"
	"time"

	"arcade-snake/game/types"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	eatFreq    = 880
	eatLength  = 50 * time.Millisecond
	crashHigh  = 440
	crashLow   = 220
	crashShort = 80 * time.Millisecond
	crashLong  = 160 * time.Millisecond
)

// Player reacts to tick reports with sound effects. A Player whose speaker
// failed to initialise stays silent.
type Player struct {
	enabled bool
	eat     *beep.Buffer
	crash   *beep.Buffer
}

func New(enabled bool) *Player {
	p := &Player{}
	if !enabled {
		return p
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
		return p
	}

	if err := p.load(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		speaker.Close()
		return p
	}
	p.enabled = true
	return p
}

func (p *Player) load() error {
	eat, err := tone(eatFreq, eatLength)
	if err != nil {
		return err
	}
	high, err := tone(crashHigh, crashShort)
	if err != nil {
		return err
	}
	low, err := tone(crashLow, crashLong)
	if err != nil {
		return err
	}

	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	p.eat = beep.NewBuffer(format)
	p.eat.Append(eat)
	p.crash = beep.NewBuffer(format)
	p.crash.Append(beep.Seq(high, low))
	return nil
}

func (p *Player) Enabled() bool {
	return p.enabled
}

// OnTick plays the crash tone on a reset and the eat tone otherwise
func (p *Player) OnTick(r types.TickReport) {
	if !p.enabled {
		return
	}
	switch {
	case r.Collision != types.NoCollision:
		speaker.Play(p.crash.Streamer(0, p.crash.Len()))
	case r.Ate:
		speaker.Play(p.eat.Streamer(0, p.eat.Len()))
	}
}

func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

// tone returns a sine wave of the given frequency lasting d
func tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %vHz: %w", freq, err)
	}
	return beep.Take(sampleRate.N(d), sine), nil
}

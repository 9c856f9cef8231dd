package game

import (
	"fmt"
	"time"

	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/credit-card/internal/sound"
)

// player plays the settle tone through the speaker. A nil player is silent.
type player struct {
	volume float64
}

func newPlayer(volume float64) (*player, error) {
	bufferSize := sound.SampleRate.N(time.Second / 20)
	if err := speaker.Init(sound.SampleRate, bufferSize); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &player{volume: volume}, nil
}

func (p *player) playSettle() {
	if p == nil || p.volume == 0 {
		return
	}
	// Clear takes the speaker lock itself; any tone still ringing is dropped.
	speaker.Clear()
	speaker.Play(sound.Settle(sound.SampleRate, sound.ToneDuration, p.volume))
}

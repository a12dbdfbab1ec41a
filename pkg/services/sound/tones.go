package sound

import (
	"time"

	"github.com/fadedpez/tucojack/pkg/entities"
)

// Tone is a synthesized beep used when a recorded sound cannot be played
type Tone struct {
	Frequency float64 // Hz
	Gain      float64
	Duration  time.Duration
}

var (
	winTone   = Tone{Frequency: 880, Gain: 0.3, Duration: 200 * time.Millisecond}
	loseTone  = Tone{Frequency: 220, Gain: 0.3, Duration: 300 * time.Millisecond}
	betTone   = Tone{Frequency: 440, Gain: 0.2, Duration: 100 * time.Millisecond}
	clickTone = Tone{Frequency: 660, Gain: 0.1, Duration: 50 * time.Millisecond}
)

// FallbackTone returns the beep for an event. Unknown events click.
func FallbackTone(event entities.Event) Tone {
	switch event {
	case entities.EventWin:
		return winTone
	case entities.EventLose:
		return loseTone
	case entities.EventBet, entities.EventDoubleDown:
		return betTone
	default:
		return clickTone
	}
}

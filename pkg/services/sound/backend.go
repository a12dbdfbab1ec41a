package sound

import (
	"errors"
	"io"
	"sync"

	"github.com/fadedpez/tucojack/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_sound

var ErrSoundNotLoaded = errors.New("sound not loaded")

// Backend plays sounds on some output device
type Backend interface {
	// Available reports whether the backend can produce sound at all
	Available() bool
	// Play plays the recorded sound for event
	Play(event entities.Event) error
	// Beep plays a synthesized tone
	Beep(tone Tone) error
}

// BellBackend rings the terminal bell. It has no recorded sounds, so every
// event goes through the tone fallback.
type BellBackend struct {
	mu  sync.Mutex
	out io.Writer
}

// NewBellBackend creates a bell backend writing to out
func NewBellBackend(out io.Writer) *BellBackend {
	return &BellBackend{out: out}
}

func (b *BellBackend) Available() bool {
	return b != nil && b.out != nil
}

func (b *BellBackend) Play(event entities.Event) error {
	return ErrSoundNotLoaded
}

func (b *BellBackend) Beep(tone Tone) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, err := io.WriteString(b.out, "\a")
	return err
}

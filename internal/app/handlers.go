package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/fadedpez/tucojack/internal/logging"
	"github.com/fadedpez/tucojack/internal/render"
	"github.com/fadedpez/tucojack/pkg/services/i18n"
)

const (
	betStep   = 10
	betPrefix = "bet "
)

// IsBetCommand reports whether line is a "bet N" request
func IsBetCommand(line string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), betPrefix)
}

// Handle runs the action bound to key. Keys that are unknown or disabled in
// the current state are ignored. It reports whether the player asked to quit.
func (a *App) Handle(ctx context.Context, key string) (bool, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return false, nil
	}
	if strings.HasPrefix(key, betPrefix) {
		return false, a.setBet(ctx, strings.TrimSpace(strings.TrimPrefix(key, betPrefix)))
	}

	snap, err := a.session.Snapshot(ctx)
	if err != nil {
		return false, err
	}

	action, ok := render.Lookup(snap, key)
	if !ok {
		logging.Default.Debug("[APP] Ignoring key %q in state %s", key, snap.State)
		return false, nil
	}

	switch action.Command {
	case render.CommandBetUp:
		return false, a.session.AdjustBet(ctx, betStep)
	case render.CommandBetDown:
		return false, a.session.AdjustBet(ctx, -betStep)
	case render.CommandDeal:
		return false, a.session.Deal(ctx)
	case render.CommandHit:
		return false, a.session.Hit(ctx)
	case render.CommandStand:
		return false, a.session.Stand(ctx)
	case render.CommandDouble:
		return false, a.session.DoubleDown(ctx)
	case render.CommandNewRound:
		return false, a.session.NewRound(ctx)
	case render.CommandMute:
		a.session.ToggleMute(ctx)
		return false, nil
	case render.CommandLanguage:
		return false, a.session.SetLanguage(ctx, nextLanguage(a.labels.Language()))
	case render.CommandQuit:
		return true, nil
	}
	return false, nil
}

func (a *App) setBet(ctx context.Context, value string) error {
	amount, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logging.Default.Debug("[APP] Ignoring bet %q: %v", value, err)
		return nil
	}
	return a.session.SetBet(ctx, amount)
}

func nextLanguage(current i18n.Language) i18n.Language {
	for i, lang := range i18n.Supported {
		if lang == current {
			return i18n.Supported[(i+1)%len(i18n.Supported)]
		}
	}
	return i18n.DefaultLanguage
}

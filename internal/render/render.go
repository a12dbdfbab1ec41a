package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/fadedpez/tucojack/pkg/services/blackjack"
)

// Translator maps a label key to display text
type Translator interface {
	Translate(key string) string
}

// Command is something the player can ask the table to do
type Command string

const (
	CommandBetUp    Command = "bet-up"
	CommandBetDown  Command = "bet-down"
	CommandDeal     Command = "deal"
	CommandHit      Command = "hit"
	CommandStand    Command = "stand"
	CommandDouble   Command = "double"
	CommandNewRound Command = "new-game"
	CommandMute     Command = "sound"
	CommandLanguage Command = "language"
	CommandQuit     Command = "quit"
)

// Action is a control shown under the table
type Action struct {
	Key      string
	Command  Command
	LabelKey string
	Enabled  bool
}

var suitSymbols = map[entities.Suit]string{
	entities.Hearts:   "♥",
	entities.Diamonds: "♦",
	entities.Clubs:    "♣",
	entities.Spades:   "♠",
}

// Renderer draws table snapshots for a terminal
type Renderer struct {
	styles *Styles
	labels Translator
}

// New creates a renderer that looks up labels with labels
func New(labels Translator) *Renderer {
	return &Renderer{
		styles: NewStyles(),
		labels: labels,
	}
}

// Card draws a single card. The dealer's hole card is drawn face down.
func (r *Renderer) Card(card entities.Card, isPlayerSide bool, index int) string {
	if card.Hidden {
		return r.styles.CardBack.Render("░░")
	}

	face := string(card.Rank) + suitSymbols[card.Suit]
	if card.Suit == entities.Hearts || card.Suit == entities.Diamonds {
		return r.styles.CardRed.Render(face)
	}
	return r.styles.CardBlack.Render(face)
}

// Hand draws cards side by side
func (r *Renderer) Hand(cards []entities.Card, isPlayerSide bool) string {
	if len(cards) == 0 {
		return r.styles.Hint.Render("-")
	}

	boxes := make([]string, len(cards))
	for i, card := range cards {
		boxes[i] = r.Card(card, isPlayerSide, i)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// Table draws the whole table for snap
func (r *Renderer) Table(snap *blackjack.Snapshot, muted bool) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(r.labels.Translate("title")))
	b.WriteString("\n\n")

	b.WriteString(r.side("dealer", snap.DealerValue, false, snap.DealerHidden))
	b.WriteString("\n")
	b.WriteString(r.Hand(snap.DealerCards, false))
	b.WriteString("\n\n")

	b.WriteString(r.side("player", snap.PlayerValue, snap.PlayerSoft, false))
	b.WriteString("\n")
	b.WriteString(r.Hand(snap.PlayerCards, true))
	b.WriteString("\n\n")

	b.WriteString(r.money(snap))
	b.WriteString("\n")

	if outcome := r.Outcome(snap); outcome != "" {
		b.WriteString("\n")
		b.WriteString(outcome)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.Controls(snap, muted))
	return b.String()
}

// Outcome renders the translated result labels of a finished round
func (r *Renderer) Outcome(snap *blackjack.Snapshot) string {
	if len(snap.LabelKeys) == 0 {
		return ""
	}

	style := r.styles.Push
	switch snap.Result {
	case entities.ResultWin, entities.ResultBlackjack:
		style = r.styles.Win
	case entities.ResultLose:
		style = r.styles.Lose
	}

	texts := make([]string, len(snap.LabelKeys))
	for i, key := range snap.LabelKeys {
		texts[i] = r.labels.Translate(key)
	}
	line := strings.Join(texts, " · ")
	if snap.Payout > 0 {
		line += fmt.Sprintf(" (+%d)", snap.Payout)
	}
	return style.Render(line)
}

// Controls renders the available actions with their keys
func (r *Renderer) Controls(snap *blackjack.Snapshot, muted bool) string {
	actions := Actions(snap)
	parts := make([]string, 0, len(actions))
	for _, action := range actions {
		text := fmt.Sprintf("[%s] %s", action.Key, r.actionLabel(action, muted))
		if action.Enabled {
			parts = append(parts, r.styles.Enabled.Render(text))
		} else {
			parts = append(parts, r.styles.Disabled.Render(text))
		}
	}
	return strings.Join(parts, "  ")
}

// Actions lists the controls for the state of snap
func Actions(snap *blackjack.Snapshot) []Action {
	var actions []Action
	switch snap.State {
	case entities.StateBetting:
		actions = []Action{
			{Key: "+", Command: CommandBetUp, LabelKey: "bet", Enabled: true},
			{Key: "-", Command: CommandBetDown, LabelKey: "bet", Enabled: true},
			{Key: "d", Command: CommandDeal, LabelKey: "deal", Enabled: snap.CanStart},
		}
	case entities.StatePlayerTurn:
		actions = []Action{
			{Key: "h", Command: CommandHit, LabelKey: "hit", Enabled: snap.CanHit},
			{Key: "s", Command: CommandStand, LabelKey: "stand", Enabled: true},
			{Key: "x", Command: CommandDouble, LabelKey: "double", Enabled: snap.CanDoubleDown},
		}
	case entities.StateGameOver:
		actions = []Action{
			{Key: "n", Command: CommandNewRound, LabelKey: "new-game", Enabled: true},
		}
	}

	return append(actions,
		Action{Key: "m", Command: CommandMute, LabelKey: "sound", Enabled: true},
		Action{Key: "l", Command: CommandLanguage, LabelKey: "language", Enabled: true},
		Action{Key: "q", Command: CommandQuit, LabelKey: "cancel", Enabled: true},
	)
}

// Lookup finds the enabled action bound to key
func Lookup(snap *blackjack.Snapshot, key string) (Action, bool) {
	for _, action := range Actions(snap) {
		if action.Key == key && action.Enabled {
			return action, true
		}
	}
	return Action{}, false
}

func (r *Renderer) actionLabel(action Action, muted bool) string {
	label := r.labels.Translate(action.LabelKey)
	switch action.Command {
	case CommandBetUp:
		return label + " +"
	case CommandBetDown:
		return label + " -"
	case CommandMute:
		if muted {
			return label + ": " + r.labels.Translate("off")
		}
		return label + ": " + r.labels.Translate("on")
	}
	return label
}

func (r *Renderer) side(labelKey string, value int, soft, hidden bool) string {
	text := fmt.Sprintf("%d", value)
	if soft {
		text = r.labels.Translate("soft") + " " + text
	}
	if hidden {
		text += " + ?"
	}
	return r.styles.Label.Render(r.labels.Translate(labelKey)) + " " + r.styles.Value.Render(text)
}

func (r *Renderer) money(snap *blackjack.Snapshot) string {
	return fmt.Sprintf("%s %s   %s %s",
		r.styles.Label.Render(r.labels.Translate("balance")),
		r.styles.Money.Render(fmt.Sprintf("%d", snap.Balance)),
		r.styles.Label.Render(r.labels.Translate("bet")),
		r.styles.Money.Render(fmt.Sprintf("%d", snap.CurrentBet)),
	)
}

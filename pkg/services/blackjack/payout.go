package blackjack

import (
	"github.com/fadedpez/tucojack/pkg/entities"
)

// Resolve compares final hand values and returns the outcome together with
// the amount credited back to the balance. The bet was already deducted when
// the round started, so a push returns exactly the bet.
func Resolve(playerValue, dealerValue, playerCardCount int, bet int64) (entities.Result, int64) {
	switch {
	case playerValue > BlackjackValue:
		return entities.ResultLose, 0
	case dealerValue > BlackjackValue:
		return entities.ResultWin, bet * 2
	case playerValue > dealerValue:
		if playerValue == BlackjackValue && playerCardCount == 2 {
			// 3:2, odd bets lose the half unit
			return entities.ResultBlackjack, bet + (bet * 3 / 2)
		}
		return entities.ResultWin, bet * 2
	case playerValue < dealerValue:
		return entities.ResultLose, 0
	default:
		return entities.ResultPush, bet
	}
}

// OutcomeEvent returns the sound event for a result. Push has none.
func OutcomeEvent(result entities.Result) (entities.Event, bool) {
	switch result {
	case entities.ResultWin, entities.ResultBlackjack:
		return entities.EventWin, true
	case entities.ResultLose:
		return entities.EventLose, true
	default:
		return "", false
	}
}

// LabelKeys returns the label keys describing a finished round, most specific first
func LabelKeys(result *entities.GameResult) []string {
	if result == nil {
		return nil
	}

	keys := make([]string, 0, 2)
	switch {
	case result.PlayerBusted():
		keys = append(keys, "bust")
	case result.DealerBusted():
		keys = append(keys, "dealer-bust")
	}
	keys = append(keys, result.Result.String())
	return keys
}

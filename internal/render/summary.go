package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fadedpez/tucojack/pkg/entities"
	"github.com/fadedpez/tucojack/pkg/services/statistics"
)

// Summary draws the session and lifetime statistics side by side, followed
// by the most recent rounds.
func (r *Renderer) Summary(summary *statistics.Summary) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(r.labels.Translate("statistics")))
	b.WriteString("\n\n")

	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		r.statsColumn("session", summary.Session),
		"    ",
		r.statsColumn("lifetime", summary.Lifetime),
	)
	b.WriteString(columns)
	b.WriteString("\n\n")

	b.WriteString(r.row("streak", fmt.Sprintf("%+d", summary.Streak)))
	b.WriteString("\n")

	for _, round := range summary.Recent {
		b.WriteString(r.round(round))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) statsColumn(titleKey string, stats *entities.PlayerStatistics) string {
	if stats == nil {
		stats = &entities.PlayerStatistics{}
	}

	rows := []string{
		r.styles.Label.Render(r.labels.Translate(titleKey)),
		r.row("games", fmt.Sprintf("%d", stats.GamesPlayed)),
		r.row("wins", fmt.Sprintf("%d", stats.Wins)),
		r.row("losses", fmt.Sprintf("%d", stats.Losses)),
		r.row("pushes", fmt.Sprintf("%d", stats.Pushes)),
		r.row("blackjack", fmt.Sprintf("%d", stats.Blackjacks)),
		r.row("busts", fmt.Sprintf("%d", stats.Busts)),
		r.row("double-downs", fmt.Sprintf("%d", stats.DoubleDowns)),
		r.row("net", fmt.Sprintf("%+d", stats.NetProfit())),
		r.row("win-rate", fmt.Sprintf("%.1f%%", stats.WinRate())),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *Renderer) row(labelKey, value string) string {
	return r.labels.Translate(labelKey) + ": " + r.styles.Value.Render(value)
}

func (r *Renderer) round(result *entities.GameResult) string {
	style := r.styles.Push
	switch result.Result {
	case entities.ResultWin, entities.ResultBlackjack:
		style = r.styles.Win
	case entities.ResultLose:
		style = r.styles.Lose
	}

	return fmt.Sprintf("%s  %s  %d vs %d  %s %d",
		r.styles.Hint.Render(result.CompletedAt.Format("2006-01-02 15:04")),
		style.Render(r.labels.Translate(string(result.Result))),
		result.PlayerScore,
		result.DealerScore,
		r.labels.Translate("bet"),
		result.Bet,
	)
}

// Package report renders battle state for people.
package report

import (
	"fmt"
	"io"

	"github.com/buger/goterm"

	"raidsim/internal/combat"
)

// Text writes one block per round: a header, the boss line, then a line per hero.
type Text struct {
	w     io.Writer
	color bool
}

func NewText(w io.Writer, color bool) *Text {
	return &Text{w: w, color: color}
}

func (t *Text) paint(s string, c int) string {
	if !t.color {
		return s
	}
	return goterm.Color(s, c)
}

func (t *Text) bold(s string) string {
	if !t.color {
		return s
	}
	return goterm.Bold(s)
}

func (t *Text) Report(round int, boss *combat.Boss, heroes []*combat.Hero) {
	fmt.Fprintln(t.w, t.bold(fmt.Sprintf("ROUND %d -------------", round)))
	fmt.Fprintln(t.w, t.paint(boss.String(), goterm.RED))
	for _, h := range heroes {
		c := goterm.GREEN
		if !h.Alive() {
			c = goterm.YELLOW
		}
		fmt.Fprintln(t.w, t.paint(h.String(), c))
	}
}

func (t *Text) Finish(round int, outcome combat.Outcome) {
	msg := outcome.Message()
	if msg == "" {
		return
	}
	c := goterm.CYAN
	if outcome == combat.BossWins {
		c = goterm.RED
	}
	fmt.Fprintln(t.w, t.bold(t.paint(msg, c)))
}

// Package report renders simulation output for a terminal.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vengeance/internal/combat"
)

var (
	accent = lipgloss.Color("#FF0000")
	muted  = lipgloss.Color("#666666")
	white  = lipgloss.Color("#FFFFFF")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(white)
	critStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(muted)
	nameCell   = lipgloss.NewStyle().Width(16)
	numCell    = lipgloss.NewStyle().Width(12).Align(lipgloss.Right)
)

// EventLog writes one line per event, highlighting critical hits.
func EventLog(w io.Writer, title string, events []combat.Event) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d events)", title, len(events))))
	b.WriteString("\n")
	for _, ev := range events {
		line := ev.String()
		if atk, ok := ev.(*combat.Attack); ok && atk.Crit() {
			line = critStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Totals writes damage per actor, sorted by name, followed by run counters.
func Totals(w io.Writer, res combat.SimResult) error {
	names := make([]string, 0, len(res.DamageByActor))
	for name := range res.DamageByActor {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Damage by actor"))
	b.WriteString("\n")
	for _, name := range names {
		b.WriteString(nameCell.Render(name))
		b.WriteString(numCell.Render(fmt.Sprintf("%.2f", res.DamageByActor[name])))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf(
		"run %s: %d ticks, %d events (%d attacks, %d spells, %d critical)",
		res.RunID, res.Ticks, res.Events, res.Attacks, res.Spells, res.Criticals)))
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func Batch(w io.Writer, sum combat.BatchSummary) error {
	names := make([]string, 0, len(sum.AvgDamageByActor))
	for name := range sum.AvgDamageByActor {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Batch of %d runs, %d ticks each", sum.Runs, sum.Ticks)))
	b.WriteString("\n")
	for _, name := range names {
		b.WriteString(nameCell.Render(name))
		b.WriteString(numCell.Render(fmt.Sprintf("%.2f", sum.AvgDamageByActor[name])))
		b.WriteString(numCell.Render(fmt.Sprintf("%.1f%%", sum.DamageShareByActor[name]*100)))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("avg events %.1f, crit rate %.3f", sum.AvgEvents, sum.CritRate)))
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pdrpinto/geodes"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	scoreStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

func styleCell(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}

func renderRun(run solveRun) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleCell).
		Headers("Blueprint", "Geodes", "Peak frontier", "Time", "Cached")
	for _, r := range run.Results {
		t.Row(
			strconv.FormatUint(uint64(r.Blueprint), 10),
			strconv.FormatUint(uint64(r.Geodes), 10),
			strconv.Itoa(r.PeakFrontier),
			fmt.Sprintf("%.1fs", float64(r.TimeMs)/1000),
			strconv.FormatBool(r.Cached),
		)
	}
	title := titleStyle.Render(fmt.Sprintf("%s, %d minutes", run.Mode, run.Horizon))
	score := scoreStyle.Render(fmt.Sprintf("score: %d", run.Score))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.Render(), score)
}

func renderSteps(bp geodes.Blueprint, snaps []geodes.StepSnapshot) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleCell).
		Headers("Minute", "Phase", "Frontier", "Pruned", "Max geodes")
	for _, s := range snaps {
		t.Row(
			strconv.Itoa(s.Minute),
			s.Phase.String(),
			strconv.Itoa(s.FrontierSize),
			strconv.Itoa(s.Pruned),
			strconv.FormatUint(uint64(s.MaxGeodes), 10),
		)
	}
	var yield uint32
	if len(snaps) > 0 {
		yield = snaps[len(snaps)-1].MaxGeodes
	}
	title := titleStyle.Render(fmt.Sprintf("blueprint %d", bp.ID))
	score := scoreStyle.Render(fmt.Sprintf("geodes: %d", yield))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.Render(), score)
}

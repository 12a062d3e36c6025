package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/handiism/bemani-autotag/internal/organize"
)

var (
	albumStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F8B500"))
	trackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8DADC"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

// progressPrinter writes organizer events as one line each. Album names are
// printed flush left and track folders indented by a tab.
type progressPrinter struct {
	out      io.Writer
	verbose  bool
	colorize bool
}

func newProgressPrinter(out io.Writer, verbose bool) *progressPrinter {
	return &progressPrinter{out: out, verbose: verbose, colorize: isTerminal(out)}
}

func (p *progressPrinter) Print(event organize.ProgressEvent) {
	if event.Level == organize.LevelVerbose && !p.verbose {
		return
	}
	// Errors are reported once by main.
	if event.Level == organize.LevelError {
		return
	}

	line := event.Message
	if p.colorize {
		line = styleFor(event).Render(line)
	}
	fmt.Fprintln(p.out, strings.Repeat("\t", event.Depth)+line)
}

func (p *progressPrinter) Summary(rendered string) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, rendered)
}

func styleFor(event organize.ProgressEvent) lipgloss.Style {
	switch event.Level {
	case organize.LevelSuccess:
		return successStyle
	case organize.LevelWarning:
		return warningStyle
	case organize.LevelError:
		return errorStyle
	case organize.LevelVerbose:
		return dimStyle
	}
	if event.Depth == 0 {
		return albumStyle
	}
	return trackStyle
}

func shouldPrintSummary(mode string, out io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal(out)
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderSummary(outcomes []organize.Outcome, dryRun bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if dryRun {
		tw.SetTitle("Dry run: nothing was written")
	}

	tw.AppendHeader(table.Row{"Album", "Status", "Track folders", "Disc tracks", "Skipped folders", "Playlist"})

	var folders, discs int
	for _, o := range outcomes {
		if o.Status != organize.StatusProcessed {
			tw.AppendRow(table.Row{o.Path, o.Status.String() + ": " + o.Reason, "", "", "", ""})
			continue
		}
		plan := o.Plan
		folders += len(plan.Sidecars)
		discs += plan.DiscTracks
		tw.AppendRow(table.Row{
			plan.Album.Name,
			o.Status.String(),
			strconv.Itoa(len(plan.Sidecars)),
			strconv.Itoa(plan.DiscTracks),
			strconv.Itoa(len(plan.SkippedFolders)),
			plan.Album.PlaylistPath,
		})
	}

	tw.AppendFooter(table.Row{"Total", "", strconv.Itoa(folders), strconv.Itoa(discs), "", ""})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

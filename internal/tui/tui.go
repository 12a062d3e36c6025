// Package tui provides a Bubble Tea terminal user interface for bemani-autotag.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/bemani-autotag/internal/config"
	"github.com/handiism/bemani-autotag/internal/organize"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	albumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// maxLogs bounds the log lines kept on screen.
const maxLogs = 12

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateOrganizing
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   organize.ProgressLevel
	Depth   int
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	outcomes  []organize.Outcome
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	manager *organize.Manager
	msgs    chan tea.Msg

	// Options
	dryRun  bool
	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model using settings, or the defaults when nil.
func NewModel(settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ti := textinput.New()
	ti.Placeholder = "/rips/Game Title (2003-05-01); /rips/Other Game"
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		dryRun:    settings.DryRun,
		verbose:   settings.Verbose,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent for every organizer progress event.
	ProgressMsg struct {
		Event organize.ProgressEvent
	}

	// OrganizeDoneMsg is sent when all folders have been handled.
	OrganizeDoneMsg struct {
		Outcomes []organize.Outcome
		Err      error
	}
)

// ParseFolderList splits the input line into folder paths.
// Paths are separated by ";" or newlines; blank entries are dropped.
func ParseFolderList(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ';' || r == '\n'
	})

	var folders []string
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			folders = append(folders, f)
		}
	}
	return folders
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateOrganizing {
				m.cancel()
			}

		case "enter":
			if m.state == StateInput {
				folders := ParseFolderList(m.textInput.Value())
				if len(folders) > 0 {
					m.state = StateOrganizing
					m.startOrganize()
					return m, tea.Batch(m.runOrganize(folders), m.waitForMsg(), m.spinner.Tick)
				}
			}

		case "f2":
			if m.state == StateInput {
				m.dryRun = !m.dryRun
			}

		case "f3":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.state = StateInput
				m.logs = nil
				m.outcomes = nil
				m.err = nil
				m.manager = nil
				m.msgs = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
				return m, textinput.Blink
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, m.waitForMsg())
		if msg.Event.Level == organize.LevelVerbose && !m.verbose {
			break
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
			Depth:   msg.Event.Depth,
		})
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}
		if m.manager != nil {
			done, total := m.manager.GetProgress()
			if total > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(done)/float64(total)))
			}
		}

	case OrganizeDoneMsg:
		m.outcomes = msg.Outcomes
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
			cmds = append(cmds, m.progress.SetPercent(1))
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// startOrganize creates the manager and the message channel for a run.
func (m *Model) startOrganize() {
	settings := *m.settings
	settings.DryRun = m.dryRun
	settings.Verbose = m.verbose

	msgs := make(chan tea.Msg, 64)
	ctx := m.ctx
	m.msgs = msgs
	m.manager = organize.NewManager(&settings, func(event organize.ProgressEvent) {
		select {
		case msgs <- ProgressMsg{Event: event}:
		case <-ctx.Done():
		}
	})
}

// runOrganize processes the folders in the background. Its result arrives
// through the message channel after every progress event.
func (m Model) runOrganize(folders []string) tea.Cmd {
	manager, msgs, ctx := m.manager, m.msgs, m.ctx
	return func() tea.Msg {
		outcomes, err := manager.Organize(ctx, folders)
		msgs <- OrganizeDoneMsg{Outcomes: outcomes, Err: err}
		return nil
	}
}

// waitForMsg delivers the next message of the current run.
func (m Model) waitForMsg() tea.Cmd {
	msgs := m.msgs
	if msgs == nil {
		return nil
	}
	return func() tea.Msg {
		return <-msgs
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("♪ bemani-autotag"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Tag sidecars, notes and playlists for ripped game soundtracks"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateOrganizing:
		b.WriteString(m.viewOrganizing())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Album folders (separate with ;):"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	dryRunCheck := "[ ]"
	if m.dryRun {
		dryRunCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Dry run, write nothing (f2)\n", dryRunCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose output (f3)\n", verboseCheck))

	return b.String()
}

func (m Model) viewOrganizing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Organizing..."))
	b.WriteString("\n\n")
	b.WriteString(m.progress.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var albums, skipped, folders, discs int
	for _, o := range m.outcomes {
		if o.Status != organize.StatusProcessed {
			skipped++
			continue
		}
		albums++
		folders += len(o.Plan.Sidecars)
		discs += o.Plan.DiscTracks
	}

	heading := "✨ Done!"
	if m.dryRun {
		heading = "✨ Dry run complete, nothing written"
	}

	var b strings.Builder
	b.WriteString(boxStyle.Render(fmt.Sprintf(
		"%s\n\n"+
			"Albums: %d\n"+
			"Skipped inputs: %d\n"+
			"Track folders: %d\n"+
			"Disc tracks: %d",
		heading, albums, skipped, folders, discs,
	)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case organize.LevelError:
			style = errorStyle
			prefix = "✗"
		case organize.LevelWarning:
			style = warningStyle
			prefix = "!"
		case organize.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case organize.LevelInfo:
			style = infoStyle
			prefix = "›"
			if log.Depth == 0 {
				style = albumStyle
				prefix = "♪"
			}
		default:
			style = dimStyle
		}
		b.WriteString(strings.Repeat("  ", log.Depth))
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • f2: dry run • f3: verbose • esc: quit"
	case StateOrganizing:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

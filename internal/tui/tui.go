// Package tui provides a Bubble Tea terminal user interface for mbcomment.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/mbcomment/internal/config"
	"github.com/handiism/mbcomment/internal/process"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BA478F")).
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
)

// maxLogs is the number of log lines kept on screen.
const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateInitializing
	StateProcessing
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   process.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	err       error

	// Processing context
	ctx    context.Context
	cancel context.CancelFunc
	events chan process.ProgressEvent

	manager *process.Manager
	results []process.Result

	processedFiles int32
	totalFiles     int32

	// Options
	dryRun   bool
	musicbee bool
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model using settings as the base
// configuration. A nil settings means config.DefaultSettings().
func NewModel(settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ti := textinput.New()
	ti.Placeholder = "/path/to/music"
	ti.Focus()
	ti.CharLimit = 1000
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#BA478F"))

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
		events:    make(chan process.ProgressEvent, 64),
		dryRun:    settings.DryRun,
		musicbee:  settings.MusicBeeCompatibility,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, waitForEvent(m.events))
}

// Message types
type (
	// ProgressMsg is sent for every progress event of the manager.
	ProgressMsg struct {
		Event process.ProgressEvent
	}

	// InitDoneMsg is sent when initialization completes.
	InitDoneMsg struct {
		Manager *process.Manager
		Err     error
	}

	// ProcessDoneMsg is sent when all files have been processed.
	ProcessDoneMsg struct {
		Results   []process.Result
		Processed int32
		Total     int32
		Err       error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

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
			if m.state == StateProcessing || m.state == StateInitializing {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.state = StateInitializing
				return m, tea.Batch(m.initialize(), m.spinner.Tick)
			}

		case "ctrl+d":
			if m.state == StateInput {
				m.dryRun = !m.dryRun
				return m, nil
			}

		case "ctrl+b":
			if m.state == StateInput {
				m.musicbee = !m.musicbee
				return m, nil
			}

		case "ctrl+l":
			if m.state == StateInput {
				m.verbose = !m.verbose
				return m, nil
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new run
				m.state = StateInput
				m.logs = nil
				m.results = nil
				m.err = nil
				m.processedFiles = 0
				m.totalFiles = 0
				m.manager = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, waitForEvent(m.events))
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level == process.LevelVerbose && !m.verbose {
			break
		}
		m.logs = appendLog(m.logs, LogEntry{Message: msg.Event.Message, Level: msg.Event.Level})

	case InitDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.manager = msg.Manager
			m.state = StateProcessing
			cmds = append(cmds, m.startProcessing(), m.tickProgress())
		}

	case ProcessDoneMsg:
		m.results = msg.Results
		m.processedFiles = msg.Processed
		m.totalFiles = msg.Total
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateProcessing {
			m.processedFiles, m.totalFiles = m.manager.GetProgress()

			var percent float64
			if m.totalFiles > 0 {
				percent = float64(m.processedFiles) / float64(m.totalFiles)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func appendLog(logs []LogEntry, entry LogEntry) []LogEntry {
	logs = append(logs, entry)
	if len(logs) > maxLogs {
		logs = logs[len(logs)-maxLogs:]
	}
	return logs
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// waitForEvent delivers the next progress event as a ProgressMsg.
func waitForEvent(events <-chan process.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		return ProgressMsg{Event: <-events}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎼 mbcomment"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Copy MusicBrainz credits into your tags"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateInitializing:
		b.WriteString(m.viewInitializing())
	case StateProcessing:
		b.WriteString(m.viewProcessing())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[×]"
	}
	return "[ ]"
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter files or folders (separated by ;):"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Dry run, write nothing (ctrl+d)\n", checkbox(m.dryRun)))
	b.WriteString(fmt.Sprintf("  %s MusicBee compatibility (ctrl+b)\n", checkbox(m.musicbee)))
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (ctrl+l)\n", checkbox(m.verbose)))
	b.WriteString("\n")

	source := m.settings.MusicBrainzURL
	if m.settings.OfflineDir != "" {
		source = m.settings.OfflineDir + " (offline)"
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("MusicBrainz: %s", source)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewInitializing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Looking for audio files..."))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewProcessing() string {
	var b strings.Builder

	var percent float64
	if m.totalFiles > 0 {
		percent = float64(m.processedFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", m.processedFiles, m.totalFiles)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var written, failed int
	for _, r := range m.results {
		if r.Written {
			written++
		}
		if r.Err != nil {
			failed++
		}
	}

	title := "✨ Processing Complete!"
	if m.dryRun {
		title = "✨ Dry Run Complete!"
	}

	var b strings.Builder
	b.WriteString(boxStyle.Render(fmt.Sprintf(
		"%s\n\n"+
			"Files: %d\n"+
			"Tagged: %d\n"+
			"Failed: %d",
		title,
		m.processedFiles,
		written,
		failed,
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

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case process.LevelError:
			style = errorStyle
			prefix = "✗"
		case process.LevelWarning:
			style = warningStyle
			prefix = "!"
		case process.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case process.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • ctrl+d: dry run • ctrl+b: musicbee • ctrl+l: verbose • esc: quit"
	case StateInitializing, StateProcessing:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// splitInputs splits the input field on semicolons.
func splitInputs(value string) []string {
	var inputs []string
	for _, part := range strings.Split(value, ";") {
		if part = strings.TrimSpace(part); part != "" {
			inputs = append(inputs, part)
		}
	}
	return inputs
}

// runSettings returns a copy of the base settings with the UI options applied.
func (m Model) runSettings() *config.Settings {
	settings := *m.settings
	settings.DryRun = m.dryRun
	settings.MusicBeeCompatibility = m.musicbee
	return &settings
}

// initialize creates the manager and finds the files to process.
func (m Model) initialize() tea.Cmd {
	ctx, events := m.ctx, m.events
	inputs := splitInputs(m.textInput.Value())
	settings := m.runSettings()

	return func() tea.Msg {
		if err := settings.Validate(); err != nil {
			return InitDoneMsg{Err: err}
		}

		manager := process.NewManager(settings, nil, func(event process.ProgressEvent) {
			select {
			case events <- event:
			case <-ctx.Done():
			}
		})

		if err := manager.Initialize(ctx, inputs); err != nil {
			return InitDoneMsg{Err: err}
		}
		return InitDoneMsg{Manager: manager}
	}
}

// startProcessing runs the manager in the background.
func (m Model) startProcessing() tea.Cmd {
	ctx, manager := m.ctx, m.manager

	return func() tea.Msg {
		if manager == nil {
			return ProcessDoneMsg{Err: fmt.Errorf("no manager")}
		}

		err := manager.StartProcessing(ctx)
		processed, total := manager.GetProgress()

		return ProcessDoneMsg{
			Results:   manager.Results(),
			Processed: processed,
			Total:     total,
			Err:       err,
		}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package ui

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	// maxRows bounds the file list; finished files scroll out first.
	maxRows    = 12
	labelWidth = 12
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))

type progressModel struct {
	title    string
	events   <-chan Event
	spinner  spinner.Model
	prog     progress.Model
	items    []fileItem
	index    map[string]int
	width    int
	finished int
	errors   int
	warnings int
	done     bool
}

type fileItem struct {
	path   string
	stage  Stage
	status Status
}

type eventMsg Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that follows check progress.
// The model quits once events is closed.
func NewProgressModel(title string, files []string, events <-chan Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items = append(items, fileItem{path: file})
		index[pathKey(file)] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

// Run drives the progress view on out until events is closed or ctx ends.
func Run(ctx context.Context, out io.Writer, title string, files []string, events <-chan Event) error {
	p := tea.NewProgram(
		NewProgressModel(title, files, events),
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

func pathKey(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	lead, bar := m.spinner.View()+" ", m.prog.View()
	if m.done {
		lead, bar = "done: ", m.prog.ViewAs(1.0)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", headerStyle.Render(fmt.Sprintf("%s%s %d/%d", lead, m.title, m.finished, len(m.items))))
	nameWidth := max(m.width-labelWidth-4, 20)
	for _, item := range m.visibleItems() {
		label := styleStatus(item.status).Render(fmt.Sprintf("%*s", labelWidth, statusLabel(item)))
		fmt.Fprintf(&b, "  %s %s\n", label, truncate(item.path, nameWidth))
	}
	fmt.Fprintf(&b, "\n%s\n%d errors, %d warnings\n", bar, m.errors, m.warnings)
	return b.String()
}

// visibleItems keeps in-flight files on screen, then fills the rest with
// queued and finished ones in file order.
func (m *progressModel) visibleItems() []fileItem {
	if len(m.items) <= maxRows {
		return m.items
	}
	rows := make([]fileItem, 0, maxRows)
	for _, item := range m.items {
		if item.status == StatusWorking && len(rows) < maxRows {
			rows = append(rows, item)
		}
	}
	for _, item := range m.items {
		if len(rows) == maxRows {
			break
		}
		if item.status != StatusWorking {
			rows = append(rows, item)
		}
	}
	return rows
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev Event) tea.Cmd {
	idx, ok := m.index[pathKey(ev.Path)]
	if !ok {
		return nil
	}
	item := &m.items[idx]
	if item.stage == StageFinished {
		return nil
	}
	item.stage = ev.Stage
	item.status = ev.Status
	if ev.Stage == StageFinished {
		m.finished++
		switch ev.Status {
		case StatusError:
			m.errors++
		case StatusWarn:
			m.warnings++
		}
	}

	var sum float64
	for _, it := range m.items {
		sum += stageWeight[it.stage]
	}
	return m.prog.SetPercent(sum / float64(len(m.items)))
}

// stageWeight is the share of a file's work done once it reaches a stage.
var stageWeight = map[Stage]float64{
	StageLoad:     0.1,
	StageTokenize: 0.3,
	StageParse:    0.6,
	StageFinished: 1.0,
}

var stageVerb = map[Stage]string{
	StageLoad:     "loading",
	StageTokenize: "tokenizing",
	StageParse:    "parsing",
}

var statusColor = map[Status]lipgloss.Color{
	StatusDone:    "2",
	StatusWarn:    "3",
	StatusError:   "1",
	StatusWorking: "6",
}

func statusLabel(item fileItem) string {
	switch item.status {
	case StatusWorking:
		return stageVerb[item.stage]
	case StatusDone:
		return "ok"
	case StatusWarn:
		return "warnings"
	case StatusError:
		return "error"
	}
	return "queued"
}

func styleStatus(status Status) lipgloss.Style {
	c, ok := statusColor[status]
	if !ok {
		c = "7"
	}
	return lipgloss.NewStyle().Foreground(c)
}

// truncate cuts value to width display cells, marking the cut with "...".
func truncate(value string, width int) string {
	switch {
	case width <= 0 || runewidth.StringWidth(value) <= width:
		return value
	case width <= 3:
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}

// Package storytui plays the stories rail in a terminal.
package storytui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/orgball2608/newsportal/internal/domain"
	"github.com/orgball2608/newsportal/internal/media"
	"github.com/orgball2608/newsportal/internal/story"
)

const (
	defaultWidth = 80
	barGap       = 1
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#16A34A"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	captionStyle = lipgloss.NewStyle().Italic(true)
	frameStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#16A34A")).Padding(0, 1)
)

// tickMsg carries the generation of the session that armed it. Ticks from a
// closed or replaced session are dropped.
type tickMsg struct {
	gen int
}

// Model lists the stories and plays the selected one.
type Model struct {
	cfg      story.Config
	rail     *story.Rail
	resolver media.Resolver
	lock     *story.PageLock
	session  *story.Session
	bar      progress.Model

	cursor int
	gen    int
	width  int
	err    error
}

func New(stories []domain.Story, cfg story.Config, byRecency bool, resolver media.Resolver) Model {
	lock := story.NewPageLock()
	return Model{
		cfg:      cfg,
		rail:     story.NewRail(stories, byRecency),
		resolver: resolver,
		lock:     lock,
		session:  story.NewSession(cfg, lock, nil),
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		width:    defaultWidth,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	interval := m.cfg.TickInterval
	if interval <= 0 {
		interval = story.DefaultConfig().TickInterval
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		if msg.gen != m.gen || !m.session.IsOpen() {
			return m, nil
		}
		m.session.Tick()
		m.settleVideo()
		if !m.session.IsOpen() {
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		if m.session.IsOpen() {
			return m.updateViewer(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k", "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j", "right", "l":
		if m.cursor < m.rail.Len()-1 {
			m.cursor++
		}
	case "enter", " ":
		return m.open()
	}
	return m, nil
}

func (m Model) updateViewer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.session.Close()
		return m, tea.Quit
	case "esc":
		m.session.Close()
		m.gen++
	case "right", "l":
		m.session.Advance()
		m.settleVideo()
	case "left", "h":
		m.session.Retreat()
		m.settleVideo()
	case " ", "p":
		m.session.TogglePlayPause()
	}
	return m, nil
}

func (m Model) open() (tea.Model, tea.Cmd) {
	stories := m.rail.Stories()
	if len(stories) == 0 {
		return m, nil
	}
	if err := m.session.Open(stories[m.cursor]); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.gen++
	m.settleVideo()
	return m, m.tick()
}

// settleVideo gives a video item the image dwell. A terminal cannot play it,
// so there is no duration to wait for.
func (m Model) settleVideo() {
	if st := m.session.State(); st.Open && st.AwaitingMetadata {
		m.session.ReportVideoDuration(m.cfg.ImageDwell.Seconds())
	}
}

func (m Model) View() string {
	if m.session.IsOpen() {
		return m.viewer()
	}
	return m.list()
}

func (m Model) list() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Stories") + "\n\n")

	thumbs := m.rail.Thumbnails()
	if len(thumbs) == 0 {
		sb.WriteString(mutedStyle.Render("No stories right now.") + "\n")
	}
	for i, t := range thumbs {
		line := fmt.Sprintf("%s (%d)", t.Title, len(m.rail.Stories()[i].MediaFiles))
		if t.IsVideo {
			line += " ▶"
		}
		if i == m.cursor {
			sb.WriteString(cursorStyle.Render("› "+line) + "\n")
			continue
		}
		sb.WriteString("  " + line + "\n")
	}
	if m.err != nil {
		sb.WriteString("\n" + mutedStyle.Render(m.err.Error()) + "\n")
	}
	sb.WriteString("\n" + mutedStyle.Render("↑/↓ choose • enter open • q quit"))
	return sb.String()
}

func (m Model) viewer() string {
	st := m.session.State()

	bars := m.bars(st)
	title := titleStyle.Render(st.Title)
	pos := mutedStyle.Render(fmt.Sprintf("%d/%d", st.Index+1, st.Count))

	kind := "image"
	if st.Item.IsVideo() {
		kind = "video"
	}
	body := []string{
		bars,
		lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", pos),
		"",
		fmt.Sprintf("[%s] %s", kind, m.resolver.Resolve(st.Item.Media)),
	}
	if st.Item.Caption != "" {
		body = append(body, captionStyle.Render(st.Item.Caption))
	}
	if !st.Playing {
		body = append(body, mutedStyle.Render("paused"))
	}
	body = append(body, "", mutedStyle.Render("←/→ navigate • space pause • esc close • q quit"))

	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}

// bars draws one segment per item, filled from the session's bar values.
func (m Model) bars(st story.State) string {
	n := len(st.Bars)
	if n == 0 {
		return ""
	}
	avail := max(m.width-4-(n-1)*barGap, n)
	bar := m.bar
	bar.Width = max(avail/n, 1)

	segments := make([]string, 0, 2*n-1)
	for i, fill := range st.Bars {
		if i > 0 {
			segments = append(segments, strings.Repeat(" ", barGap))
		}
		segments = append(segments, bar.ViewAs(fill/100))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

// Locked reports whether a story holds the scroll lock.
func (m Model) Locked() bool {
	return m.lock.Locked()
}

// State exposes the session snapshot, mostly for tests.
func (m Model) State() story.State {
	return m.session.State()
}

// Run starts the viewer in the alternate screen and blocks until the user
// quits.
func Run(stories []domain.Story, cfg story.Config, byRecency bool, resolver media.Resolver) error {
	p := tea.NewProgram(New(stories, cfg, byRecency, resolver), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

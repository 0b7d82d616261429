package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"github.com/csheth/idmtui/internal/queue"
)

// Config wires runtime options into the TUI program.
type Config struct {
	// Title is shown in the header; empty uses the default.
	Title string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if strings.TrimSpace(config.Title) == "" {
		config.Title = defaultTitle
	}
	layout := newPageLayout()
	vp := viewport.New(layout.viewportWidth, layout.viewportHeight)
	vp.MouseWheelEnabled = true

	m := &model{
		config:   config,
		keys:     newKeyMap(),
		state:    queue.New(),
		layout:   layout,
		viewport: vp,
	}
	m.refreshBody(false)
	return m
}

type model struct {
	config   Config
	keys     keyMap
	state    *queue.State
	layout   pageLayout
	viewport viewport.Model
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.viewport.Width = m.layout.viewportWidth
		m.viewport.Height = m.layout.viewportHeight
		m.refreshBody(false)
		return m, nil
	case tea.MouseMsg:
		if m.state.Screen() == queue.ScreenMain {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.state.Mode()
	queued := m.state.Len()

	var cmd tea.Cmd
	switch before {
	case queue.ModeEditing:
		cmd = m.handleEditingKey(msg)
	default:
		cmd = m.handleNormalKey(msg)
	}

	if after := m.state.Mode(); after != before {
		log.Printf("[tui] mode %s -> %s", before, after)
	}
	if m.state.Len() != queued {
		m.refreshBody(true)
	}
	return m, cmd
}

func (m *model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.state.BeginEditing()
	case key.Matches(msg, m.keys.Quit):
		log.Printf("[tui] quit requested (links=%d)", m.state.Len())
		return tea.Quit
	}
	return nil
}

func (m *model) handleEditingKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.state.CommitEntry()
	case key.Matches(msg, m.keys.Cancel):
		m.state.ResetToMain()
	case key.Matches(msg, m.keys.Backspace):
		m.state.DeleteLastCharacter()
	case msg.Type == tea.KeySpace:
		m.state.AppendCharacter(' ')
	case msg.Type == tea.KeyRunes:
		// Alt-modified runes are still typed as plain characters.
		for _, r := range msg.Runes {
			m.state.AppendCharacter(r)
		}
	}
	return nil
}

// refreshBody rebuilds the link rows for the current viewport width.
func (m *model) refreshBody(scrollToEnd bool) {
	links := m.state.Links()
	rows := make([]string, 0, len(links))
	for idx, link := range links {
		rows = append(rows, linkRow(idx, link, m.viewport.Width))
	}
	m.viewport.SetContent(strings.Join(rows, "\n"))
	if scrollToEnd {
		m.viewport.GotoBottom()
	}
}

func linkRow(index int, link queue.Link, width int) string {
	prefix := fmt.Sprintf("%d - ", index+1)
	available := width - len(prefix)
	if available < 1 {
		available = 1
	}
	url := truncate.StringWithTail(flattenURL(link.URL), uint(available), "…")
	return linkIndexStyle.Render(prefix) + linkURLStyle.Render(url)
}

var urlFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// flattenURL keeps multi-line text on a single row.
func flattenURL(url string) string {
	return urlFlattener.Replace(url)
}

// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/cli/styles"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/infrastructure/terminal"
	"github.com/bnema/tessera/internal/logging"
)

// statusLines is the height of the status bar under the grid.
const statusLines = 1

// LayoutModel is the Bubble Tea model for the interactive layout session.
// The layout renders into an in-memory terminal sized from WindowSizeMsg;
// View returns the last grid it wrote.
type LayoutModel struct {
	// UI components
	help help.Model
	keys layoutKeyMap

	// State
	layout *usecase.ComposeLayoutUseCase
	term   *terminal.Static
	screen *terminal.Capture
	width  int
	height int
	status string
	err    error

	// Config
	glyphs entity.BorderGlyphs
	policy usecase.BorderPolicy

	// Dependencies
	ctx   context.Context
	theme *styles.Theme
}

// layoutKeyMap defines keybindings for the layout session.
type layoutKeyMap struct {
	SplitVertical   key.Binding
	SplitHorizontal key.Binding
	Next            key.Binding
	Border          key.Binding
	Reflow          key.Binding
	Help            key.Binding
	Quit            key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k layoutKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SplitVertical, k.SplitHorizontal, k.Next, k.Border, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k layoutKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SplitVertical, k.SplitHorizontal},
		{k.Next, k.Border, k.Reflow},
		{k.Help, k.Quit},
	}
}

func defaultLayoutKeyMap() layoutKeyMap {
	return layoutKeyMap{
		SplitVertical: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "split vertical"),
		),
		SplitHorizontal: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "split horizontal"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next frame"),
		),
		Border: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle border"),
		),
		Reflow: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reflow"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LayoutModelConfig holds configuration for the layout model.
type LayoutModelConfig struct {
	BorderGlyphs entity.BorderGlyphs
	BorderPolicy usecase.BorderPolicy
}

// NewLayoutModel creates a layout session model. The layout itself is
// created on the first WindowSizeMsg, once the screen size is known.
func NewLayoutModel(ctx context.Context, theme *styles.Theme, cfg LayoutModelConfig) LayoutModel {
	glyphs := cfg.BorderGlyphs
	if glyphs == (entity.BorderGlyphs{}) {
		glyphs = entity.DefaultBorderGlyphs()
	}

	return LayoutModel{
		help:   styles.NewStyledHelp(theme),
		keys:   defaultLayoutKeyMap(),
		screen: &terminal.Capture{},
		glyphs: glyphs,
		policy: cfg.BorderPolicy,
		ctx:    logging.WithComponent(ctx, "layout-model"),
		theme:  theme,
	}
}

// Init implements tea.Model.
func (m LayoutModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m LayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m = m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// chromeLines is the height below the grid: status bar plus the help view,
// which grows to several rows when the full help is shown.
func (m LayoutModel) chromeLines() int {
	return statusLines + lipgloss.Height(m.help.View(m.keys))
}

func (m LayoutModel) surface() (rows, columns int) {
	return m.height - m.chromeLines(), m.width
}

// resize creates the layout on first use, otherwise stages the new size on
// the terminal, lets frames react to the resize, and reflows.
func (m LayoutModel) resize() LayoutModel {
	rows, columns := m.surface()
	if rows < 1 || columns < 1 {
		m.err = fmt.Errorf("terminal too small: %dx%d", m.height, m.width)
		return m
	}

	if m.layout == nil {
		m.term = terminal.NewStatic(m.screen, rows, columns)
		frames, err := usecase.NewFrameManager(m.ctx, m.term, usecase.WithBorderGlyphs(m.glyphs))
		if err != nil {
			m.err = err
			return m
		}
		m.layout = usecase.NewComposeLayoutUseCase(frames, m.term, m.policy)
		m.err = nil
		return m.render()
	}

	m.term.SetSize(rows, columns)
	if err := m.term.Update(m.ctx); err != nil {
		m.err = err
		return m
	}
	if err := m.layout.Reflow(m.ctx); err != nil {
		m.err = err
		return m
	}
	m.err = nil
	return m.render()
}

func (m LayoutModel) render() LayoutModel {
	if err := m.layout.Render(m.ctx); err != nil {
		m.err = err
	}
	return m
}

func (m LayoutModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		if m.width > 0 {
			m = m.resize()
		}
		return m, nil
	}
	if m.layout == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.SplitVertical):
		return m.split(entity.AxisVertical), nil
	case key.Matches(msg, m.keys.SplitHorizontal):
		return m.split(entity.AxisHorizontal), nil
	case key.Matches(msg, m.keys.Next):
		f := m.layout.FocusNext(m.ctx)
		m.status = fmt.Sprintf("focus %s", f.ID)
		m.err = nil
	case key.Matches(msg, m.keys.Border):
		m.status = "border off"
		if m.layout.ToggleBorder() {
			m.status = "border on"
		}
		m.err = nil
	case key.Matches(msg, m.keys.Reflow):
		if err := m.layout.Reflow(m.ctx); err != nil {
			m.err = err
			return m, nil
		}
		m.status = "reflowed"
		m.err = nil
	default:
		return m, nil
	}
	return m.render(), nil
}

func (m LayoutModel) split(axis entity.SplitAxis) LayoutModel {
	added, err := m.layout.Split(m.ctx, axis)
	if err != nil {
		logging.FromContext(m.ctx).Debug().Err(err).Str("axis", axis.String()).Msg("split rejected")
		m.err = err
		return m
	}
	m.status = fmt.Sprintf("%s split: %s %dx%d at %s", axis, added.ID, added.Rows, added.Columns, added.TopLeft)
	m.err = nil
	return m.render()
}

// View implements tea.Model.
func (m LayoutModel) View() string {
	t := m.theme
	var b strings.Builder

	if m.layout == nil {
		if m.err != nil {
			b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s %v", styles.IconX, m.err)))
		} else {
			b.WriteString(t.Subtle.Render("waiting for terminal size..."))
		}
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
		return b.String()
	}

	b.WriteString(m.screen.String())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m LayoutModel) renderStatusBar() string {
	t := m.theme
	focused := m.layout.Focused()
	badge := t.Badge.Render(fmt.Sprintf("%d frames", len(m.layout.Frames().Frames())))
	focus := t.Subtle.Render(fmt.Sprintf(" %s %dx%d at %s ", focused.ID, focused.Rows, focused.Columns, focused.TopLeft))

	var msg string
	switch {
	case m.err != nil:
		msg = t.ErrorStyle.Render(m.err.Error())
	case m.status != "":
		msg = t.Highlight.Render(m.status)
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, badge, focus, msg)
	return t.StatusBar.MaxWidth(m.width).Render(line)
}

// Err returns the last error shown in the status bar.
func (m LayoutModel) Err() error {
	return m.err
}

// Layout returns the layout once the screen size is known.
func (m LayoutModel) Layout() *usecase.ComposeLayoutUseCase {
	return m.layout
}

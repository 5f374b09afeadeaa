package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tessera/internal/domain/build"
)

// AboutRenderer renders build info next to a small logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info with the logo on the left.
func (r *AboutRenderer) Render(info build.Info) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info))
}

func (r *AboutRenderer) renderLogo() string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)

	// Four frames tiled the way a vertical then horizontal split lays them out.
	logo := `╔══╗╔══╗
║  ║╚══╝
║  ║╔══╗
╚══╝╚══╝`

	return logoStyle.MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderInfoLines(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	lines := []string{
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconVersion), keyStyle.Render("Version"), valStyle.Render(info.Version)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGitBranch), keyStyle.Render("Commit"), valStyle.Render(info.Commit)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconCalendar), keyStyle.Render("Built"), valStyle.Render(info.BuildDate)),
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconGo), keyStyle.Render("Go"), valStyle.Render(info.GoVersion)),
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
	}

	return strings.Join(lines, "\n")
}

// ConfigRenderer renders config file status lines.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file path and whether it exists.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	icon := r.theme.Highlight.Render(IconCheck)
	state := r.theme.Subtle.Render("found")
	if !exists {
		icon = r.theme.ErrorStyle.Render(IconX)
		state = r.theme.Subtle.Render("not created yet, defaults apply (run 'tessera config init')")
	}
	return fmt.Sprintf("%s %s %s", icon, r.theme.Title.Render(path), state)
}

// RenderCreated renders the confirmation after writing a file.
func (r *ConfigRenderer) RenderCreated(what, path string) string {
	return fmt.Sprintf("%s %s %s",
		r.theme.Highlight.Render(IconConfig),
		r.theme.Subtle.Render("Created "+what+":"),
		r.theme.Title.Render(path))
}

// RenderError renders an error line.
func (r *ConfigRenderer) RenderError(err error) string {
	return r.theme.ErrorStyle.Render(IconX + " " + err.Error())
}

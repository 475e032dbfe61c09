// Package tui renders the go-foxstarter view in a terminal.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/go-while/go-foxstarter/internal/client"
	"github.com/go-while/go-foxstarter/internal/models"
	"github.com/go-while/go-foxstarter/internal/view"
)

// doneMsg reports a settled request
type doneMsg struct{ err error }

// refreshMsg asks for a redraw once a status message may have expired
type refreshMsg struct{}

type model struct {
	ctx     context.Context
	view    *view.View
	keys    keyMap
	help    help.Model
	spinner spinner.Model
}

func newModel(ctx context.Context, v *view.View) model {
	return model{
		ctx:     ctx,
		view:    v,
		keys:    defaultKeys,
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Run starts the interactive program and blocks until the user quits
func Run(ctx context.Context, v *view.View, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(newModel(ctx, v), opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return errors.WithStack(ctx.Err())
	}
	return errors.Wrap(err, "terminal UI failed")
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

// request runs a view handler outside the update loop
func (m model) request(handler func(context.Context) error) tea.Cmd {
	if m.view.State().Busy {
		// controls are disabled while a request is outstanding
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return doneMsg{err: handler(ctx)}
	}
}

func (m model) ping(endpoint string) tea.Cmd {
	return m.request(func(ctx context.Context) error {
		return m.view.Ping(ctx, endpoint)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Increment):
			return m, m.request(m.view.Increment)
		case key.Matches(msg, m.keys.Decrement):
			return m, m.request(m.view.Decrement)
		case key.Matches(msg, m.keys.Theme):
			return m, m.request(m.view.ToggleTheme)
		case key.Matches(msg, m.keys.Hello):
			return m, m.ping(client.EndpointHello)
		case key.Matches(msg, m.keys.Test):
			return m, m.ping(client.EndpointTest)
		case key.Matches(msg, m.keys.Regional):
			return m, m.ping(client.EndpointRegional)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case doneMsg:
		// failures are shown through the view status
		return m, tea.Tick(view.StatusTTL, func(_ time.Time) tea.Msg { return refreshMsg{} })

	case refreshMsg:
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	st := m.view.State()
	p := paletteOf(st.Theme)

	var b strings.Builder
	b.WriteString(p.title.Render("🦊 go-foxstarter"))
	b.WriteString("  ")
	b.WriteString(p.muted.Render(themeIcon(st.Theme) + " " + st.Theme.String()))
	b.WriteString("\n\n")

	counter := fmt.Sprintf("Counter Example\n\n%s", p.count.Render(strconv.FormatInt(st.Count, 10)))
	if st.Busy {
		counter += "  " + m.spinner.View()
	}
	b.WriteString(p.box.Render(counter))
	b.WriteString("\n\n")

	switch {
	case st.Status != "" && st.StatusIsError:
		b.WriteString(p.err.Render(st.Status))
	case st.Status != "":
		b.WriteString(p.status.Render(st.Status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func paletteOf(t models.Theme) palette {
	if t == models.ThemeDark {
		return darkPalette
	}
	return lightPalette
}

func themeIcon(t models.Theme) string {
	if t == models.ThemeDark {
		return "☀️"
	}
	return "🌙"
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/autonara/smartmatch/internal/core"
	"github.com/autonara/smartmatch/internal/render"
	"github.com/autonara/smartmatch/internal/service/advisor"
	"github.com/autonara/smartmatch/pkg/log"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	youStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	botStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	noticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errBannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	healthyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	unhealthyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// ChatPage is the interactive Smart Match page, run as a service.
type ChatPage struct {
	advisor *advisor.Advisor
	health  advisor.HealthSource
	done    func()
	program *tea.Program
}

// done is called when the page exits so sibling services shut down too.
func NewChatPage(advisor *advisor.Advisor, health advisor.HealthSource, done func()) *ChatPage {
	return &ChatPage{
		advisor: advisor,
		health:  health,
		done:    done,
	}
}

func (p *ChatPage) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting Smart Match chat")
	if p.done != nil {
		defer p.done()
	}

	p.program = tea.NewProgram(newChatModel(ctx, p.advisor, p.health))
	if _, err := p.program.Run(); err != nil {
		return fmt.Errorf("chat page: %w", err)
	}
	return nil
}

func (p *ChatPage) Shutdown(ctx context.Context) error {
	if p.program != nil {
		p.program.Quit()
	}
	return nil
}

type replyMsg struct {
	reply string
}

type chatModel struct {
	ctx     context.Context
	advisor *advisor.Advisor
	health  advisor.HealthSource

	input   textinput.Model
	spin    spinner.Model
	loading bool
	// notice holds replies that never enter the transcript: the apology,
	// the unavailable-service line, reset confirmations
	notice string
}

func newChatModel(ctx context.Context, adv *advisor.Advisor, health advisor.HealthSource) chatModel {
	input := textinput.New()
	input.Placeholder = "Describe your lifestyle..."
	input.Focus()
	input.CharLimit = 500
	input.Width = 60

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return chatModel{
		ctx:     ctx,
		advisor: adv,
		health:  health,
		input:   input,
		spin:    spin,
	}
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			// loading gates re-entry; typing stays enabled
			if m.loading {
				return m, nil
			}
			return m.submit()
		}

	case replyMsg:
		m.loading = false
		snap := m.advisor.Snapshot()
		if !transcriptContains(snap.Messages, msg.reply) {
			m.notice = msg.reply
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	m.notice = ""

	switch value {
	case "":
		return m, nil
	case "exit", "quit":
		return m, tea.Quit
	case "/reset":
		m.advisor.Reset(m.ctx)
		m.notice = "Session cleared."
		return m, nil
	}

	m.loading = true
	ask := func() tea.Msg {
		return replyMsg{reply: m.advisor.Ask(m.ctx, value)}
	}
	return m, tea.Batch(ask, m.spin.Tick)
}

func (m chatModel) View() string {
	var b strings.Builder

	b.WriteString(titleBar(m.health))
	b.WriteString("\n\n")

	snap := m.advisor.Snapshot()
	for _, msg := range snap.Messages {
		b.WriteString(renderTurn(msg))
	}

	if m.notice != "" {
		b.WriteString(botStyle.Render("Smart Match: "))
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	if snap.State == advisor.StateError && snap.Error != "" {
		b.WriteString(errBannerStyle.Render("✗ " + snap.Error))
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString(m.spin.View())
		b.WriteString(helpStyle.Render("finding your matches..."))
		b.WriteString("\n")
	} else if snap.Response != nil {
		b.WriteString("\n")
		b.WriteString(render.PersonaBanner(snap.Response.Persona))
		b.WriteString(render.ComparisonTable(snap.Response.Matches))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter to send · /reset to start over · esc to quit"))
	b.WriteString("\n")

	return b.String()
}

func titleBar(health advisor.HealthSource) string {
	dot := unhealthyStyle.Render("● offline")
	if health != nil && health.Healthy() {
		dot = healthyStyle.Render("● online")
	}
	return botStyle.Render("Smart Match") + "  " + dot
}

func renderTurn(msg core.ChatMessage) string {
	if msg.Role == core.RoleUser {
		return youStyle.Render("You: ") + msg.Content + "\n"
	}
	return botStyle.Render("Smart Match: ") + msg.Content + "\n"
}

func transcriptContains(messages []core.ChatMessage, content string) bool {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == core.RoleAssistant && messages[i].Content == content {
			return true
		}
	}
	return false
}

// Package ui implements the single chat screen: it renders the ordered
// message log owned by chat.Session and routes input to it, with a
// render-only pending placeholder while a reply is outstanding.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gemchat/pkg/chat"
	"gemchat/pkg/ui/styles"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Greeting seeds every new session (id=1, assistant).
const Greeting = "Hello! How can I help you today?"

// resolverFailureNotice is shown when the resolver invocation itself blew
// up outside its own failure handling. The gate is still released.
const resolverFailureNotice = "Something went wrong handling that message. Please try again."

const (
	titleLabel  = "gemchat"
	footerLabel = "Enter Send | Up/Down Scroll | Ctrl+Y Copy reply | Esc Quit"
	inputHeight = 3
	pendingText = "Assistant is thinking..."
)

// replyResolver produces the assistant utterance for a user utterance.
// Implementations never fail; failures arrive as fallback display text.
type replyResolver interface {
	Resolve(ctx context.Context, userText string) string
}

// replyMsg delivers the resolved assistant text back to the update loop.
type replyMsg struct {
	text string
}

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	session  *chat.Session
	resolver replyResolver

	textarea textarea.Model
	spinner  spinner.Model

	width   int
	height  int
	ready   bool
	scrollY int
	follow  bool
	lines   []string
}

// NewModel creates the chat screen around a session and a resolver.
func NewModel(session *chat.Session, resolver replyResolver) Model {
	ta := textarea.New()
	ta.Placeholder = "Type your message..."
	ta.SetHeight(inputHeight)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.PendingStyle

	return Model{
		session:  session,
		resolver: resolver,
		textarea: ta,
		spinner:  sp,
		follow:   true,
	}
}

// Init initializes the model (Bubble Tea lifecycle method)
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates model state (Bubble Tea lifecycle method)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.textarea.SetWidth(m.width)
		m.reflow()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case replyMsg:
		m.session.ResolveReply(msg.text)
		m.follow = true
		m.reflow()
		return m, nil

	case spinner.TickMsg:
		if !m.session.Awaiting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Everything else (cursor blink and friends) belongs to the textarea.
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.session.UpdateDraft(m.textarea.Value())
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		return m.submit()

	case "up", "down", "pgup", "pgdown":
		m.handleScroll(msg.String())
		return m, nil

	case "ctrl+y":
		return m, m.copyLastReply()
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.session.UpdateDraft(m.textarea.Value())
	return m, cmd
}

// submit runs the gated send: the session decides, the screen only reacts.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text, ok := m.session.Submit(m.session.Draft())
	if !ok {
		// Blank draft or a reply still outstanding.
		return m, nil
	}

	m.textarea.Reset()
	m.follow = true
	m.reflow()

	slog.Debug("chat_submit", "length", len(text))
	return m, tea.Batch(resolveReply(m.resolver, text), m.spinner.Tick)
}

// resolveReply invokes the resolver off the update loop and delivers
// exactly one replyMsg. The resolver already absorbs its own failures; the
// recover is the outer safety net so the awaiting gate always releases.
func resolveReply(r replyResolver, userText string) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("resolver_panic", "panic", fmt.Sprint(rec))
				msg = replyMsg{text: resolverFailureNotice}
			}
		}()
		return replyMsg{text: r.Resolve(context.Background(), userText)}
	}
}

func (m *Model) handleScroll(key string) {
	maxScroll := m.maxScroll()

	switch key {
	case "up":
		if m.scrollY > 0 {
			m.scrollY--
			m.follow = false
		}
	case "down":
		if m.scrollY < maxScroll {
			m.scrollY++
		}
		m.follow = m.scrollY >= maxScroll
	case "pgup":
		m.scrollY -= 10
		if m.scrollY < 0 {
			m.scrollY = 0
		}
		m.follow = false
	case "pgdown":
		m.scrollY += 10
		if m.scrollY > maxScroll {
			m.scrollY = maxScroll
		}
		m.follow = m.scrollY >= maxScroll
	}
}

func (m Model) copyLastReply() tea.Cmd {
	msgs := m.session.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Origin == chat.OriginAssistant {
			text := msgs[i].Text
			return func() tea.Msg {
				_, _ = fmt.Fprint(os.Stdout, osc52.New(text))
				return nil
			}
		}
	}
	return nil
}

// reflow re-renders the log for the current width and keeps the viewport
// pinned to the newest message while follow mode is on.
func (m *Model) reflow() {
	m.lines = renderMessages(m.session.Messages(), m.width)
	maxScroll := m.maxScroll()
	if m.follow || m.scrollY > maxScroll {
		m.scrollY = maxScroll
	}
	if m.scrollY < 0 {
		m.scrollY = 0
	}
}

func (m Model) bodyHeight() int {
	// title + separator + textarea + footer
	h := m.height - 3 - inputHeight
	if h < 1 {
		return 1
	}
	return h
}

func (m Model) maxScroll() int {
	total := len(m.lines)
	if m.session.Awaiting() {
		// Render-only placeholder: a blank plus the pending line.
		total += 2
	}
	max := total - m.bodyHeight()
	if max < 0 {
		return 0
	}
	return max
}

// View renders the UI (Bubble Tea lifecycle method)
func (m Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	if !m.ready {
		v.SetContent("Initializing...")
		return v
	}

	var sections []string
	sections = append(sections, styles.TitleStyle.Render(truncateToWidth(titleLabel, m.width)))

	body := m.lines
	if m.session.Awaiting() {
		body = append(append([]string{}, body...), "", m.spinner.View()+styles.PendingStyle.Render(pendingText))
	}

	bodyHeight := m.bodyHeight()
	start := m.scrollY
	if start > len(body) {
		start = len(body)
	}
	end := start + bodyHeight
	if end > len(body) {
		end = len(body)
	}
	sections = append(sections, body[start:end]...)
	for i := end - start; i < bodyHeight; i++ {
		sections = append(sections, "")
	}

	sections = append(sections, strings.Repeat("─", max(m.width, 1)))
	sections = append(sections, m.textarea.View())
	sections = append(sections, styles.FooterStyle.Render(truncateToWidth(footerLabel, m.width)))

	v.SetContent(strings.Join(sections, "\n"))
	return v
}

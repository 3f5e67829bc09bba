package bubbletea

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voyagecli/voyage"
)

var _ tea.Model = Model{}

const (
	inputHeight  = 3
	sidebarWidth = 28
)

// Model is the Bubble Tea model for the voyage TUI. It composes the
// header, conversation viewport, composer, status line, and the
// session sidebar; all backend work happens in commands.
type Model struct {
	// Input is the multi-line composer. Exported for test access.
	Input textarea.Model
	// Viewport is the scrollable conversation area. Exported for test access.
	Viewport viewport.Model

	chat   *voyage.Chat
	theme  voyage.Theme
	styles Styles

	blocks     []MessageBlock
	blockFocus int // index of focused element block (-1 = none)

	sidebar Sidebar
	spinner spinner.Model

	// waiting is true while a reply is pending. The composer is
	// disabled for the duration, which also serializes sends: a second
	// send cannot start before the first completes.
	waiting bool
	loading bool
	notice  string

	width, height int
	ready         bool
}

// New creates a new TUI Model over the given chat orchestrator.
func New(chat *voyage.Chat, theme voyage.Theme) Model {
	styles := NewStyles(theme)

	ta := textarea.New()
	ta.Placeholder = "Ask about flights, hotels, trips..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(inputHeight)
	// Enter submits; newlines are inserted with Ctrl+J.
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("ctrl+j"))
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Muted

	return Model{
		Input:      ta,
		chat:       chat,
		theme:      theme,
		styles:     styles,
		blockFocus: -1,
		sidebar:    NewSidebar(styles),
		spinner:    sp,
		loading:    true,
	}
}

// Waiting returns whether a reply is currently pending.
func (m Model) Waiting() bool { return m.waiting }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, loadHistory(m.chat))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m = m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case HistoryMsg:
		return m.handleHistory(msg)

	case ReplyMsg:
		return m.handleReply(msg)

	case ActionMsg:
		return m.handleAction(msg)

	case SessionsMsg:
		m.sidebar = m.sidebar.SetSessions(msg.Sessions, msg.Err)
		if msg.Err != nil {
			m.notice = "Could not load sessions"
		}
		return m, nil

	case SessionDeletedMsg:
		return m.handleSessionDeleted(msg)
	}

	// Pass remaining messages to sub-components.
	// Viewport always receives messages for scrolling (keyboard and mouse).
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !m.waiting && !m.sidebar.Visible() {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.headerLine())
	b.WriteString("\n")

	if m.sidebar.Visible() {
		pane := lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.sidebar.View(sidebarWidth, m.Viewport.Height, m.chat.Store().SessionID()),
			" ",
			m.Viewport.View(),
		)
		b.WriteString(pane)
	} else {
		b.WriteString(m.Viewport.View())
	}
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")

	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) headerLine() string {
	title := m.styles.Accent.Render("voyage")
	session := m.styles.Muted.Render("session " + shortID(m.chat.Store().SessionID()))
	return title + "  " + session
}

func (m Model) statusLine() string {
	switch {
	case m.notice != "":
		return m.styles.Error.Render(m.notice)
	case m.waiting:
		return m.spinner.View() + m.styles.Muted.Render("Assistant is typing...")
	case m.loading:
		return m.styles.Muted.Render("Loading conversation...")
	default:
		return m.styles.Muted.Render("enter send · ctrl+j newline · tab activate · shift+tab focus · ctrl+s sessions · ctrl+n new · ctrl+c quit")
	}
}

// layout recomputes component dimensions from the window size and
// sidebar visibility, re-rendering viewport content at the new width.
func (m Model) layout() Model {
	headerH := 1
	statusH := 1
	gaps := 3 // newlines between sections
	vpHeight := m.height - inputHeight - headerH - statusH - gaps
	if vpHeight < 1 {
		vpHeight = 1
	}

	vpWidth := m.width
	if m.sidebar.Visible() {
		vpWidth = m.width - sidebarWidth - 1
		if vpWidth < 10 {
			vpWidth = 10
		}
	}

	if !m.ready {
		m.Viewport = viewport.New(vpWidth, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = vpWidth
		m.Viewport.Height = vpHeight
	}

	m.Input.SetWidth(m.width)
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Error notifications are transient: any keypress clears them.
	m.notice = ""

	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.sidebar.Visible() {
		return m.handleSidebarKey(msg)
	}

	switch msg.Type {
	case tea.KeyEnter:
		if m.waiting || m.loading {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		return m.submitInput(text)

	case tea.KeyCtrlS:
		m.sidebar = m.sidebar.Toggle()
		m = m.layout()
		return m, loadSessions(m.chat)

	case tea.KeyCtrlN:
		return m.startNewSession()

	case tea.KeyTab:
		if !m.waiting && m.blockFocus >= 0 {
			return m.activateFocused()
		}
		return m, nil

	case tea.KeyShiftTab:
		if !m.waiting {
			m = m.cycleFocusPrev()
			m.Viewport.SetContent(m.renderContent())
		}
		return m, nil
	}

	// When idle, pass keys to both the composer (for typing) and the
	// viewport (for scrolling). Only forward non-character keys to the
	// viewport to avoid conflicts (e.g. 'j'/'k' are viewport scroll AND
	// text characters).
	if !m.waiting {
		var cmds []tea.Cmd
		var cmd tea.Cmd

		if msg.Type != tea.KeyRunes {
			m.Viewport, cmd = m.Viewport.Update(msg)
			cmds = append(cmds, cmd)
		}

		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)

		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		m.sidebar = m.sidebar.MoveUp()
		return m, nil

	case tea.KeyDown:
		m.sidebar = m.sidebar.MoveDown()
		return m, nil

	case tea.KeyEnter:
		sel, ok := m.sidebar.Selected()
		if !ok {
			return m, nil
		}
		m.sidebar = m.sidebar.Toggle()
		if sel.SessionID == m.chat.Store().SessionID() {
			m = m.layout()
			return m, nil
		}
		m.chat.SwitchSession(sel.SessionID)
		// Wholesale replacement: nothing from the previous session may
		// survive the switch.
		m.blocks = nil
		m.blockFocus = -1
		m.loading = true
		m = m.layout()
		return m, loadHistory(m.chat)

	case tea.KeyCtrlX:
		sel, ok := m.sidebar.Selected()
		if !ok {
			return m, nil
		}
		return m, deleteSession(m.chat, sel.SessionID)

	case tea.KeyCtrlS, tea.KeyEsc:
		m.sidebar = m.sidebar.Toggle()
		m = m.layout()
		return m, nil
	}

	return m, nil
}

func (m Model) submitInput(text string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")

	// Optimistic append: the user message renders immediately and is
	// kept even if the send fails.
	userMsg := m.chat.NewUserMessage(text)
	m = m.appendMessage(userMsg)

	m.waiting = true
	m.Input.Blur()

	return m, tea.Batch(
		sendMessage(m.chat, text),
		m.spinner.Tick,
	)
}

func (m Model) startNewSession() (tea.Model, tea.Cmd) {
	if m.waiting {
		return m, nil
	}
	m.chat.Store().NewSession()
	m.blocks = nil
	m.blockFocus = -1
	m.loading = true
	m.Viewport.SetContent("")
	return m, loadHistory(m.chat)
}

func (m Model) activateFocused() (tea.Model, tea.Cmd) {
	block, ok := m.blocks[m.blockFocus].(*ElementBlock)
	if !ok {
		return m, nil
	}
	el := block.Element()
	if _, supported := voyage.ActionOf(string(el.Action)); !supported {
		// Dispatch would only log it; skip the round trip.
		return m, nil
	}

	m.waiting = true
	m.Input.Blur()
	return m, tea.Batch(
		dispatchElement(m.chat, el),
		m.spinner.Tick,
	)
}

func (m Model) handleHistory(msg HistoryMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	// Replace wholesale; no incremental merge.
	m.blocks = nil
	m.blockFocus = -1

	if msg.Err != nil {
		m.blocks = append(m.blocks, NewErrorBlock(msg.Err, m.styles))
		m.notice = "Could not load conversation"
	} else {
		for _, message := range msg.Messages {
			m.blocks = m.appendBlocksFor(message)
		}
		m = m.updateBlockFocus()
	}

	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m, nil
}

func (m Model) handleReply(msg ReplyMsg) (tea.Model, tea.Cmd) {
	m.waiting = false

	if msg.Err != nil {
		// The optimistic user message stays; a fixed fallback reply is
		// substituted and a transient notification raised.
		m = m.appendMessage(m.chat.Fallback())
		m.notice = "Message failed to send"
	} else {
		m = m.appendMessage(msg.Reply)
	}

	cmd := m.Input.Focus()
	return m, cmd
}

func (m Model) handleAction(msg ActionMsg) (tea.Model, tea.Cmd) {
	m.waiting = false

	switch {
	case errors.Is(msg.Err, voyage.ErrUnsupportedAction):
		// Logged by the orchestrator; nothing to render.
	case msg.Err != nil:
		m.notice = "Action failed"
	default:
		m = m.appendMessage(msg.Reply)
	}

	cmd := m.Input.Focus()
	return m, cmd
}

func (m Model) handleSessionDeleted(msg SessionDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.notice = "Could not delete session"
		return m, nil
	}
	m.sidebar = m.sidebar.Remove(msg.ID)
	if msg.Switched {
		// The active session was deleted; a fresh one replaced it.
		m.blocks = nil
		m.blockFocus = -1
		m.loading = true
		m.Viewport.SetContent("")
		return m, loadHistory(m.chat)
	}
	return m, nil
}

// appendMessage adds the blocks for one message and scrolls to them.
func (m Model) appendMessage(message voyage.Message) Model {
	m.blocks = m.appendBlocksFor(message)
	m = m.updateBlockFocus()
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m
}

// appendBlocksFor maps a message to its blocks: one bubble for the
// body, plus one block per attached UI element.
func (m Model) appendBlocksFor(message voyage.Message) []MessageBlock {
	blocks := m.blocks
	switch message.Role {
	case voyage.RoleUser:
		blocks = append(blocks, NewUserMessageBlock(message.Content, m.styles))
	default:
		// Assistant, and anything unrecognized, renders as assistant.
		blocks = append(blocks, NewAssistantMessageBlock(message.Content, m.theme))
		for _, el := range message.Elements {
			blocks = append(blocks, NewElementBlock(el, m.styles))
		}
	}
	return blocks
}

func (m Model) renderContent() string {
	if len(m.blocks) == 0 {
		return m.styles.Muted.Render("Start planning your trip.")
	}
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

// updateBlockFocus focuses the last element block, which is the one
// the user most likely wants to activate. Shift+Tab cycles backwards
// from there.
func (m Model) updateBlockFocus() Model {
	m.blockFocus = -1
	for i := len(m.blocks) - 1; i >= 0; i-- {
		if _, ok := m.blocks[i].(*ElementBlock); ok {
			m.blockFocus = i
			break
		}
	}
	return m.applyFocus()
}

// cycleFocusPrev moves focus to the previous element block, wrapping
// around.
func (m Model) cycleFocusPrev() Model {
	if m.blockFocus < 0 {
		return m
	}
	start := m.blockFocus - 1
	if start < 0 {
		start = len(m.blocks) - 1
	}
	for i := range len(m.blocks) {
		idx := (start - i + len(m.blocks)) % len(m.blocks)
		if _, ok := m.blocks[idx].(*ElementBlock); ok {
			m.blockFocus = idx
			return m.applyFocus()
		}
	}
	return m
}

// applyFocus pushes the focus flag into every element block.
func (m Model) applyFocus() Model {
	for i, block := range m.blocks {
		if _, ok := block.(*ElementBlock); !ok {
			continue
		}
		updated, _ := block.Update(FocusMsg{Focused: i == m.blockFocus})
		m.blocks[i] = updated
	}
	return m
}

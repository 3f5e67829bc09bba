package bubbletea

// Accessors and aliases for tests.

func (m Model) Blocks() []MessageBlock { return m.blocks }

func (m Model) FocusIndex() int { return m.blockFocus }

func (m Model) Notice() string { return m.notice }

func (m Model) Loading() bool { return m.loading }

func (m Model) SidebarState() Sidebar { return m.sidebar }

var (
	LoadHistory     = loadHistory
	SendMessage     = sendMessage
	DispatchElement = dispatchElement
	LoadSessions    = loadSessions
	DeleteSession   = deleteSession
)

func ShortID(id string) string { return shortID(id) }

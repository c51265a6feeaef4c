// Package ui provides the Bubble Tea terminal front end. It renders session
// snapshots and forwards user actions to the session's named operations; it
// holds no catalog or bookmark state of its own.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tastebook/internal/prefs"
	"tastebook/internal/session"
)

// View represents the current active view.
type View int

const (
	ViewBrowse View = iota
	ViewBookmarks
	ViewUpload
)

// uploadCloseDelay is how long the success message stays up before the
// add-recipe form closes on its own.
const uploadCloseDelay = 2500 * time.Millisecond

// Options configures the UI.
type Options struct {
	Context   context.Context
	Session   *session.Session
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	sess      *session.Session
	prefsPath string

	keys   keyMap
	theme  Theme
	styles Styles

	width  int
	height int
	ready  bool

	view     View
	showHelp bool

	snap session.Snapshot

	search        textinput.Model
	searchFocused bool
	cursor        int
	bookmarkRow   int

	spin spinner.Model

	form           uploadForm
	closeScheduled bool
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}
	theme := GetTheme(themeName)

	search := textinput.New()
	search.Placeholder = "Search over 1,000,000 recipes..."
	search.CharLimit = 120

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		sess:      opts.Session,
		prefsPath: opts.PrefsPath,
		keys:      defaultKeyMap(),
		theme:     theme,
		styles:    theme.Styles(),
		search:    search,
		spin:      spin,
		form:      newUploadForm(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.spin.Tick, refreshCmd(m.sess))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		// The spinner tick doubles as the snapshot refresh cadence while a
		// blocking operation is in flight.
		return m, tea.Batch(cmd, refreshCmd(m.sess))

	case refreshMsg:
		return m.handleRefresh(session.Snapshot(msg))

	case closeUploadMsg:
		m.closeScheduled = false
		if m.view == ViewUpload && m.snap.UploadMessage != "" {
			m.sess.ClearUploadStatus()
			m.form = newUploadForm()
			m.view = ViewBrowse
			return m, refreshCmd(m.sess)
		}
		return m, nil
	}

	// Everything else (cursor blinks and the like) goes to the focused input.
	var cmds []tea.Cmd
	if m.searchFocused {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.view == ViewUpload {
		cmds = append(cmds, m.form.update(msg))
	}
	return m, tea.Batch(cmds...)
}

// handleRefresh folds a fresh session snapshot into the model.
func (m Model) handleRefresh(snap session.Snapshot) (tea.Model, tea.Cmd) {
	m.snap = snap
	if max := len(snap.Results) - 1; m.cursor > max {
		if max < 0 {
			m.cursor = 0
		} else {
			m.cursor = max
		}
	}
	if max := len(snap.Bookmarks) - 1; m.bookmarkRow > max {
		if max < 0 {
			m.bookmarkRow = 0
		} else {
			m.bookmarkRow = max
		}
	}

	// Schedule the auto-close once per successful upload.
	if m.view == ViewUpload && snap.UploadMessage != "" && !m.closeScheduled {
		m.closeScheduled = true
		return m, tea.Tick(uploadCloseDelay, func(time.Time) tea.Msg { return closeUploadMsg{} })
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	switch m.view {
	case ViewBookmarks:
		return m.renderBookmarks()
	case ViewUpload:
		return m.renderUpload()
	default:
		return m.renderBrowse()
	}
}

// Messages

type refreshMsg session.Snapshot

type closeUploadMsg struct{}

// Commands

func refreshCmd(sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		return refreshMsg(sess.Snapshot())
	}
}

// opCmd runs a blocking session operation off the UI goroutine and refreshes
// the snapshot when it settles.
func (m Model) opCmd(fn func()) tea.Cmd {
	sess := m.sess
	return func() tea.Msg {
		fn()
		return refreshMsg(sess.Snapshot())
	}
}

// saveTheme persists the theme without disturbing the rest of the prefs.
func (m Model) saveTheme(name string) {
	if m.prefsPath == "" {
		return
	}
	p, _ := prefs.Load(m.prefsPath)
	p.Theme = name
	_ = prefs.Save(m.prefsPath, p)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

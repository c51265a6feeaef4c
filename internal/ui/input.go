package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tastebook/internal/upload"
)

// handleKey processes keyboard input for the current view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}

	// While the search input has focus it owns every key except the ones
	// that leave it.
	if m.view == ViewBrowse && m.searchFocused {
		return m.handleSearchKey(msg)
	}
	if m.view == ViewUpload {
		return m.handleUploadKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.saveTheme(m.theme.Name)
		return m, nil

	case key.Matches(msg, m.keys.Bookmarks):
		m.view = ViewBookmarks
		m.bookmarkRow = 0
		return m, nil

	case key.Matches(msg, m.keys.AddRecipe):
		m.sess.ClearUploadStatus()
		m.form = newUploadForm()
		m.closeScheduled = false
		m.view = ViewUpload
		return m, refreshCmd(m.sess)

	case key.Matches(msg, m.keys.Back):
		m.view = ViewBrowse
		return m, nil
	}

	switch m.view {
	case ViewBookmarks:
		return m.handleBookmarksKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

// handleSearchKey routes keys while the search input has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.searchFocused = false
		m.search.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.searchFocused = false
		m.search.Blur()
		m.cursor = 0
		query := m.search.Value()
		ctx := m.ctx
		return m, m.opCmd(func() { m.sess.Search(ctx, query) })
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// handleBrowseKey processes keys for the results/detail view.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.FocusSearch):
		m.searchFocused = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snap.Results)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.sess.NextPage()
		m.cursor = 0
		return m, refreshCmd(m.sess)

	case key.Matches(msg, m.keys.PrevPage):
		m.sess.PrevPage()
		m.cursor = 0
		return m, refreshCmd(m.sess)

	case key.Matches(msg, m.keys.Confirm):
		if m.cursor >= len(m.snap.Results) {
			return m, nil
		}
		id := m.snap.Results[m.cursor].ID
		ctx := m.ctx
		return m, m.opCmd(func() { m.sess.SelectRecipe(ctx, id) })

	case key.Matches(msg, m.keys.ToggleBookmark):
		return m, m.opCmd(func() { _ = m.sess.ToggleBookmark() })

	case key.Matches(msg, m.keys.MoreServings):
		return m, m.rescaleBy(1)

	case key.Matches(msg, m.keys.FewerServings):
		return m, m.rescaleBy(-1)
	}

	return m, nil
}

// rescaleBy adjusts the selected recipe's servings by delta. The session
// rejects results below one serving.
func (m Model) rescaleBy(delta int) tea.Cmd {
	if m.snap.Selected == nil {
		return nil
	}
	target := m.snap.Selected.Servings + delta
	m.sess.Rescale(target)
	return refreshCmd(m.sess)
}

// handleBookmarksKey processes keys for the bookmark list view.
func (m Model) handleBookmarksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.bookmarkRow < len(m.snap.Bookmarks)-1 {
			m.bookmarkRow++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.bookmarkRow > 0 {
			m.bookmarkRow--
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if m.bookmarkRow >= len(m.snap.Bookmarks) {
			return m, nil
		}
		id := m.snap.Bookmarks[m.bookmarkRow].ID
		m.view = ViewBrowse
		ctx := m.ctx
		return m, m.opCmd(func() { m.sess.SelectRecipe(ctx, id) })
	}

	return m, nil
}

// handleUploadKey processes keys for the add-recipe form.
func (m Model) handleUploadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		// The form stays up while an upload is in flight.
		if !m.snap.Uploading {
			m.view = ViewBrowse
		}
		return m, nil

	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.Confirm):
		m.form.focusNext()
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.form.focusPrev()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		form := upload.FormFromValues(m.form.values())
		if !form.CanSubmit(m.snap.Uploading) {
			return m, nil
		}
		ctx := m.ctx
		return m, m.opCmd(func() { m.sess.Upload(ctx, form) })
	}

	cmd := m.form.update(msg)
	return m, cmd
}

package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tastebook/internal/recipe"
)

// renderBrowse draws the search bar, the result list and the recipe detail
// pane side by side.
func (m Model) renderBrowse() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n")

	listWidth := m.width / 3
	if listWidth < 30 {
		listWidth = 30
	}
	detailWidth := m.width - listWidth - 6
	if detailWidth < 30 {
		detailWidth = 30
	}

	list := m.styles.Pane.Width(listWidth).Render(m.renderResultList(listWidth))
	detail := m.styles.Pane.Width(detailWidth).Render(m.renderDetail(detailWidth))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, detail))

	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render(
		"/ search · enter open · b bookmark · +/- servings · B bookmarks · a add recipe · ? help"))
	return b.String()
}

func (m Model) renderHeader() string {
	title := m.styles.AccentText.Render("tastebook")
	var status string
	switch {
	case m.snap.Searching:
		status = m.spin.View() + " searching"
	case m.snap.LoadingRecipe:
		status = m.spin.View() + " loading recipe"
	case m.snap.Uploading:
		status = m.spin.View() + " uploading"
	}
	right := m.styles.MutedText.Render(fmt.Sprintf("%s  %d bookmarks  [%s]",
		status, len(m.snap.Bookmarks), m.theme.Name))
	return title + "  " + right
}

func (m Model) renderSearchBar() string {
	style := m.styles.Pane
	if m.searchFocused {
		style = m.styles.PaneFocus
	}
	width := m.width - 4
	if width < 30 {
		width = 30
	}
	return style.Width(width).Render(m.search.View())
}

func (m Model) renderResultList(width int) string {
	var b strings.Builder

	if m.snap.Query == "" && len(m.snap.Results) == 0 {
		return m.styles.MutedText.Render("Press / and search for a recipe.")
	}
	if len(m.snap.Results) == 0 {
		return m.styles.MutedText.Render(
			fmt.Sprintf("No recipes found for %q. Try another query.", m.snap.Query))
	}

	for i, r := range m.snap.Results {
		line := truncate(r.Title, width-6)
		if r.Publisher != "" {
			line += m.styles.MutedText.Render(" · " + r.Publisher)
		}
		if r.UserGenerated() {
			line += m.styles.AccentText.Render(" ◆")
		}
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render(fmt.Sprintf("Page %d/%d (%d results)",
		m.snap.Page, m.snap.PageCount, m.snap.TotalResults)))
	return b.String()
}

func (m Model) renderDetail(width int) string {
	if m.snap.ErrorMessage != "" {
		return m.styles.Danger.Render(m.snap.ErrorMessage)
	}
	r := m.snap.Selected
	if r == nil {
		return m.styles.MutedText.Render("Select a recipe to see its details.")
	}

	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render(truncate(r.Title, width)))
	b.WriteString("\n")

	meta := fmt.Sprintf("%s · %d min · %d servings", r.Publisher, r.CookingTime, r.Servings)
	b.WriteString(m.styles.MutedText.Render(meta))
	b.WriteString("\n")

	var badges []string
	if r.Bookmarked {
		badges = append(badges, m.styles.Success.Render("★ bookmarked"))
	}
	if r.UserGenerated() {
		badges = append(badges, m.styles.AccentText.Render("◆ your recipe"))
	}
	if len(badges) > 0 {
		b.WriteString(strings.Join(badges, "  "))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Text.Render("Ingredients"))
	b.WriteString("\n")
	for _, ing := range r.Ingredients {
		b.WriteString("  • " + formatIngredient(ing) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("Source: " + r.SourceURL))
	return b.String()
}

// renderBookmarks draws the saved-recipe list.
func (m Model) renderBookmarks() string {
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Bookmarks"))
	b.WriteString("\n\n")

	if len(m.snap.Bookmarks) == 0 {
		b.WriteString(m.styles.MutedText.Render(
			"No bookmarks yet. Find a nice recipe and bookmark it :)"))
	}
	for i, r := range m.snap.Bookmarks {
		line := r.Title
		if r.Publisher != "" {
			line += m.styles.MutedText.Render(" · " + r.Publisher)
		}
		if r.UserGenerated() {
			line += m.styles.AccentText.Render(" ◆")
		}
		if i == m.bookmarkRow {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("enter open · esc back"))
	return b.String()
}

// renderUpload draws the add-recipe form.
func (m Model) renderUpload() string {
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Add recipe"))
	b.WriteString("\n\n")

	for i, in := range m.form.inputs {
		label := uploadFields[i].label
		if i == m.form.focus {
			b.WriteString(m.styles.AccentText.Render(fmt.Sprintf("%-20s", label)))
		} else {
			b.WriteString(m.styles.MutedText.Render(fmt.Sprintf("%-20s", label)))
		}
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.snap.UploadMessage != "":
		b.WriteString(m.styles.Success.Render(m.snap.UploadMessage))
	case m.snap.UploadError != "":
		b.WriteString(m.styles.Danger.Render(m.snap.UploadError))
	case m.snap.Uploading:
		b.WriteString(m.styles.MutedText.Render(m.spin.View() + " uploading..."))
	default:
		if hint := m.form.validationHint(); hint != "" {
			b.WriteString(m.styles.MutedText.Render(hint))
		} else {
			b.WriteString(m.styles.Success.Render("Ready to submit."))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.MutedText.Render("tab next field · ctrl+s submit · esc cancel"))
	return b.String()
}

// renderHelp lists all key bindings.
func (m Model) renderHelp() string {
	bindings := []struct {
		keys string
		desc string
	}{
		{m.keys.FocusSearch.Help().Key, m.keys.FocusSearch.Help().Desc},
		{m.keys.Confirm.Help().Key, m.keys.Confirm.Help().Desc},
		{m.keys.Up.Help().Key, m.keys.Up.Help().Desc},
		{m.keys.Down.Help().Key, m.keys.Down.Help().Desc},
		{m.keys.PrevPage.Help().Key, m.keys.PrevPage.Help().Desc},
		{m.keys.NextPage.Help().Key, m.keys.NextPage.Help().Desc},
		{m.keys.ToggleBookmark.Help().Key, m.keys.ToggleBookmark.Help().Desc},
		{m.keys.MoreServings.Help().Key, m.keys.MoreServings.Help().Desc},
		{m.keys.FewerServings.Help().Key, m.keys.FewerServings.Help().Desc},
		{m.keys.Bookmarks.Help().Key, m.keys.Bookmarks.Help().Desc},
		{m.keys.AddRecipe.Help().Key, m.keys.AddRecipe.Help().Desc},
		{m.keys.Submit.Help().Key, m.keys.Submit.Help().Desc},
		{m.keys.CycleTheme.Help().Key, m.keys.CycleTheme.Help().Desc},
		{m.keys.Back.Help().Key, m.keys.Back.Help().Desc},
		{m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc},
	}

	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Key bindings"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			m.styles.AccentText.Render(fmt.Sprintf("%-12s", bind.keys)),
			bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("Press any key to close."))
	return b.String()
}

// formatIngredient renders an ingredient as "quantity unit description",
// skipping the quantity when it is absent.
func formatIngredient(ing recipe.Ingredient) string {
	parts := make([]string, 0, 3)
	if ing.Quantity != nil {
		parts = append(parts, formatQuantity(*ing.Quantity))
	}
	if ing.Unit != "" {
		parts = append(parts, ing.Unit)
	}
	parts = append(parts, ing.Description)
	return strings.Join(parts, " ")
}

// formatQuantity prints scaled quantities without float noise: whole numbers
// plain, fractions to at most two decimals.
func formatQuantity(q float64) string {
	if q == float64(int64(q)) {
		return strconv.FormatInt(int64(q), 10)
	}
	s := strconv.FormatFloat(q, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// truncate cuts s to at most width runes, adding an ellipsis.
func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 1 || len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

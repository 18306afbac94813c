package browser

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = max(msg.Width-len(m.search.Prompt)-1, 0)
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKeys(msg)
		}
		return m.handleKeys(msg)

	case spinner.TickMsg:
		if !m.engine.Result().Meta.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case RecordsLoadedMsg:
		m.engine.SetError(nil)
		m.engine.SetData(msg.Records)
		m.engine.SetLoading(false)
		m.log.Debug("records loaded", "count", len(msg.Records))
		m.clamp()
		return m, nil

	case LoadFailedMsg:
		m.engine.SetError(msg.Err)
		m.engine.SetLoading(false)
		m.log.Error(msg.Err, "loading records failed")
		m.clamp()
		return m, nil
	}

	return m, nil
}

// handleKeys handles keys while the table has focus.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor--

	case key.Matches(msg, m.keys.Down):
		m.cursor++

	case key.Matches(msg, m.keys.Left):
		m.focus--

	case key.Matches(msg, m.keys.Right):
		m.focus++

	case key.Matches(msg, m.keys.Sort):
		if id := m.FocusedColumn(); id != "" {
			m.engine.ToggleSort(id, false)
		}

	case key.Matches(msg, m.keys.AddSort):
		if id := m.FocusedColumn(); id != "" {
			m.engine.ToggleSort(id, true)
		}

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.engine.State().GlobalFilter)
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Select):
		if row, ok := m.currentRow(); ok {
			m.engine.ToggleRowSelection(row.ID)
		}

	case key.Matches(msg, m.keys.SelectAll):
		m.engine.ToggleAllRowsSelection()

	case key.Matches(msg, m.keys.Expand):
		if row, ok := m.currentRow(); ok {
			m.engine.ToggleRowExpansion(row.ID)
		}

	case key.Matches(msg, m.keys.NextPage):
		m.engine.NextPage()
		m.cursor = 0

	case key.Matches(msg, m.keys.PrevPage):
		m.engine.PreviousPage()
		m.cursor = 0

	case key.Matches(msg, m.keys.Grow):
		m.engine.SetPageSize(m.engine.Result().Meta.PageSize + pageSizeStep)

	case key.Matches(msg, m.keys.Shrink):
		m.engine.SetPageSize(max(m.engine.Result().Meta.PageSize-pageSizeStep, 1))

	case key.Matches(msg, m.keys.Hide):
		if id := m.FocusedColumn(); id != "" {
			m.engine.SetColumnVisibility(id, false)
		}

	case key.Matches(msg, m.keys.ShowAll):
		m.engine.ShowAllColumns()

	case key.Matches(msg, m.keys.Reset):
		m.engine.Reset()
		m.cursor = 0
		m.focus = 0

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}

	m.clamp()
	return m, nil
}

// handleSearchKeys handles keys while the search prompt is open.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ApplySearch):
		m.engine.SetGlobalFilter(m.search.Value())
		m.closeSearch()
		m.clamp()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.closeSearch()
		return m, nil

	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) closeSearch() {
	m.searching = false
	m.search.Blur()
	m.search.Reset()
}

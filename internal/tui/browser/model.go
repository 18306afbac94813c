// Package browser implements an interactive terminal table browser on top of
// the table engine.
package browser

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tabula/internal/logger"
	"github.com/alexisbeaulieu97/tabula/internal/ui/components"
	"github.com/alexisbeaulieu97/tabula/pkg/table"
)

// pageSizeStep is how much + and - change the page size.
const pageSizeStep = 5

// Options configures a browser Model.
type Options struct {
	Title        string
	Description  string
	Context      components.RenderContext
	MaxCellWidth int
	// Loader, when set, is run by Init and its records replace the engine data.
	Loader Loader
	Logger *logger.Logger
}

// Model is the bubbletea model of the table browser. The engine is shared
// between copies of the model.
type Model struct {
	engine *table.Engine
	opts   Options
	log    *logger.Logger

	cursor    int
	focus     int
	searching bool
	showHelp  bool

	search  textinput.Model
	help    help.Model
	spinner spinner.Model
	keys    keyMap

	width  int
	height int
}

// NewModel creates a browser over engine.
func NewModel(engine *table.Engine, opts Options) Model {
	if opts.Context.Theme.Name == "" {
		opts.Context = components.DefaultContext()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search visible columns"

	s := spinner.New()
	s.Spinner = spinner.Dot
	if opts.Context.ASCII {
		s.Spinner = spinner.Line
	}

	if opts.Loader != nil {
		engine.SetLoading(true)
	}

	return Model{
		engine:  engine,
		opts:    opts,
		log:     opts.Logger.With("component", "browser"),
		search:  search,
		help:    help.New(),
		spinner: s,
		keys:    keys,
	}
}

// Init starts the loader when one is configured.
func (m Model) Init() tea.Cmd {
	if m.opts.Loader == nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, loadCmd(m.opts.Loader))
}

// Engine returns the engine driven by the model.
func (m Model) Engine() *table.Engine {
	return m.engine
}

// Cursor returns the highlighted row index on the current page.
func (m Model) Cursor() int {
	return m.cursor
}

// FocusedColumn returns the id of the focused visible column, or "" when no
// column is visible.
func (m Model) FocusedColumn() string {
	columns := m.engine.Result().Columns
	if m.focus < 0 || m.focus >= len(columns) {
		return ""
	}
	return columns[m.focus].ID
}

// Searching reports whether the search prompt is open.
func (m Model) Searching() bool {
	return m.searching
}

// currentRow returns the row under the cursor.
func (m Model) currentRow() (table.Row, bool) {
	rows := m.engine.Result().Rows
	if m.cursor < 0 || m.cursor >= len(rows) {
		return table.Row{}, false
	}
	return rows[m.cursor], true
}

// clamp keeps the cursor on the current page and the focus on a visible column.
func (m *Model) clamp() {
	res := m.engine.Result()
	m.cursor = min(m.cursor, len(res.Rows)-1)
	m.cursor = max(m.cursor, 0)
	m.focus = min(m.focus, len(res.Columns)-1)
	m.focus = max(m.focus, 0)
}

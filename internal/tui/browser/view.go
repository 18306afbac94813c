package browser

import (
	"github.com/charmbracelet/bubbles/help"

	"github.com/alexisbeaulieu97/tabula/internal/ui"
	"github.com/alexisbeaulieu97/tabula/internal/ui/components"
	"github.com/alexisbeaulieu97/tabula/pkg/table"
)

// View renders the current model state.
func (m Model) View() string {
	ctx := m.opts.Context
	if m.width > 0 {
		ctx = ctx.WithMaxWidth(m.width)
	}

	res := m.engine.Result()
	state := m.engine.State()

	body := components.TableView(res, components.TableViewOptions{
		Title:         m.opts.Title,
		Description:   m.opts.Description,
		Sorting:       state.Sorting,
		Filters:       state.Filters,
		GlobalFilter:  state.GlobalFilter,
		Cursor:        m.cursor,
		FocusedColumn: m.FocusedColumn(),
		Selectable:    m.engine.Options().SelectionMode != table.SelectionNone,
		Striped:       true,
		MaxCellWidth:  m.opts.MaxCellWidth,
	})

	if res.Meta.Loading {
		body.Add(components.MutedText(m.spinner.View() + " loading records"))
	}
	if m.searching {
		body.Add(rawView(m.search.View()))
	}

	var helpKeys help.KeyMap = m.keys
	if m.searching {
		helpKeys = searchKeys{m.keys}
	}
	m.help.ShowAll = m.showHelp
	body.Add(components.MutedText(m.help.View(helpKeys)))

	return body.WithGap(1).ViewWithContext(ctx)
}

// rawView adapts pre-rendered bubbles output to the component tree.
type rawView string

func (r rawView) View() string { return string(r) }

var _ ui.Renderable = rawView("")

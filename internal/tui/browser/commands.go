package browser

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tabula/pkg/table"
)

// Loader reads the records shown by the browser.
type Loader func() ([]table.Record, error)

// loadCmd runs the loader off the update loop.
func loadCmd(load Loader) tea.Cmd {
	return func() tea.Msg {
		records, err := load()
		if err != nil {
			return LoadFailedMsg{Err: err}
		}
		return RecordsLoadedMsg{Records: records}
	}
}

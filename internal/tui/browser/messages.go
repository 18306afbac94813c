package browser

import "github.com/alexisbeaulieu97/tabula/pkg/table"

// RecordsLoadedMsg carries records read by the loader.
type RecordsLoadedMsg struct {
	Records []table.Record
}

// LoadFailedMsg reports that the loader returned an error.
type LoadFailedMsg struct {
	Err error
}

package definition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	tabulaerrors "github.com/alexisbeaulieu97/tabula/pkg/errors"
	"github.com/alexisbeaulieu97/tabula/pkg/table"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a definition file, validates it and resolves its records.
func Load(path string) (*Definition, error) {
	def, err := Read(path)
	if err != nil {
		return nil, err
	}

	records, err := def.ResolveRecords()
	if err != nil {
		return nil, err
	}
	def.Records = records
	return def, nil
}

// Read reads and validates a definition file. A data reference is left
// unresolved; see ResolveRecords.
func Read(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tabulaerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// ResolveRecords returns the inline records, or reads the data file relative
// to the definition's directory.
func (d *Definition) ResolveRecords() ([]table.Record, error) {
	if d.Data == "" {
		if d.Records == nil {
			return []table.Record{}, nil
		}
		return d.Records, nil
	}

	source := d.Data
	if !filepath.IsAbs(source) {
		source = filepath.Join(filepath.Dir(d.path), source)
	}
	return LoadRecords(source)
}

// Parse decodes and validates a definition without touching the filesystem.
// Any data reference is left unresolved.
func Parse(path string, data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, tabulaerrors.NewParseError(path, extractLine(err), err)
	}
	def.path = path

	if err := Validate(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadRecords reads a list of records from a .yaml, .yml or .json file.
func LoadRecords(path string) ([]table.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tabulaerrors.NewDataError(path, err)
	}

	var records []table.Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, tabulaerrors.NewParseError(path, extractLine(err), err)
		}
	case ".json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		if err := decoder.Decode(&records); err != nil {
			return nil, tabulaerrors.NewParseError(path, 0, err)
		}
	default:
		return nil, tabulaerrors.NewDataError(path, fmt.Errorf("unsupported record file extension %q", filepath.Ext(path)))
	}

	if records == nil {
		records = []table.Record{}
	}
	return records, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

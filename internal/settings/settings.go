// Package settings loads user preferences for the tabula CLI from defaults,
// a settings file, TABULA_* environment variables and command flags.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/tabula/internal/ui/components"
	tabulaerrors "github.com/alexisbeaulieu97/tabula/pkg/errors"
	"github.com/alexisbeaulieu97/tabula/pkg/table"
)

// Unicode modes.
const (
	UnicodeAuto   = "auto"
	UnicodeAlways = "always"
	UnicodeNever  = "never"
)

const (
	configName = "tabula"
	envPrefix  = "tabula"
)

// Settings are the resolved user preferences.
type Settings struct {
	Theme        string `mapstructure:"theme"`
	PageSize     int    `mapstructure:"page_size"`
	LogLevel     string `mapstructure:"log_level"`
	Unicode      string `mapstructure:"unicode"`
	MaxCellWidth int    `mapstructure:"max_cell_width"`
}

// Defaults returns the value of every key before any source is applied.
func Defaults() map[string]any {
	return map[string]any{
		"theme":          components.ThemeDefault,
		"page_size":      table.DefaultPageSize,
		"log_level":      "warn",
		"unicode":        UnicodeAuto,
		"max_cell_width": components.DefaultMaxCellWidth,
	}
}

// flagKeys maps settings keys to the command flags that override them.
var flagKeys = map[string]string{
	"theme":          "theme",
	"page_size":      "page-size",
	"log_level":      "log-level",
	"unicode":        "unicode",
	"max_cell_width": "max-width",
}

// LoadOptions selects the sources Load reads.
type LoadOptions struct {
	// Flags are bound after the file and environment. Only flags the user
	// changed take effect.
	Flags *pflag.FlagSet
	// ConfigFile is an explicit settings file. It must exist when set.
	ConfigFile string
	// SearchPaths are directories searched for tabula.yaml when ConfigFile
	// is empty. Nil means DefaultSearchPaths.
	SearchPaths []string
}

// DefaultSearchPaths returns the user config directory and the working directory.
func DefaultSearchPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, configName))
	}
	return append(paths, ".")
}

// Load resolves settings. Precedence from lowest to highest: defaults,
// settings file, environment, flags.
func Load(opts LoadOptions) (Settings, string, error) {
	var s Settings
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		paths := opts.SearchPaths
		if paths == nil {
			paths = DefaultSearchPaths()
		}
		for _, path := range paths {
			v.AddConfigPath(path)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return s, "", tabulaerrors.NewParseError(v.ConfigFileUsed(), 0, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for key, name := range flagKeys {
			if flag := opts.Flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return s, "", err
				}
			}
		}
	}

	if err := v.Unmarshal(&s); err != nil {
		return s, "", tabulaerrors.NewParseError(v.ConfigFileUsed(), 0, err)
	}
	s.Theme = strings.ToLower(strings.TrimSpace(s.Theme))
	s.Unicode = strings.ToLower(strings.TrimSpace(s.Unicode))

	if err := s.Validate(); err != nil {
		return s, v.ConfigFileUsed(), err
	}
	return s, v.ConfigFileUsed(), nil
}

// Validate checks that every value is usable.
func (s Settings) Validate() error {
	if !components.IsKnownTheme(s.Theme) {
		return tabulaerrors.NewValidationError("theme", fmt.Sprintf("unknown theme %q (expected one of %s)", s.Theme, strings.Join(components.ThemeNames(), ", ")), nil)
	}
	if s.PageSize <= 0 {
		return tabulaerrors.NewValidationError("page_size", "must be positive", nil)
	}
	if s.MaxCellWidth <= 0 {
		return tabulaerrors.NewValidationError("max_cell_width", "must be positive", nil)
	}
	if !slices.Contains([]string{UnicodeAuto, UnicodeAlways, UnicodeNever}, s.Unicode) {
		return tabulaerrors.NewValidationError("unicode", fmt.Sprintf("unknown mode %q (expected auto, always or never)", s.Unicode), nil)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel)); err != nil {
		return tabulaerrors.NewValidationError("log_level", err.Error(), err)
	}
	return nil
}

// UseUnicode reports whether box drawing glyphs should be used. In auto
// mode they are used when the output is a terminal.
func (s Settings) UseUnicode(isTerminal bool) bool {
	switch s.Unicode {
	case UnicodeAlways:
		return true
	case UnicodeNever:
		return false
	default:
		return isTerminal
	}
}

// ThemeValue returns the configured theme, falling back to the default.
func (s Settings) ThemeValue() components.Theme {
	theme, ok := components.ThemeByName(s.Theme)
	if !ok {
		return components.DefaultTheme()
	}
	return theme
}

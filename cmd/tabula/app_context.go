package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tabula/internal/definition"
	"github.com/alexisbeaulieu97/tabula/internal/logger"
	"github.com/alexisbeaulieu97/tabula/internal/settings"
	"github.com/alexisbeaulieu97/tabula/internal/ui/components"
	"github.com/alexisbeaulieu97/tabula/pkg/table"
)

// appContext bundles what every command needs after flags are parsed.
type appContext struct {
	cmd      *cobra.Command
	settings settings.Settings
	log      *logger.Logger
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	s, used, err := settings.Load(settings.LoadOptions{Flags: cmd.Flags(), ConfigFile: flags.configFile})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading settings", err, "Check your tabula.yaml and TABULA_* environment variables.")
	}

	level := s.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "creating logger", err, "Use one of debug, info, warn or error for --log-level.")
	}
	log = log.With("command", cmd.Name())
	log.Debug("settings loaded", "file", used, "theme", s.Theme, "page_size", s.PageSize)

	return &appContext{cmd: cmd, settings: s, log: log}, nil
}

// newEngine builds an engine for def without data. An explicit --page-size
// wins over the definition's own page size and keeps its initial page.
func (a *appContext) newEngine(def *definition.Definition) *table.Engine {
	opts := def.TableOptions(a.settings.PageSize)
	if a.cmd.Flags().Changed("page-size") {
		opts.DefaultPageSize = a.settings.PageSize
	}
	opts.Logger = a.log
	engine := table.New(def.TableColumns(), opts)
	if len(def.ColumnOrder) > 0 {
		engine.SetColumnOrder(def.ColumnOrder)
	}
	return engine
}

// renderContext picks the theme, glyph set and width for output written to w.
func (a *appContext) renderContext(w io.Writer) components.RenderContext {
	isTerminal, width := terminalInfo(w)
	ctx := components.DefaultContext().
		WithTheme(a.settings.ThemeValue()).
		WithASCII(!a.settings.UseUnicode(isTerminal))
	if width > 0 {
		ctx = ctx.WithMaxWidth(width)
	}
	return ctx
}

func terminalInfo(writer any) (bool, int) {
	file, ok := writer.(*os.File)
	if !ok {
		return false, 0
	}
	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return false, 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return true, 0
	}
	return true, width
}
